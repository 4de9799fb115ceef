package booking

import "github.com/bookingservices/booking-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// InitialStatus é o status de toda reserva recém-criada.
func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Transitions
// ===============================

// transitions define o grafo de transições permitidas.
// completed e cancelled são terminais.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// CanTransition valida uma mudança de status contra o grafo.
func CanTransition(from, to Status) error {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}
	return httperr.ErrBusinessf(
		"invalid_transition",
		"Invalid status transition from %s to %s", from, to,
	)
}

// IsTerminal informa se nenhuma transição parte do status.
func IsTerminal(s Status) bool {
	return len(transitions[s]) == 0
}

// ActiveStatuses são os status que bloqueiam a janela de horário
// no check de sobreposição.
func ActiveStatuses() []string {
	return []string{string(StatusPending), string(StatusConfirmed)}
}
