package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an appointment does not exist.
var ErrNotFound = errors.New("appointment not found")

// ErrInvalidTransition is returned for a status change the state machine
// does not allow.
var ErrInvalidTransition = errors.New("invalid status transition")

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Appointment, int, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Appointment, int, error)
	// AnyInRange reports whether the doctor has a non-cancelled
	// appointment with start_time in [from, to], both ends inclusive.
	AnyInRange(ctx context.Context, doctorID uuid.UUID, from, to time.Time) (bool, error)
	// ListInRange returns the doctor's non-cancelled appointments with
	// start_time in [from, to], ordered by start_time.
	ListInRange(ctx context.Context, doctorID uuid.UUID, from, to time.Time) ([]*Appointment, error)
}
