package doctor

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a doctor does not exist.
var ErrNotFound = errors.New("doctor not found")

type Repository interface {
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error)
	List(ctx context.Context, specialty string, limit, offset int) ([]*Doctor, int, error)
	// ListBySpecialty returns all doctors of a specialty in creation order.
	ListBySpecialty(ctx context.Context, specialty string) ([]*Doctor, error)

	AddWindow(ctx context.Context, w *AvailabilityWindow) error
	ListWindows(ctx context.Context, doctorID uuid.UUID) ([]*AvailabilityWindow, error)
	// WindowForDay returns the earliest available window for the given
	// day, or nil when the doctor has none.
	WindowForDay(ctx context.Context, doctorID uuid.UUID, dayOfWeek int) (*AvailabilityWindow, error)
}
