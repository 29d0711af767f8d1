package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a patient does not exist.
var ErrNotFound = errors.New("patient not found")

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	GetByMRN(ctx context.Context, mrn string) (*Patient, error)
	List(ctx context.Context, search string, limit, offset int) ([]*Patient, int, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AddHistory(ctx context.Context, h *MedicalHistory) error
	ListHistory(ctx context.Context, patientID uuid.UUID) ([]*MedicalHistory, error)

	Stats(ctx context.Context) (*Stats, error)
}
