package patient

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

// Register validates and stores a new patient. An empty MRN is assigned
// from the generated ID.
func (s *Service) Register(ctx context.Context, p *Patient) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Contact = strings.TrimSpace(p.Contact)
	if err := Validate(p); err != nil {
		return err
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, search string, limit, offset int) ([]*Patient, int, error) {
	return s.patients.List(ctx, search, limit, offset)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.patients.Delete(ctx, id)
}

func (s *Service) AddHistory(ctx context.Context, h *MedicalHistory) error {
	if h.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if strings.TrimSpace(h.Condition) == "" {
		return fmt.Errorf("condition is required")
	}
	if _, err := s.patients.GetByID(ctx, h.PatientID); err != nil {
		return err
	}
	return s.patients.AddHistory(ctx, h)
}

func (s *Service) History(ctx context.Context, patientID uuid.UUID) ([]*MedicalHistory, error) {
	if _, err := s.patients.GetByID(ctx, patientID); err != nil {
		return nil, err
	}
	return s.patients.ListHistory(ctx, patientID)
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	return s.patients.Stats(ctx)
}
