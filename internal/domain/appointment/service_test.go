package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

// -- Mock Repository --

type mockRepo struct {
	appts map[uuid.UUID]*Appointment
}

func newMockRepo() *mockRepo {
	return &mockRepo{appts: make(map[uuid.UUID]*Appointment)}
}

func (m *mockRepo) Create(_ context.Context, a *Appointment) error {
	a.ID = uuid.New()
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	a.CreatedAt = time.Now()
	a.UpdatedAt = time.Now()
	m.appts[a.ID] = a
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Appointment, error) {
	a, ok := m.appts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return a, nil
}

func (m *mockRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	a, ok := m.appts[id]
	if !ok {
		return ErrNotFound
	}
	a.Status = status
	return nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	var result []*Appointment
	for _, a := range m.appts {
		if a.PatientID == patientID {
			result = append(result, a)
		}
	}
	return result, len(result), nil
}

func (m *mockRepo) ListByDoctor(_ context.Context, doctorID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	var result []*Appointment
	for _, a := range m.appts {
		if a.DoctorID == doctorID {
			result = append(result, a)
		}
	}
	return result, len(result), nil
}

func (m *mockRepo) AnyInRange(_ context.Context, doctorID uuid.UUID, from, to time.Time) (bool, error) {
	for _, a := range m.appts {
		if a.DoctorID == doctorID && a.Status != StatusCancelled &&
			!a.StartTime.Before(from) && !a.StartTime.After(to) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRepo) ListInRange(_ context.Context, doctorID uuid.UUID, from, to time.Time) ([]*Appointment, error) {
	var result []*Appointment
	for _, a := range m.appts {
		if a.DoctorID == doctorID && a.Status != StatusCancelled &&
			!a.StartTime.Before(from) && !a.StartTime.After(to) {
			result = append(result, a)
		}
	}
	return result, nil
}

// -- Tests --

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{StatusScheduled, StatusCompleted, true},
		{StatusScheduled, StatusCancelled, true},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusScheduled, false},
		{StatusCompleted, StatusScheduled, false},
		{StatusScheduled, StatusScheduled, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestChangeStatus_Completes(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	a := &Appointment{PatientID: uuid.New(), DoctorID: uuid.New(), StartTime: time.Now()}
	if err := repo.Create(context.Background(), a); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	updated, err := svc.ChangeStatus(context.Background(), a.ID, StatusCompleted)
	if err != nil {
		t.Fatalf("ChangeStatus() error: %v", err)
	}
	if updated.Status != StatusCompleted {
		t.Errorf("expected completed, got %s", updated.Status)
	}
}

func TestChangeStatus_RejectsFromCompleted(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	a := &Appointment{PatientID: uuid.New(), DoctorID: uuid.New(), StartTime: time.Now(), Status: StatusCompleted}
	if err := repo.Create(context.Background(), a); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	_, err := svc.ChangeStatus(context.Background(), a.ID, StatusCancelled)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestChangeStatus_RejectsUnknownTarget(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	a := &Appointment{PatientID: uuid.New(), DoctorID: uuid.New(), StartTime: time.Now()}
	if err := repo.Create(context.Background(), a); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	_, err := svc.ChangeStatus(context.Background(), a.ID, "rescheduled")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestChangeStatus_NotFound(t *testing.T) {
	svc := NewService(newMockRepo())
	_, err := svc.ChangeStatus(context.Background(), uuid.New(), StatusCancelled)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAnyInRange_IgnoresCancelled(t *testing.T) {
	repo := newMockRepo()
	doctorID := uuid.New()
	at := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	a := &Appointment{PatientID: uuid.New(), DoctorID: doctorID, StartTime: at, Status: StatusCancelled}
	if err := repo.Create(context.Background(), a); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	busy, err := repo.AnyInRange(context.Background(), doctorID, at.Add(-15*time.Minute), at.Add(15*time.Minute))
	if err != nil {
		t.Fatalf("AnyInRange() error: %v", err)
	}
	if busy {
		t.Error("cancelled appointment should not block the range")
	}
}
