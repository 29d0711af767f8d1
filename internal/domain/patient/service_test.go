package patient

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

// -- Mock Repository --

type mockRepo struct {
	patients map[uuid.UUID]*Patient
	history  map[uuid.UUID][]*MedicalHistory
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		patients: make(map[uuid.UUID]*Patient),
		history:  make(map[uuid.UUID][]*MedicalHistory),
	}
}

func (m *mockRepo) Create(_ context.Context, p *Patient) error {
	p.ID = uuid.New()
	if p.MRN == "" {
		p.MRN = MRNFromID(p.ID)
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	m.patients[p.ID] = p
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (m *mockRepo) GetByMRN(_ context.Context, mrn string) (*Patient, error) {
	for _, p := range m.patients {
		if p.MRN == mrn {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepo) List(_ context.Context, search string, limit, offset int) ([]*Patient, int, error) {
	var result []*Patient
	for _, p := range m.patients {
		if search == "" || strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) {
			result = append(result, p)
		}
	}
	return result, len(result), nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.patients[id]; !ok {
		return ErrNotFound
	}
	delete(m.patients, id)
	delete(m.history, id)
	return nil
}

func (m *mockRepo) AddHistory(_ context.Context, h *MedicalHistory) error {
	h.ID = uuid.New()
	h.RecordedAt = time.Now()
	m.history[h.PatientID] = append(m.history[h.PatientID], h)
	return nil
}

func (m *mockRepo) ListHistory(_ context.Context, patientID uuid.UUID) ([]*MedicalHistory, error) {
	return m.history[patientID], nil
}

func (m *mockRepo) Stats(_ context.Context) (*Stats, error) {
	return &Stats{TotalPatients: len(m.patients)}, nil
}

// -- Tests --

func validPatient() *Patient {
	return &Patient{
		Name:    "Janmejaya Panda",
		Age:     34,
		Gender:  "male",
		Contact: "9876543210",
	}
}

func TestRegister_Valid(t *testing.T) {
	svc := NewService(newMockRepo())
	p := validPatient()

	if err := svc.Register(context.Background(), p); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Error("expected ID to be assigned")
	}
	if p.MRN == "" {
		t.Error("expected MRN to be assigned")
	}
}

func TestRegister_CollectsAllErrors(t *testing.T) {
	svc := NewService(newMockRepo())
	p := &Patient{Name: "bob", Age: 0, Contact: "12ab"}

	err := svc.Register(context.Background(), p)
	if err == nil {
		t.Fatal("expected validation error")
	}

	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 3 {
		t.Fatalf("expected 3 validation errors, got %d: %v", len(verrs), verrs)
	}
}

func TestRegister_SingleWordName(t *testing.T) {
	svc := NewService(newMockRepo())
	p := validPatient()
	p.Name = "Janmejaya"

	err := svc.Register(context.Background(), p)
	if err == nil {
		t.Fatal("expected validation error for single word name")
	}
	if !strings.Contains(err.Error(), "at least 2 words") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestRegister_LowercaseName(t *testing.T) {
	svc := NewService(newMockRepo())
	p := validPatient()
	p.Name = "Janmejaya panda"

	if err := svc.Register(context.Background(), p); err == nil {
		t.Fatal("expected validation error for lowercase word")
	}
}

func TestRegister_AgeBounds(t *testing.T) {
	for _, age := range []int{0, -5, 121} {
		svc := NewService(newMockRepo())
		p := validPatient()
		p.Age = age
		if err := svc.Register(context.Background(), p); err == nil {
			t.Errorf("expected validation error for age %d", age)
		}
	}
	for _, age := range []int{1, 60, 120} {
		svc := NewService(newMockRepo())
		p := validPatient()
		p.Age = age
		if err := svc.Register(context.Background(), p); err != nil {
			t.Errorf("unexpected error for age %d: %v", age, err)
		}
	}
}

func TestRegister_ContactLength(t *testing.T) {
	for _, contact := range []string{"123", "12345678901", "98765abc10"} {
		svc := NewService(newMockRepo())
		p := validPatient()
		p.Contact = contact
		if err := svc.Register(context.Background(), p); err == nil {
			t.Errorf("expected validation error for contact %q", contact)
		}
	}
}

func TestAddHistory_UnknownPatient(t *testing.T) {
	svc := NewService(newMockRepo())
	err := svc.AddHistory(context.Background(), &MedicalHistory{
		PatientID: uuid.New(),
		Condition: "Hypertension",
	})
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAddHistory_RequiresCondition(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	p := validPatient()
	if err := svc.Register(context.Background(), p); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	err := svc.AddHistory(context.Background(), &MedicalHistory{PatientID: p.ID})
	if err == nil {
		t.Fatal("expected error for empty condition")
	}
}

func TestHistory_RoundTrip(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	p := validPatient()
	if err := svc.Register(context.Background(), p); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	entry := &MedicalHistory{PatientID: p.ID, Condition: "Diabetes", Notes: "Type 2"}
	if err := svc.AddHistory(context.Background(), entry); err != nil {
		t.Fatalf("AddHistory() error: %v", err)
	}

	history, err := svc.History(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("History() error: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(history))
	}
	if history[0].Condition != "Diabetes" {
		t.Errorf("unexpected condition: %s", history[0].Condition)
	}
}

func TestDelete_Unknown(t *testing.T) {
	svc := NewService(newMockRepo())
	if err := svc.Delete(context.Background(), uuid.New()); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{"first", "second"}
	if errs.Error() != "first; second" {
		t.Errorf("unexpected joined message: %s", errs.Error())
	}
}
