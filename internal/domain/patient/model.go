package patient

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patient table.
type Patient struct {
	ID        uuid.UUID `db:"id" json:"id"`
	MRN       string    `db:"mrn" json:"mrn"`
	Name      string    `db:"name" json:"name"`
	Age       int       `db:"age" json:"age"`
	Gender    string    `db:"gender" json:"gender"`
	Contact   string    `db:"contact" json:"contact"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// MRNFromID derives a default medical record number from the patient's ID.
func MRNFromID(id uuid.UUID) string {
	return "MRN-" + strings.ToUpper(id.String()[:8])
}

// MedicalHistory maps to the medical_history table.
type MedicalHistory struct {
	ID         uuid.UUID `db:"id" json:"id"`
	PatientID  uuid.UUID `db:"patient_id" json:"patient_id"`
	Condition  string    `db:"condition" json:"condition"`
	Notes      string    `db:"notes" json:"notes"`
	RecordedAt time.Time `db:"recorded_at" json:"recorded_at"`
}

// Stats summarizes the clinic's activity for the dashboard endpoint.
type Stats struct {
	TotalPatients        int `json:"total_patients"`
	TotalAppointments    int `json:"total_appointments"`
	UpcomingAppointments int `json:"upcoming_appointments"`
}
