package doctor

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinichq/clinic-api/pkg/timeofday"
)

// Doctor maps to the doctor table.
type Doctor struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Specialty       string    `db:"specialty" json:"specialty"`
	Qualification   string    `db:"qualification" json:"qualification"`
	ExperienceYears int       `db:"experience_years" json:"experience_years"`
	ConsultationFee float64   `db:"consultation_fee" json:"consultation_fee"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// AvailabilityWindow maps to the doctor_availability table. Days run
// Monday=0 through Sunday=6; times are minutes since midnight.
type AvailabilityWindow struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	DoctorID    uuid.UUID       `db:"doctor_id" json:"doctor_id"`
	DayOfWeek   int             `db:"day_of_week" json:"day_of_week"`
	Start       timeofday.Clock `db:"start_minutes" json:"start"`
	End         timeofday.Clock `db:"end_minutes" json:"end"`
	IsAvailable bool            `db:"is_available" json:"is_available"`
}

// WorkingHours is one row of the human-readable weekly schedule.
type WorkingHours struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}
