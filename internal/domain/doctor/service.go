package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clinichq/clinic-api/pkg/timeofday"
)

type Service struct {
	doctors Repository
}

func NewService(doctors Repository) *Service {
	return &Service{doctors: doctors}
}

func (s *Service) Create(ctx context.Context, d *Doctor) error {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(d.Specialty) == "" {
		return fmt.Errorf("specialty is required")
	}
	if d.ConsultationFee < 0 {
		return fmt.Errorf("consultation_fee must not be negative")
	}
	return s.doctors.Create(ctx, d)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, specialty string, limit, offset int) ([]*Doctor, int, error) {
	return s.doctors.List(ctx, specialty, limit, offset)
}

// AddWindow records a weekly availability window for a doctor.
func (s *Service) AddWindow(ctx context.Context, w *AvailabilityWindow) error {
	if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
		return fmt.Errorf("day_of_week must be between 0 (Monday) and 6 (Sunday)")
	}
	if w.IsAvailable && w.Start >= w.End {
		return fmt.Errorf("window start must be before end")
	}
	if _, err := s.doctors.GetByID(ctx, w.DoctorID); err != nil {
		return err
	}
	return s.doctors.AddWindow(ctx, w)
}

// WorkingHours lists the doctor's available windows with day names and
// 12-hour clock display, Monday first.
func (s *Service) WorkingHours(ctx context.Context, doctorID uuid.UUID) ([]WorkingHours, error) {
	if _, err := s.doctors.GetByID(ctx, doctorID); err != nil {
		return nil, err
	}
	windows, err := s.doctors.ListWindows(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	hours := []WorkingHours{}
	for _, w := range windows {
		if !w.IsAvailable {
			continue
		}
		hours = append(hours, WorkingHours{
			Day:   timeofday.DayName(w.DayOfWeek),
			Start: w.Start.Display(),
			End:   w.End.Display(),
		})
	}
	return hours, nil
}

// seedDoctor is one canonical doctor with a Monday through Saturday
// 09:00 to 17:00 week.
type seedDoctor struct {
	name          string
	specialty     string
	qualification string
	experience    int
	fee           float64
}

var seedDoctors = []seedDoctor{
	{"Dr. Janmejaya Panda", "General Medicine", "MBBS, MD (Internal Medicine)", 15, 500},
	{"Dr. Subham Khandual", "General Medicine", "MBBS, MD (Internal Medicine), DNB", 12, 600},
	{"Dr. Subhendra Sahoo", "Oncology", "MBBS, MD (Oncology), DM", 18, 1000},
	{"Dr. Rati Bhusan Dash", "Oncology", "MBBS, MD (Radiation Oncology)", 14, 900},
}

// Seed inserts the canonical doctors and their weekly windows when they
// are not already present. Safe to run repeatedly.
func (s *Service) Seed(ctx context.Context, logger zerolog.Logger) error {
	start := timeofday.New(9, 0)
	end := timeofday.New(17, 0)

	for _, sd := range seedDoctors {
		existing, err := s.doctors.ListBySpecialty(ctx, sd.specialty)
		if err != nil {
			return fmt.Errorf("list %s doctors: %w", sd.specialty, err)
		}
		found := false
		for _, d := range existing {
			if d.Name == sd.name {
				found = true
				break
			}
		}
		if found {
			logger.Debug().Str("doctor", sd.name).Msg("seed: doctor already present")
			continue
		}

		d := &Doctor{
			Name:            sd.name,
			Specialty:       sd.specialty,
			Qualification:   sd.qualification,
			ExperienceYears: sd.experience,
			ConsultationFee: sd.fee,
		}
		if err := s.doctors.Create(ctx, d); err != nil {
			return fmt.Errorf("seed doctor %s: %w", sd.name, err)
		}

		// Monday through Saturday; Sunday stays unscheduled
		for day := 0; day <= 5; day++ {
			w := &AvailabilityWindow{
				DoctorID:    d.ID,
				DayOfWeek:   day,
				Start:       start,
				End:         end,
				IsAvailable: true,
			}
			if err := s.doctors.AddWindow(ctx, w); err != nil {
				return fmt.Errorf("seed windows for %s: %w", sd.name, err)
			}
		}
		logger.Info().Str("doctor", sd.name).Str("specialty", sd.specialty).Msg("seeded doctor")
	}
	return nil
}
