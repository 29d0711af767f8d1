package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clinichq/clinic-api/internal/domain/appointment"
	"github.com/clinichq/clinic-api/internal/domain/patient"
	"github.com/clinichq/clinic-api/internal/platform/db"
)

// SlotDisplayFormat is how suggested slots are rendered to the caller.
const SlotDisplayFormat = "2006-01-02 03:04 PM"

// ErrPatientNotFound mirrors the patient package sentinel.
var ErrPatientNotFound = patient.ErrNotFound

// ErrInvalidRequest marks malformed booking input.
var ErrInvalidRequest = errors.New("invalid booking request")

// PatientStore is the slice of the patient repository booking needs.
type PatientStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
}

// AppointmentWriter extends the resolver's read view with creation.
type AppointmentWriter interface {
	AppointmentStore
	Create(ctx context.Context, a *appointment.Appointment) error
}

// BookingRequest is the booking endpoint payload. Date is "2006-01-02",
// Time is 24-hour "15:04".
type BookingRequest struct {
	PatientID uuid.UUID `json:"patient_id"`
	DoctorID  uuid.UUID `json:"doctor_id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Reason    string    `json:"reason"`
}

// BookingResult reports either the created appointment or the refusal
// reason with suggestions.
type BookingResult struct {
	Booked             bool                     `json:"booked"`
	Message            string                   `json:"message"`
	Appointment        *appointment.Appointment `json:"appointment,omitempty"`
	NextAvailableSlots []string                 `json:"next_available_slots,omitempty"`
	AlternativeDoctors []DoctorOption           `json:"alternative_doctors,omitempty"`
}

// BookingService runs the check-then-book flow in one serializable
// transaction so two bookings cannot claim overlapping slots.
type BookingService struct {
	resolver     *Resolver
	patients     PatientStore
	appointments AppointmentWriter
	tx           db.TxRunner
}

func NewBookingService(resolver *Resolver, patients PatientStore, appointments AppointmentWriter, tx db.TxRunner) *BookingService {
	return &BookingService{resolver: resolver, patients: patients, appointments: appointments, tx: tx}
}

// ParseRequestTime combines the request's date and time fields.
func ParseRequestTime(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expected date 2006-01-02 and time 15:04", ErrInvalidRequest)
	}
	return t, nil
}

// Book checks availability and either schedules the appointment or
// returns a refusal carrying the next open slots and alternative
// doctors. The refusal is a result, not an error.
func (s *BookingService) Book(ctx context.Context, req BookingRequest) (*BookingResult, error) {
	at, err := ParseRequestTime(req.Date, req.Time)
	if err != nil {
		return nil, err
	}
	if _, err := s.patients.GetByID(ctx, req.PatientID); err != nil {
		return nil, err
	}

	var result *BookingResult
	err = s.tx.Serializable(ctx, func(ctx context.Context) error {
		dec, err := s.resolver.Check(ctx, req.DoctorID, at)
		if err != nil {
			return err
		}

		if !dec.Available {
			slots, err := s.resolver.NextSlots(ctx, req.DoctorID, at, 3)
			if err != nil {
				return err
			}
			alternatives, err := s.resolver.Alternatives(ctx, req.DoctorID, at)
			if err != nil {
				return err
			}

			formatted := make([]string, 0, len(slots))
			for _, slot := range slots {
				formatted = append(formatted, slot.Format(SlotDisplayFormat))
			}
			result = &BookingResult{
				Message:            dec.Reason,
				NextAvailableSlots: formatted,
				AlternativeDoctors: alternatives,
			}
			return nil
		}

		a := &appointment.Appointment{
			PatientID: req.PatientID,
			DoctorID:  req.DoctorID,
			StartTime: at,
			Reason:    req.Reason,
			Status:    appointment.StatusScheduled,
		}
		if err := s.appointments.Create(ctx, a); err != nil {
			return err
		}
		result = &BookingResult{
			Booked:      true,
			Message:     "Appointment scheduled successfully!",
			Appointment: a,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
