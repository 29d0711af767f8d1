// Package availability decides whether a doctor can take an appointment
// at a requested time, proposes the next open slots and suggests
// alternative doctors of the same specialty.
package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clinichq/clinic-api/internal/domain/appointment"
	"github.com/clinichq/clinic-api/internal/domain/doctor"
	"github.com/clinichq/clinic-api/pkg/timeofday"
)

const (
	// SlotInterval is the booking grid step.
	SlotInterval = 30 * time.Minute
	// ConflictBuffer blocks a slot when another appointment starts within
	// this distance before or after it.
	ConflictBuffer = 15 * time.Minute
	// SearchHorizonDays bounds the slot search.
	SearchHorizonDays = 7
)

// ErrDoctorNotFound mirrors the doctor package sentinel so callers of
// this package match on one error.
var ErrDoctorNotFound = doctor.ErrNotFound

// DoctorStore is the slice of the doctor repository the resolver needs.
type DoctorStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*doctor.Doctor, error)
	WindowForDay(ctx context.Context, doctorID uuid.UUID, dayOfWeek int) (*doctor.AvailabilityWindow, error)
	ListBySpecialty(ctx context.Context, specialty string) ([]*doctor.Doctor, error)
}

// AppointmentStore is the slice of the appointment repository the
// resolver needs.
type AppointmentStore interface {
	AnyInRange(ctx context.Context, doctorID uuid.UUID, from, to time.Time) (bool, error)
	ListInRange(ctx context.Context, doctorID uuid.UUID, from, to time.Time) ([]*appointment.Appointment, error)
}

// Decision is the outcome of an availability check. Unavailability is a
// value, not an error; the reason is shown to the caller as-is.
type Decision struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason"`
}

// DoctorOption is one alternative doctor suggestion.
type DoctorOption struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Specialty       string    `json:"specialty"`
	ConsultationFee float64   `json:"consultation_fee"`
}

// ScheduleSlot is one cell of a doctor's day grid.
type ScheduleSlot struct {
	Time   string `json:"time"`
	Booked bool   `json:"booked"`
}

type Resolver struct {
	doctors      DoctorStore
	appointments AppointmentStore
}

func NewResolver(doctors DoctorStore, appointments AppointmentStore) *Resolver {
	return &Resolver{doctors: doctors, appointments: appointments}
}

// Check decides whether the doctor can take an appointment starting at t.
func (r *Resolver) Check(ctx context.Context, doctorID uuid.UUID, t time.Time) (Decision, error) {
	if _, err := r.doctors.GetByID(ctx, doctorID); err != nil {
		return Decision{}, err
	}

	w, err := r.doctors.WindowForDay(ctx, doctorID, timeofday.DayOfWeek(t))
	if err != nil {
		return Decision{}, err
	}
	if w == nil {
		return Decision{Reason: "Doctor is not available on this day"}, nil
	}

	clock := timeofday.FromTime(t)
	if clock < w.Start || clock > w.End {
		return Decision{Reason: fmt.Sprintf("Doctor is only available between %s and %s",
			w.Start.Display(), w.End.Display())}, nil
	}

	busy, err := r.appointments.AnyInRange(ctx, doctorID, t.Add(-ConflictBuffer), t.Add(ConflictBuffer))
	if err != nil {
		return Decision{}, err
	}
	if busy {
		return Decision{Reason: "Doctor is busy with another patient at this time"}, nil
	}

	return Decision{Available: true, Reason: "Available"}, nil
}

// NextSlots walks the doctor's windows over the next SearchHorizonDays
// calendar days on the SlotInterval grid and returns up to limit open
// start times in chronological order. An exhausted horizon yields an
// empty slice, not an error.
func (r *Resolver) NextSlots(ctx context.Context, doctorID uuid.UUID, from time.Time, limit int) ([]time.Time, error) {
	if _, err := r.doctors.GetByID(ctx, doctorID); err != nil {
		return nil, err
	}

	slots := []time.Time{}
	if limit <= 0 {
		return slots, nil
	}

	for day := 0; day < SearchHorizonDays; day++ {
		date := from.AddDate(0, 0, day)
		w, err := r.doctors.WindowForDay(ctx, doctorID, timeofday.DayOfWeek(date))
		if err != nil {
			return nil, err
		}
		if w == nil {
			continue
		}

		start := w.Start.On(date)
		if day == 0 {
			if earliest := from.Add(SlotInterval); earliest.After(start) {
				start = earliest
			}
		}
		end := w.End.On(date)

		for cur := start; !cur.After(end); cur = cur.Add(SlotInterval) {
			dec, err := r.Check(ctx, doctorID, cur)
			if err != nil {
				return nil, err
			}
			if dec.Available {
				slots = append(slots, cur)
				if len(slots) >= limit {
					return slots, nil
				}
			}
		}
	}

	return slots, nil
}

// Alternatives lists the other doctors of the same specialty, in
// creation order, that are free at exactly t.
func (r *Resolver) Alternatives(ctx context.Context, doctorID uuid.UUID, t time.Time) ([]DoctorOption, error) {
	ref, err := r.doctors.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	peers, err := r.doctors.ListBySpecialty(ctx, ref.Specialty)
	if err != nil {
		return nil, err
	}

	options := []DoctorOption{}
	for _, d := range peers {
		if d.ID == doctorID {
			continue
		}
		dec, err := r.Check(ctx, d.ID, t)
		if err != nil {
			return nil, err
		}
		if dec.Available {
			options = append(options, DoctorOption{
				ID:              d.ID,
				Name:            d.Name,
				Specialty:       d.Specialty,
				ConsultationFee: d.ConsultationFee,
			})
		}
	}
	return options, nil
}

// DaySchedule renders the doctor's window on date as a 30-minute grid
// with booked flags. A day without a window yields an empty grid.
func (r *Resolver) DaySchedule(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]ScheduleSlot, error) {
	if _, err := r.doctors.GetByID(ctx, doctorID); err != nil {
		return nil, err
	}

	w, err := r.doctors.WindowForDay(ctx, doctorID, timeofday.DayOfWeek(date))
	if err != nil {
		return nil, err
	}
	grid := []ScheduleSlot{}
	if w == nil {
		return grid, nil
	}

	start := w.Start.On(date)
	end := w.End.On(date)
	booked, err := r.appointments.ListInRange(ctx, doctorID, start, end.Add(SlotInterval))
	if err != nil {
		return nil, err
	}

	for cur := start; cur.Before(end); cur = cur.Add(SlotInterval) {
		slot := ScheduleSlot{Time: timeofday.FromTime(cur).Display()}
		for _, a := range booked {
			// Completed appointments free the cell; only scheduled ones
			// occupy it.
			if a.Status != appointment.StatusScheduled {
				continue
			}
			if !a.StartTime.Before(cur) && a.StartTime.Before(cur.Add(SlotInterval)) {
				slot.Booked = true
				break
			}
		}
		grid = append(grid, slot)
	}
	return grid, nil
}
