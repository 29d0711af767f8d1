package availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/clinichq/clinic-api/internal/platform/auth"
)

type Handler struct {
	resolver *Resolver
	booking  *BookingService
}

func NewHandler(resolver *Resolver, booking *BookingService) *Handler {
	return &Handler{resolver: resolver, booking: booking}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("", auth.RequireRole("admin", "doctor", "receptionist"))
	g.GET("/availability/check", h.Check)
	g.GET("/availability/slots", h.Slots)
	g.GET("/availability/alternatives", h.Alternatives)
	g.GET("/doctors/:id/day-schedule", h.DaySchedule)
	g.POST("/appointments", h.Book)
}

func (h *Handler) queryTime(c echo.Context) (uuid.UUID, time.Time, error) {
	doctorID, err := uuid.Parse(c.QueryParam("doctor_id"))
	if err != nil {
		return uuid.Nil, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "invalid doctor_id")
	}
	at, err := ParseRequestTime(c.QueryParam("date"), c.QueryParam("time"))
	if err != nil {
		return uuid.Nil, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return doctorID, at, nil
}

func (h *Handler) Check(c echo.Context) error {
	doctorID, at, err := h.queryTime(c)
	if err != nil {
		return err
	}
	dec, err := h.resolver.Check(c.Request().Context(), doctorID, at)
	if err != nil {
		if errors.Is(err, ErrDoctorNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dec)
}

func (h *Handler) Slots(c echo.Context) error {
	doctorID, at, err := h.queryTime(c)
	if err != nil {
		return err
	}
	limit := 3
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
	}
	slots, err := h.resolver.NextSlots(c.Request().Context(), doctorID, at, limit)
	if err != nil {
		if errors.Is(err, ErrDoctorNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	formatted := make([]string, 0, len(slots))
	for _, slot := range slots {
		formatted = append(formatted, slot.Format(SlotDisplayFormat))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"slots": formatted})
}

func (h *Handler) Alternatives(c echo.Context) error {
	doctorID, at, err := h.queryTime(c)
	if err != nil {
		return err
	}
	options, err := h.resolver.Alternatives(c.Request().Context(), doctorID, at)
	if err != nil {
		if errors.Is(err, ErrDoctorNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"alternative_doctors": options})
}

func (h *Handler) DaySchedule(c echo.Context) error {
	doctorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	date, err := time.ParseInLocation("2006-01-02", c.QueryParam("date"), time.Local)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date: expected 2006-01-02")
	}
	grid, err := h.resolver.DaySchedule(c.Request().Context(), doctorID, date)
	if err != nil {
		if errors.Is(err, ErrDoctorNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"date":  c.QueryParam("date"),
		"slots": grid,
	})
}

func (h *Handler) Book(c echo.Context) error {
	var req BookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	result, err := h.booking.Book(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPatientNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "patient not found")
		case errors.Is(err, ErrDoctorNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
		case errors.Is(err, ErrInvalidRequest):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not schedule appointment, please try again")
	}
	if !result.Booked {
		return c.JSON(http.StatusConflict, result)
	}
	return c.JSON(http.StatusCreated, result)
}
