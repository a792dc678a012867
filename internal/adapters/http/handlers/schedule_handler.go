package handlers

import (
	"errors"
	"strconv"
	"time"

	"spabook/internal/adapters/persistence/models"
	"spabook/internal/core/services"
	"spabook/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ScheduleHandler handles the masseur's working view of the day
type ScheduleHandler struct {
	scheduleService *services.ScheduleService
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleService *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// Daily returns the schedule for one calendar day
// @Summary Get daily schedule
// @Description Get all appointments for a date, ordered by time. Defaults to today.
// @Tags Schedule
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /masseur/schedule [get]
func (h *ScheduleHandler) Daily(c *fiber.Ctx) error {
	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return response.BadRequest(c, "Date must be in YYYY-MM-DD format")
		}
		date = parsed
	}

	appts, err := h.scheduleService.DailySchedule(c.Context(), date)
	if err != nil {
		return response.InternalServerError(c, "Failed to retrieve schedule")
	}

	items := make([]*models.AppointmentResponse, 0, len(appts))
	for i := range appts {
		items = append(items, appts[i].ToResponse())
	}

	return response.Success(c, "Schedule retrieved successfully", fiber.Map{
		"date":         date.Format("2006-01-02"),
		"appointments": items,
	})
}

// Start moves an appointment to in_progress
// @Summary Start appointment
// @Description Move a scheduled appointment to in_progress
// @Tags Schedule
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /masseur/appointments/{id}/start [post]
func (h *ScheduleHandler) Start(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid appointment ID")
	}

	appt, err := h.scheduleService.Start(c.Context(), uint(id))
	if err != nil {
		return h.transitionError(c, err, "start")
	}

	return response.Success(c, "Appointment started", fiber.Map{
		"appointment": appt.ToResponse(),
	})
}

// Complete moves an appointment to completed
// @Summary Complete appointment
// @Description Move an in_progress appointment to completed
// @Tags Schedule
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /masseur/appointments/{id}/complete [post]
func (h *ScheduleHandler) Complete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid appointment ID")
	}

	appt, err := h.scheduleService.Complete(c.Context(), uint(id))
	if err != nil {
		return h.transitionError(c, err, "complete")
	}

	return response.Success(c, "Appointment completed", fiber.Map{
		"appointment": appt.ToResponse(),
	})
}

func (h *ScheduleHandler) transitionError(c *fiber.Ctx, err error, action string) error {
	switch {
	case errors.Is(err, services.ErrAppointmentNotFound):
		return response.NotFound(c, "Appointment not found")
	case errors.Is(err, services.ErrInvalidTransition):
		return response.Conflict(c, "Cannot "+action+" appointment from its current status")
	default:
		return response.InternalServerError(c, "Failed to "+action+" appointment")
	}
}
