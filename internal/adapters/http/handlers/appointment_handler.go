package handlers

import (
	"errors"

	"spabook/internal/adapters/persistence/models"
	"spabook/internal/core/services"
	"spabook/internal/pkg/pagination"
	"spabook/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AppointmentHandler handles appointment booking endpoints
type AppointmentHandler struct {
	scheduleService *services.ScheduleService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(scheduleService *services.ScheduleService) *AppointmentHandler {
	return &AppointmentHandler{scheduleService: scheduleService}
}

// CreateAppointmentRequest represents appointment creation request body
type CreateAppointmentRequest struct {
	ClientID  uint   `json:"client_id"`
	FormulaID uint   `json:"formula_id"`
	Date      string `json:"date"` // "2006-01-02"
	Time      string `json:"time"` // "15:04"
}

// Create books a new appointment
// @Summary Book appointment
// @Description Book a new appointment in scheduled status
// @Tags Appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateAppointmentRequest true "Appointment data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/appointments [post]
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var req CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Validate required fields
	if req.ClientID == 0 {
		return response.BadRequest(c, "Client is required")
	}
	if req.FormulaID == 0 {
		return response.BadRequest(c, "Formula is required")
	}

	appt, err := h.scheduleService.Create(c.Context(), &services.CreateAppointmentInput{
		ClientID:  req.ClientID,
		FormulaID: req.FormulaID,
		Date:      req.Date,
		Time:      req.Time,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTimeRequired):
			return response.BadRequest(c, "A valid appointment time is required")
		case errors.Is(err, services.ErrDateRequired):
			return response.BadRequest(c, "A valid appointment date is required")
		case errors.Is(err, services.ErrClientNotFound):
			return response.NotFound(c, "Client not found")
		case errors.Is(err, services.ErrFormulaNotFound):
			return response.NotFound(c, "Formula not found")
		default:
			return response.InternalServerError(c, "Failed to book appointment")
		}
	}

	return response.Created(c, "Appointment booked successfully", fiber.Map{
		"appointment": appt.ToResponse(),
	})
}

// List returns appointments with pagination
// @Summary List appointments
// @Description Get appointments ordered by date and time
// @Tags Appointments
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /admin/appointments [get]
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	appts, total, err := h.scheduleService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to retrieve appointments")
	}

	items := make([]*models.AppointmentResponse, 0, len(appts))
	for i := range appts {
		items = append(items, appts[i].ToResponse())
	}

	return response.Success(c, "Appointments retrieved successfully", fiber.Map{
		"appointments": items,
		"meta":         pagination.GetMeta(params, total),
	})
}
