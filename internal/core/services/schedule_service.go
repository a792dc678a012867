package services

import (
	"context"
	"errors"
	"log"
	"time"

	"spabook/internal/adapters/persistence/models"
	"spabook/internal/adapters/persistence/repositories"
	"spabook/internal/core/domain"

	"gorm.io/gorm"
)

// Schedule errors
var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrClientNotFound      = errors.New("client not found")
	ErrFormulaNotFound     = errors.New("formula not found")
	ErrTimeRequired        = errors.New("a valid appointment time is required")
	ErrDateRequired        = errors.New("a valid appointment date is required")
)

// BookingNotifier pushes operator notifications for new bookings
type BookingNotifier interface {
	NotifyAppointmentBooked(appt *models.Appointment)
}

// ScheduleService handles appointment booking and lifecycle
type ScheduleService struct {
	apptRepo    repositories.AppointmentRepository
	clientRepo  repositories.ClientRepository
	formulaRepo repositories.FormulaRepository
	notifier    BookingNotifier
}

// NewScheduleService creates a new schedule service
func NewScheduleService(
	apptRepo repositories.AppointmentRepository,
	clientRepo repositories.ClientRepository,
	formulaRepo repositories.FormulaRepository,
	notifier BookingNotifier,
) *ScheduleService {
	return &ScheduleService{
		apptRepo:    apptRepo,
		clientRepo:  clientRepo,
		formulaRepo: formulaRepo,
		notifier:    notifier,
	}
}

// CreateAppointmentInput represents appointment creation input
type CreateAppointmentInput struct {
	ClientID  uint   `json:"client_id" validate:"required"`
	FormulaID uint   `json:"formula_id" validate:"required"`
	Date      string `json:"date" validate:"required"` // "2006-01-02"
	Time      string `json:"time" validate:"required"` // "15:04"
}

// Create books a new appointment with status scheduled.
// All input is validated before any store call is issued.
func (s *ScheduleService) Create(ctx context.Context, input *CreateAppointmentInput) (*models.Appointment, error) {
	if input.Time == "" {
		return nil, ErrTimeRequired
	}
	if _, err := time.Parse("15:04", input.Time); err != nil {
		return nil, ErrTimeRequired
	}
	date, err := time.ParseInLocation("2006-01-02", input.Date, time.Local)
	if err != nil {
		return nil, ErrDateRequired
	}

	if _, err := s.clientRepo.GetByID(ctx, input.ClientID); err != nil {
		return nil, ErrClientNotFound
	}
	if _, err := s.formulaRepo.GetByID(ctx, input.FormulaID); err != nil {
		return nil, ErrFormulaNotFound
	}

	appt := &models.Appointment{
		ClientID:  input.ClientID,
		FormulaID: input.FormulaID,
		Date:      date,
		Time:      input.Time,
		Status:    domain.StatusScheduled,
	}
	if err := s.apptRepo.Create(ctx, appt); err != nil {
		return nil, err
	}

	// Reload with relations so the caller sees the committed row
	appt, err = s.apptRepo.GetByID(ctx, appt.ID)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Appointment booked: #%d on %s at %s", appt.ID, appt.Date.Format("2006-01-02"), appt.Time)
	s.notifier.NotifyAppointmentBooked(appt)

	return appt, nil
}

// DailySchedule returns all appointments for a calendar date, joined
// with client and formula, ordered by time ascending
func (s *ScheduleService) DailySchedule(ctx context.Context, date time.Time) ([]models.Appointment, error) {
	return s.apptRepo.ListByDate(ctx, date)
}

// List returns appointments ordered by date with pagination
func (s *ScheduleService) List(ctx context.Context, offset, limit int) ([]models.Appointment, int64, error) {
	return s.apptRepo.List(ctx, offset, limit)
}

// Start moves an appointment from scheduled to in_progress
func (s *ScheduleService) Start(ctx context.Context, id uint) (*models.Appointment, error) {
	return s.transition(ctx, id, domain.StatusInProgress)
}

// Complete moves an appointment from in_progress to completed
func (s *ScheduleService) Complete(ctx context.Context, id uint) (*models.Appointment, error) {
	return s.transition(ctx, id, domain.StatusCompleted)
}

// transition validates the requested status change against the central
// transition table, persists it, then re-reads the committed row so the
// returned state never diverges from the store. A persistence failure
// leaves the stored row untouched.
func (s *ScheduleService) transition(ctx context.Context, id uint, target domain.Status) (*models.Appointment, error) {
	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	if !appt.Status.CanTransition(target) {
		return nil, ErrInvalidTransition
	}

	updates := map[string]interface{}{
		"status": target,
	}
	if target == domain.StatusCompleted {
		now := time.Now()
		updates["completed_at"] = &now
	}
	// The update is guarded on the status just read, so a concurrent
	// transition that wins the race makes this one fail instead of
	// double-applying.
	if err := s.apptRepo.UpdateStatus(ctx, id, appt.Status, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidTransition
		}
		return nil, err
	}

	appt, err = s.apptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Appointment #%d now %s", appt.ID, appt.Status)
	return appt, nil
}
