package repositories

import (
	"context"
	"time"

	"spabook/internal/adapters/persistence/models"
	"spabook/internal/core/domain"

	"gorm.io/gorm"
)

// appointmentRepository implements AppointmentRepository interface
type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

// Create creates a new appointment
func (r *appointmentRepository) Create(ctx context.Context, appt *models.Appointment) error {
	return r.db.WithContext(ctx).Create(appt).Error
}

// GetByID gets an appointment by ID with client and formula preloaded
func (r *appointmentRepository) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var appt models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Formula").
		First(&appt, id).Error
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// UpdateStatus updates appointment status and related timestamps.
// The write is conditional on the row still holding the expected
// status; a concurrent transition that got there first yields
// gorm.ErrRecordNotFound instead of overwriting it.
func (r *appointmentRepository) UpdateStatus(ctx context.Context, id uint, expected domain.Status, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status = ?", id, expected).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByDate returns all appointments for a calendar date, joined with
// client and formula, ordered by time ascending
func (r *appointmentRepository) ListByDate(ctx context.Context, date time.Time) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Formula").
		Where("date = ?", date.Format("2006-01-02")).
		Order("time ASC").
		Find(&appts).Error
	return appts, err
}

// List returns appointments with pagination, ordered by date then time
func (r *appointmentRepository) List(ctx context.Context, offset, limit int) ([]models.Appointment, int64, error) {
	var appts []models.Appointment
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Appointment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Formula").
		Order("date ASC, time ASC").
		Offset(offset).
		Limit(limit).
		Find(&appts).Error
	return appts, total, err
}
