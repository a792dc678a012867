package repositories

import (
	"context"
	"time"

	"spabook/internal/adapters/persistence/models"
	"spabook/internal/core/domain"
)

// UserRepository defines user repository interface.
// CreateWithProfile inserts the user and its role profile in one
// transaction so a failed profile insert never strands a role-less user.
type UserRepository interface {
	CreateWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ProfileRepository defines profile repository interface.
// The access guard performs exactly one GetByUserID per request.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}

// ClientRepository defines client repository interface
type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, id uint) (*models.Client, error)
	List(ctx context.Context) ([]models.Client, error)
}

// FormulaRepository defines formula repository interface
type FormulaRepository interface {
	Create(ctx context.Context, formula *models.Formula) error
	GetByID(ctx context.Context, id uint) (*models.Formula, error)
	List(ctx context.Context) ([]models.Formula, error)
}

// AppointmentRepository defines appointment repository interface
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id uint) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, id uint, expected domain.Status, updates map[string]interface{}) error
	ListByDate(ctx context.Context, date time.Time) ([]models.Appointment, error)
	List(ctx context.Context, offset, limit int) ([]models.Appointment, int64, error)
}
