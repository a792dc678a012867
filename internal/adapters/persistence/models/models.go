package models

import (
	"time"

	"spabook/internal/core/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ============================================================
// Auth & Identity Tables
// ============================================================

// User represents the users table (authentication identity)
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Profile *Profile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	Role        string    `json:"role,omitempty"`
	DisplayName string    `json:"display_name,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	resp := &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
	if u.Profile != nil {
		resp.Role = string(u.Profile.Role)
		resp.DisplayName = u.Profile.DisplayName
	}
	return resp
}

// Profile represents the profiles table.
// Exactly one profile may exist per user; the role field gates access
// to the admin and masseur route groups.
type Profile struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	UserID      uint        `gorm:"uniqueIndex;not null" json:"user_id"`
	DisplayName string      `gorm:"size:100" json:"display_name"`
	Role        domain.Role `gorm:"size:20" json:"role"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

// RefreshToken represents the refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Booking Tables
// ============================================================

// Client represents the clients table
type Client struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Email     string         `gorm:"size:100;not null" json:"email"`
	Phone     string         `gorm:"size:30;not null" json:"phone"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Client) TableName() string {
	return "clients"
}

// Formula represents the formulas table (a named service offering)
type Formula struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:100;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Duration    int             `gorm:"not null" json:"duration"` // minutes
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Formula) TableName() string {
	return "formulas"
}

// Appointment represents the appointments table.
// Status is the only field mutated after creation, and only through
// the schedule service's transition operations.
type Appointment struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	ClientID    uint          `gorm:"not null;index" json:"client_id"`
	FormulaID   uint          `gorm:"not null;index" json:"formula_id"`
	Date        time.Time     `gorm:"type:date;not null;index" json:"date"`
	Time        string        `gorm:"size:5;not null" json:"time"` // "HH:MM", sorts lexically
	Status      domain.Status `gorm:"size:20;not null;default:'scheduled'" json:"status"`
	CompletedAt *time.Time    `json:"completed_at"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Client  *Client  `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Formula *Formula `gorm:"foreignKey:FormulaID" json:"formula,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// AppointmentResponse DTO
type AppointmentResponse struct {
	ID          uint          `json:"id"`
	ClientID    uint          `json:"client_id"`
	ClientName  string        `json:"client_name,omitempty"`
	FormulaID   uint          `json:"formula_id"`
	FormulaName string        `json:"formula_name,omitempty"`
	Duration    int           `json:"duration,omitempty"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Status      domain.Status `json:"status"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
}

func (a *Appointment) ToResponse() *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:          a.ID,
		ClientID:    a.ClientID,
		FormulaID:   a.FormulaID,
		Date:        a.Date.Format("2006-01-02"),
		Time:        a.Time,
		Status:      a.Status,
		CompletedAt: a.CompletedAt,
	}
	if a.Client != nil {
		resp.ClientName = a.Client.Name
	}
	if a.Formula != nil {
		resp.FormulaName = a.Formula.Name
		resp.Duration = a.Formula.Duration
	}
	return resp
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Profile{},
		&RefreshToken{},
		&Client{},
		&Formula{},
		&Appointment{},
	)
}
