package config

import (
	"log"

	"spabook/internal/adapters/persistence/models"
	"spabook/internal/core/domain"
	"spabook/internal/pkg/password"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedStaffAccounts(); err != nil {
		log.Printf("⚠️ Staff seeder skipped: %v", err)
	}
	if err := s.seedFormulas(); err != nil {
		return err
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedStaffAccounts seeds default admin and masseur accounts.
// This is for development/testing only; in production, staff accounts
// are created through the admin staff endpoint.
func (s *Seeder) seedStaffAccounts() error {
	accounts := []struct {
		email       string
		displayName string
		role        domain.Role
	}{
		{"admin@spabook.local", "Administrator", domain.RoleAdmin},
		{"masseur@spabook.local", "Masseur", domain.RoleMasseur},
	}

	for _, acc := range accounts {
		var count int64
		s.db.Model(&models.User{}).Where("email = ?", acc.email).Count(&count)
		if count > 0 {
			continue
		}

		hashedPassword, err := password.Hash("changeme1234")
		if err != nil {
			return err
		}

		user := &models.User{
			Email:    acc.email,
			Password: hashedPassword,
			IsActive: true,
		}
		if err := s.db.Create(user).Error; err != nil {
			return err
		}

		profile := &models.Profile{
			UserID:      user.ID,
			DisplayName: acc.displayName,
			Role:        acc.role,
		}
		if err := s.db.Create(profile).Error; err != nil {
			return err
		}

		log.Printf("   Created staff account: %s (%s)", acc.email, acc.role)
	}
	return nil
}

// seedFormulas seeds a starter service catalog
func (s *Seeder) seedFormulas() error {
	formulas := []models.Formula{
		{
			Name:        "Swedish Massage",
			Description: "Full-body relaxation massage with long, flowing strokes",
			Price:       decimal.NewFromInt(65),
			Duration:    60,
		},
		{
			Name:        "Deep Tissue",
			Description: "Focused pressure on chronic muscle tension",
			Price:       decimal.NewFromInt(80),
			Duration:    60,
		},
		{
			Name:        "Express Back & Neck",
			Description: "Targeted back and neck treatment for a short break",
			Price:       decimal.NewFromInt(40),
			Duration:    30,
		},
	}

	for _, f := range formulas {
		var existing models.Formula
		err := s.db.Where("name = ?", f.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := s.db.Create(&f).Error; err != nil {
			return err
		}
		log.Printf("   Created formula: %s", f.Name)
	}
	return nil
}
