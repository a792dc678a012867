package repositories

import (
	"context"

	"spabook/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// formulaRepository implements FormulaRepository interface
type formulaRepository struct {
	db *gorm.DB
}

// NewFormulaRepository creates a new formula repository
func NewFormulaRepository(db *gorm.DB) FormulaRepository {
	return &formulaRepository{db: db}
}

// Create creates a new formula
func (r *formulaRepository) Create(ctx context.Context, formula *models.Formula) error {
	return r.db.WithContext(ctx).Create(formula).Error
}

// GetByID gets a formula by ID
func (r *formulaRepository) GetByID(ctx context.Context, id uint) (*models.Formula, error) {
	var formula models.Formula
	err := r.db.WithContext(ctx).First(&formula, id).Error
	if err != nil {
		return nil, err
	}
	return &formula, nil
}

// List returns all formulas ordered by name
func (r *formulaRepository) List(ctx context.Context) ([]models.Formula, error) {
	var formulas []models.Formula
	err := r.db.WithContext(ctx).Order("name ASC").Find(&formulas).Error
	return formulas, err
}
