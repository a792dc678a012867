package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"spabook/internal/adapters/persistence/models"
	"spabook/internal/adapters/persistence/repositories"

	"github.com/shopspring/decimal"
)

// Catalog errors
var (
	ErrClientFieldsRequired = errors.New("name, email, and phone are required")
	ErrFormulaNameRequired  = errors.New("formula name is required")
	ErrNegativePrice        = errors.New("price must not be negative")
	ErrInvalidDuration      = errors.New("duration must be a positive number of minutes")
)

// CatalogService handles client and formula management
type CatalogService struct {
	clientRepo  repositories.ClientRepository
	formulaRepo repositories.FormulaRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	clientRepo repositories.ClientRepository,
	formulaRepo repositories.FormulaRepository,
) *CatalogService {
	return &CatalogService{
		clientRepo:  clientRepo,
		formulaRepo: formulaRepo,
	}
}

// CreateClientInput represents client creation input
type CreateClientInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

// CreateFormulaInput represents formula creation input
type CreateFormulaInput struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Duration    int             `json:"duration" validate:"required,gt=0"`
}

// CreateClient creates a new client record
func (s *CatalogService) CreateClient(ctx context.Context, input *CreateClientInput) (*models.Client, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	phone := strings.TrimSpace(input.Phone)
	if name == "" || email == "" || phone == "" {
		return nil, ErrClientFieldsRequired
	}

	client := &models.Client{
		Name:  name,
		Email: email,
		Phone: phone,
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	log.Printf("✅ Client created: %s", client.Name)
	return client, nil
}

// ListClients returns all clients ordered by name
func (s *CatalogService) ListClients(ctx context.Context) ([]models.Client, error) {
	return s.clientRepo.List(ctx)
}

// CreateFormula creates a new service formula
func (s *CatalogService) CreateFormula(ctx context.Context, input *CreateFormulaInput) (*models.Formula, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrFormulaNameRequired
	}
	if input.Price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if input.Duration <= 0 {
		return nil, ErrInvalidDuration
	}

	formula := &models.Formula{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Duration:    input.Duration,
	}
	if err := s.formulaRepo.Create(ctx, formula); err != nil {
		return nil, err
	}

	log.Printf("✅ Formula created: %s (%s, %d min)", formula.Name, formula.Price.StringFixed(2), formula.Duration)
	return formula, nil
}

// ListFormulas returns all formulas ordered by name
func (s *CatalogService) ListFormulas(ctx context.Context) ([]models.Formula, error) {
	return s.formulaRepo.List(ctx)
}
