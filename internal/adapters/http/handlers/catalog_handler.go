package handlers

import (
	"errors"

	"spabook/internal/core/services"
	"spabook/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// CatalogHandler handles client and formula endpoints
type CatalogHandler struct {
	catalogService *services.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// CreateClientRequest represents client creation request body
type CreateClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CreateFormulaRequest represents formula creation request body
type CreateFormulaRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Duration    int             `json:"duration"`
}

// ListClients returns all clients
// @Summary List clients
// @Description Get all clients ordered by name
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/clients [get]
func (h *CatalogHandler) ListClients(c *fiber.Ctx) error {
	clients, err := h.catalogService.ListClients(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to retrieve clients")
	}

	return response.Success(c, "Clients retrieved successfully", fiber.Map{
		"clients": clients,
	})
}

// CreateClient creates a new client
// @Summary Create client
// @Description Register a new client
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateClientRequest true "Client data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/clients [post]
func (h *CatalogHandler) CreateClient(c *fiber.Ctx) error {
	var req CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	client, err := h.catalogService.CreateClient(c.Context(), &services.CreateClientInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrClientFieldsRequired):
			return response.BadRequest(c, "Name, email, and phone are required")
		default:
			return response.InternalServerError(c, "Failed to create client")
		}
	}

	return response.Created(c, "Client created successfully", fiber.Map{
		"client": client,
	})
}

// ListFormulas returns all formulas
// @Summary List formulas
// @Description Get all service formulas ordered by name
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/formulas [get]
func (h *CatalogHandler) ListFormulas(c *fiber.Ctx) error {
	formulas, err := h.catalogService.ListFormulas(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to retrieve formulas")
	}

	return response.Success(c, "Formulas retrieved successfully", fiber.Map{
		"formulas": formulas,
	})
}

// CreateFormula creates a new formula
// @Summary Create formula
// @Description Register a new service formula with price and duration
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateFormulaRequest true "Formula data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/formulas [post]
func (h *CatalogHandler) CreateFormula(c *fiber.Ctx) error {
	var req CreateFormulaRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	formula, err := h.catalogService.CreateFormula(c.Context(), &services.CreateFormulaInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFormulaNameRequired):
			return response.BadRequest(c, "Formula name is required")
		case errors.Is(err, services.ErrNegativePrice):
			return response.BadRequest(c, "Price must not be negative")
		case errors.Is(err, services.ErrInvalidDuration):
			return response.BadRequest(c, "Duration must be a positive number of minutes")
		default:
			return response.InternalServerError(c, "Failed to create formula")
		}
	}

	return response.Created(c, "Formula created successfully", fiber.Map{
		"formula": formula,
	})
}
