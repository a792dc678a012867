package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"

	"spabook/internal/adapters/persistence/models"
	"spabook/internal/core/services"
)

func catalogApp() *fiber.App {
	clients := &memClientRepo{clients: make(map[uint]*models.Client)}
	formulas := &memFormulaRepo{formulas: make(map[uint]*models.Formula)}

	handler := NewCatalogHandler(services.NewCatalogService(clients, formulas))

	app := fiber.New()
	app.Get("/clients", handler.ListClients)
	app.Post("/clients", handler.CreateClient)
	app.Get("/formulas", handler.ListFormulas)
	app.Post("/formulas", handler.CreateFormula)
	return app
}

func TestCreateClientEndpoint(t *testing.T) {
	app := catalogApp()

	parsed, code, err := postJSON(app, "/clients", fiber.Map{
		"name":  "Alice Martin",
		"email": "alice@example.com",
		"phone": "0600000001",
	})
	if err != nil {
		t.Fatalf("request error = %v", err)
	}
	if code != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201 (%+v)", code, parsed)
	}
}

func TestCreateClientEndpointMissingFields(t *testing.T) {
	app := catalogApp()

	_, code, err := postJSON(app, "/clients", fiber.Map{"name": "Alice Martin"})
	if err != nil {
		t.Fatalf("request error = %v", err)
	}
	if code != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
}

func TestCreateFormulaEndpoint(t *testing.T) {
	app := catalogApp()

	parsed, code, err := postJSON(app, "/formulas", fiber.Map{
		"name":     "Deep Tissue",
		"price":    "80.00",
		"duration": 60,
	})
	if err != nil {
		t.Fatalf("request error = %v", err)
	}
	if code != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201 (%+v)", code, parsed)
	}
}

func TestCreateFormulaEndpointNegativePrice(t *testing.T) {
	app := catalogApp()

	_, code, err := postJSON(app, "/formulas", fiber.Map{
		"name":     "Deep Tissue",
		"price":    "-5.00",
		"duration": 60,
	})
	if err != nil {
		t.Fatalf("request error = %v", err)
	}
	if code != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
}
