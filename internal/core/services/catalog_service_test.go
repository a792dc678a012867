package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCreateClient(t *testing.T) {
	svc := NewCatalogService(newFakeClientRepo(), newFakeFormulaRepo())

	client, err := svc.CreateClient(context.Background(), &CreateClientInput{
		Name:  "  Alice Martin  ",
		Email: "alice@example.com",
		Phone: "0600000001",
	})
	if err != nil {
		t.Fatalf("CreateClient() error = %v", err)
	}
	if client.Name != "Alice Martin" {
		t.Errorf("name = %q, want trimmed %q", client.Name, "Alice Martin")
	}
	if client.ID == 0 {
		t.Error("client not assigned an ID")
	}
}

func TestCreateClientMissingFields(t *testing.T) {
	tests := []struct {
		name  string
		input CreateClientInput
	}{
		{"empty name", CreateClientInput{Email: "a@b.com", Phone: "06"}},
		{"empty email", CreateClientInput{Name: "Alice", Phone: "06"}},
		{"empty phone", CreateClientInput{Name: "Alice", Email: "a@b.com"}},
		{"whitespace only", CreateClientInput{Name: "  ", Email: " ", Phone: " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCatalogService(newFakeClientRepo(), newFakeFormulaRepo())
			if _, err := svc.CreateClient(context.Background(), &tt.input); !errors.Is(err, ErrClientFieldsRequired) {
				t.Fatalf("error = %v, want ErrClientFieldsRequired", err)
			}
		})
	}
}

func TestCreateFormula(t *testing.T) {
	svc := NewCatalogService(newFakeClientRepo(), newFakeFormulaRepo())

	formula, err := svc.CreateFormula(context.Background(), &CreateFormulaInput{
		Name:     "Deep Tissue",
		Price:    decimal.NewFromInt(80),
		Duration: 60,
	})
	if err != nil {
		t.Fatalf("CreateFormula() error = %v", err)
	}
	if !formula.Price.Equal(decimal.NewFromInt(80)) {
		t.Errorf("price = %s, want 80", formula.Price)
	}
}

func TestCreateFormulaValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   CreateFormulaInput
		wantErr error
	}{
		{"empty name", CreateFormulaInput{Price: decimal.NewFromInt(10), Duration: 30}, ErrFormulaNameRequired},
		{"negative price", CreateFormulaInput{Name: "X", Price: decimal.NewFromInt(-1), Duration: 30}, ErrNegativePrice},
		{"zero duration", CreateFormulaInput{Name: "X", Price: decimal.NewFromInt(10)}, ErrInvalidDuration},
		{"negative duration", CreateFormulaInput{Name: "X", Price: decimal.NewFromInt(10), Duration: -15}, ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCatalogService(newFakeClientRepo(), newFakeFormulaRepo())
			if _, err := svc.CreateFormula(context.Background(), &tt.input); !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateFormulaZeroPriceAllowed(t *testing.T) {
	svc := NewCatalogService(newFakeClientRepo(), newFakeFormulaRepo())

	if _, err := svc.CreateFormula(context.Background(), &CreateFormulaInput{
		Name:     "Trial Session",
		Price:    decimal.Zero,
		Duration: 15,
	}); err != nil {
		t.Fatalf("CreateFormula() with zero price error = %v", err)
	}
}
