package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/pricing"
)

func link(branchID, methodID string) *entity.BranchMethodLink {
	return &entity.BranchMethodLink{ID: branchID + "-" + methodID, BranchID: branchID, MethodID: methodID, Active: true}
}

func price(productID, methodID, branchID string) *entity.PriceRecord {
	return &entity.PriceRecord{
		ID: productID + "-" + methodID + "-" + branchID,
		ProductID: productID, MethodID: methodID, BranchID: branchID,
		Amount: decimal.NewFromInt(100), CurrencyID: "try",
	}
}

func branch(id string) *entity.Branch {
	return &entity.Branch{ID: id, CompanyID: "comp-1", Name: "Sucursal " + id, Active: true}
}

func TestBranchComplete_SinMetodosEsVacuamenteCompleta(t *testing.T) {
	assert.True(t, pricing.BranchComplete("p1", "b1", nil, nil))
}

func TestBranchComplete_MetodoSinPrecioEsIncompleta(t *testing.T) {
	links := []*entity.BranchMethodLink{link("b1", "delivery")}
	assert.False(t, pricing.BranchComplete("p1", "b1", links, nil))
}

func TestBranchComplete_TodosLosMetodosConPrecio(t *testing.T) {
	links := []*entity.BranchMethodLink{link("b1", "delivery"), link("b1", "mostrador")}
	prices := []*entity.PriceRecord{
		price("p1", "delivery", "b1"),
		price("p1", "mostrador", "b1"),
	}
	assert.True(t, pricing.BranchComplete("p1", "b1", links, prices))
}

func TestBranchComplete_IgnoraLinksDeOtrasSucursalesYPreciosAjenos(t *testing.T) {
	links := []*entity.BranchMethodLink{link("b1", "delivery"), link("b2", "mesa")}
	prices := []*entity.PriceRecord{
		price("p1", "delivery", "b1"),
		price("otro-producto", "mesa", "b2"),
	}
	assert.True(t, pricing.BranchComplete("p1", "b1", links, prices))
	assert.False(t, pricing.BranchComplete("p1", "b2", links, prices))
}

func TestBranchComplete_LinkInactivoNoCuenta(t *testing.T) {
	inactive := link("b1", "delivery")
	inactive.Active = false
	assert.True(t, pricing.BranchComplete("p1", "b1", []*entity.BranchMethodLink{inactive}, nil))
}

func TestProductComplete_TodasLasSucursalesSinMetodosEsIncompleto(t *testing.T) {
	// La empresa tiene sucursales pero ninguna tiene métodos: nadie puede
	// vender el producto, así que se reporta incompleto.
	branches := []*entity.Branch{branch("b1"), branch("b2")}
	assert.False(t, pricing.ProductComplete("p1", branches, map[string][]*entity.BranchMethodLink{}, nil))
}

func TestProductComplete_SinSucursalesEsIncompleto(t *testing.T) {
	assert.False(t, pricing.ProductComplete("p1", nil, nil, nil))
}

func TestProductComplete_EscenarioSucursalSaltada(t *testing.T) {
	// X tiene {Delivery} con precio; Y no tiene métodos: X completa, Y se
	// salta, resultado true.
	branches := []*entity.Branch{branch("x"), branch("y")}
	linksByBranch := map[string][]*entity.BranchMethodLink{
		"x": {link("x", "delivery")},
	}
	prices := []*entity.PriceRecord{price("p1", "delivery", "x")}

	assert.True(t, pricing.ProductComplete("p1", branches, linksByBranch, prices))
}

func TestProductComplete_MismoEscenarioSinElPrecio(t *testing.T) {
	branches := []*entity.Branch{branch("x"), branch("y")}
	linksByBranch := map[string][]*entity.BranchMethodLink{
		"x": {link("x", "delivery")},
	}

	assert.False(t, pricing.ProductComplete("p1", branches, linksByBranch, nil))
}

func TestProductComplete_UnaSucursalIncompletaArrastraElProducto(t *testing.T) {
	branches := []*entity.Branch{branch("b1"), branch("b2")}
	linksByBranch := map[string][]*entity.BranchMethodLink{
		"b1": {link("b1", "delivery")},
		"b2": {link("b2", "delivery"), link("b2", "mesa")},
	}
	prices := []*entity.PriceRecord{
		price("p1", "delivery", "b1"),
		price("p1", "delivery", "b2"),
		// falta (p1, mesa, b2)
	}

	assert.False(t, pricing.ProductComplete("p1", branches, linksByBranch, prices))
}
