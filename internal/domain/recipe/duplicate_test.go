package recipe_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/recipe"
)

func usage(id string) *entity.IngredientUsage {
	p := decimal.NewFromFloat(2.50)
	return &entity.IngredientUsage{
		ID:           id,
		ProductID:    "prod-1",
		IngredientID: "ing-1",
		BranchID:     "branch-1",
		Amount:       decimal.NewFromInt(200),
		AmountUnit:   "g",
		Price:        &p,
		PriceUnit:    "try",
	}
}

func TestFindDuplicate_TuplaCompletaCoincide(t *testing.T) {
	existing := usage("existente")
	got := recipe.FindDuplicateIngredientUsage(usage("candidato"), []*entity.IngredientUsage{existing})

	require.NotNil(t, got)
	assert.Equal(t, "existente", got.ID, "debe devolver el registro en conflicto, no el candidato")
}

func TestFindDuplicate_CadaCampoDistintoRompeElDuplicado(t *testing.T) {
	existing := []*entity.IngredientUsage{usage("existente")}

	mutations := map[string]func(u *entity.IngredientUsage){
		"sucursal":    func(u *entity.IngredientUsage) { u.BranchID = "branch-2" },
		"ingrediente": func(u *entity.IngredientUsage) { u.IngredientID = "ing-2" },
		"cantidad":    func(u *entity.IngredientUsage) { u.Amount = decimal.NewFromInt(300) },
		"unidad":      func(u *entity.IngredientUsage) { u.AmountUnit = "kg" },
		"precio": func(u *entity.IngredientUsage) {
			p := decimal.NewFromFloat(3.10)
			u.Price = &p
		},
		"moneda": func(u *entity.IngredientUsage) { u.PriceUnit = "usd" },
	}

	for name, mutate := range mutations {
		candidate := usage("candidato")
		mutate(candidate)
		assert.Nil(t, recipe.FindDuplicateIngredientUsage(candidate, existing),
			"cambiar %s debe deshacer el duplicado", name)
	}
}

func TestFindDuplicate_PrecioNilContraPrecioPresente(t *testing.T) {
	existing := []*entity.IngredientUsage{usage("existente")}

	candidate := usage("candidato")
	candidate.Price = nil
	candidate.PriceUnit = ""

	assert.Nil(t, recipe.FindDuplicateIngredientUsage(candidate, existing))
}

func TestFindDuplicate_AmbosPreciosNil(t *testing.T) {
	a := usage("a")
	a.Price = nil
	a.PriceUnit = ""
	b := usage("b")
	b.Price = nil
	b.PriceUnit = ""

	got := recipe.FindDuplicateIngredientUsage(b, []*entity.IngredientUsage{a})
	require.NotNil(t, got)
	assert.Equal(t, "a", got.ID)
}

func TestFindDuplicate_CantidadEquivalenteEnDecimal(t *testing.T) {
	// 200 y 200.00 son la misma cantidad aunque la representación difiera.
	existing := usage("existente")
	candidate := usage("candidato")
	candidate.Amount = decimal.RequireFromString("200.00")

	assert.NotNil(t, recipe.FindDuplicateIngredientUsage(candidate, []*entity.IngredientUsage{existing}))
}

func TestFindDuplicate_ListaVaciaYCandidatoNil(t *testing.T) {
	assert.Nil(t, recipe.FindDuplicateIngredientUsage(usage("c"), nil))
	assert.Nil(t, recipe.FindDuplicateIngredientUsage(nil, []*entity.IngredientUsage{usage("a")}))
}
