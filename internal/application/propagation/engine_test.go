package propagation_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aslanalper2516/wmb-admin-api/internal/application/propagation"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"
	"github.com/aslanalper2516/wmb-admin-api/pkg/logger"
)

// fakeLinker registra las llamadas a EnsureLink y falla los pares marcados.
type fakeLinker struct {
	mu     sync.Mutex
	calls  []string
	failOn map[string]error // "branchID/methodID" -> error
}

func (f *fakeLinker) EnsureLink(_ context.Context, branchID, methodID string) error {
	key := branchID + "/" + methodID
	f.mu.Lock()
	f.calls = append(f.calls, key)
	f.mu.Unlock()
	if err, ok := f.failOn[key]; ok {
		return err
	}
	return nil
}

// fakePriceStore simula el almacén de precios con un mapa protegido por mutex.
type fakePriceStore struct {
	mu         sync.Mutex
	byKey      map[string]*entity.PriceRecord // "product/method/branch"
	deleted    []string
	created    []string
	failCreate map[string]error // branchID -> error
	failFind   map[string]error
}

func newFakePriceStore() *fakePriceStore {
	return &fakePriceStore{
		byKey:      map[string]*entity.PriceRecord{},
		failCreate: map[string]error{},
		failFind:   map[string]error{},
	}
}

func (f *fakePriceStore) seed(productID, methodID, branchID string) *entity.PriceRecord {
	p := &entity.PriceRecord{
		ID:        fmt.Sprintf("price-%s-%s-%s", productID, methodID, branchID),
		ProductID: productID, MethodID: methodID, BranchID: branchID,
		Amount: decimal.NewFromInt(50), CurrencyID: "try",
	}
	f.byKey[productID+"/"+methodID+"/"+branchID] = p
	return p
}

func (f *fakePriceStore) FindByProductMethodBranch(_ context.Context, productID, methodID, branchID string) (*entity.PriceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failFind[branchID]; ok {
		return nil, err
	}
	return f.byKey[productID+"/"+methodID+"/"+branchID], nil
}

func (f *fakePriceStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	for k, p := range f.byKey {
		if p.ID == id {
			delete(f.byKey, k)
		}
	}
	return nil
}

func (f *fakePriceStore) Create(_ context.Context, price *entity.PriceRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failCreate[price.BranchID]; ok {
		return err
	}
	f.created = append(f.created, price.ID)
	f.byKey[price.ProductID+"/"+price.MethodID+"/"+price.BranchID] = price
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func branch(id, name string) *entity.Branch {
	return &entity.Branch{ID: id, CompanyID: "comp-1", Name: name, Active: true}
}

func pairKeys(pairs []propagation.Pair) []string {
	out := make([]string, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, p.BranchID+"/"+p.MethodID)
	}
	return out
}

func TestPropagateSalesMethods_FalloParcialAislado(t *testing.T) {
	// b1 va bien en todo; b2 falla solo en m2: applied debe contener
	// (b1,m1),(b1,m2),(b2,m1) y failures exactamente (b2,m2).
	linker := &fakeLinker{failOn: map[string]error{
		"b2/m2": errors.New("timeout del backend"),
	}}
	engine := propagation.NewEngine(linker, newFakePriceStore(), testLogger())

	res := engine.PropagateSalesMethods(context.Background(),
		[]*entity.Branch{branch("b1", "Centro"), branch("b2", "Kadıköy")},
		[]string{"m1", "m2"},
	)

	assert.ElementsMatch(t, []string{"b1/m1", "b1/m2", "b2/m1"}, pairKeys(res.Applied))
	require.Len(t, res.Failures, 1)
	assert.Equal(t, "b2", res.Failures[0].BranchID)
	assert.Equal(t, "m2", res.Failures[0].MethodID)
	assert.Equal(t, "Kadıköy", res.Failures[0].BranchName, "el fallo arrastra el nombre de la sucursal para el aviso")
	assert.Equal(t, "timeout del backend", res.Failures[0].Reason)
	assert.False(t, res.AllFailed())
}

func TestPropagateSalesMethods_TodosLosParesSeIntentan(t *testing.T) {
	// Aunque un par falle, los demás se lanzan igual: sin abortar el lote.
	linker := &fakeLinker{failOn: map[string]error{"b1/m1": errors.New("boom")}}
	engine := propagation.NewEngine(linker, newFakePriceStore(), testLogger())

	engine.PropagateSalesMethods(context.Background(),
		[]*entity.Branch{branch("b1", "Uno"), branch("b2", "Dos"), branch("b3", "Tres")},
		[]string{"m1", "m2"},
	)

	assert.Len(t, linker.calls, 6, "un EnsureLink por cada par (sucursal, método)")
}

func TestPropagateSalesMethods_LoteVacio(t *testing.T) {
	engine := propagation.NewEngine(&fakeLinker{}, newFakePriceStore(), testLogger())

	res := engine.PropagateSalesMethods(context.Background(), nil, []string{"m1"})
	assert.Empty(t, res.Applied)
	assert.Empty(t, res.Failures)
	assert.False(t, res.AllFailed(), "un lote vacío no es un fallo total")
}

func TestPropagateSalesMethods_FalloTotal(t *testing.T) {
	linker := &fakeLinker{failOn: map[string]error{
		"b1/m1": errors.New("caído"),
		"b2/m1": errors.New("caído"),
	}}
	engine := propagation.NewEngine(linker, newFakePriceStore(), testLogger())

	res := engine.PropagateSalesMethods(context.Background(),
		[]*entity.Branch{branch("b1", "Uno"), branch("b2", "Dos")},
		[]string{"m1"},
	)

	assert.True(t, res.AllFailed())
	assert.Len(t, res.Failures, 2)
}

func TestPropagatePrice_ReemplazaBorrandoYCreando(t *testing.T) {
	store := newFakePriceStore()
	old := store.seed("p1", "m1", "b1")
	engine := propagation.NewEngine(&fakeLinker{}, store, testLogger())

	res := engine.PropagatePrice(context.Background(),
		[]*entity.Branch{branch("b1", "Centro"), branch("b2", "Kadıköy")},
		"p1", "m1", decimal.NewFromInt(120), "try",
	)

	require.Len(t, res.Applied, 2)
	assert.Empty(t, res.Failures)
	assert.Contains(t, store.deleted, old.ID, "el precio existente se borra antes de crear el nuevo")
	assert.Len(t, store.created, 2)

	replaced := store.byKey["p1/m1/b1"]
	require.NotNil(t, replaced)
	assert.NotEqual(t, old.ID, replaced.ID, "reemplazo = registro nuevo, no update")
	assert.True(t, replaced.Amount.Equal(decimal.NewFromInt(120)))
}

func TestPropagatePrice_BorradoOkCreacionFallidaNoRestaura(t *testing.T) {
	store := newFakePriceStore()
	old := store.seed("p1", "m1", "b1")
	store.failCreate["b1"] = errors.New("constraint violada")
	engine := propagation.NewEngine(&fakeLinker{}, store, testLogger())

	res := engine.PropagatePrice(context.Background(),
		[]*entity.Branch{branch("b1", "Centro")},
		"p1", "m1", decimal.NewFromInt(120), "try",
	)

	require.Len(t, res.Failures, 1)
	assert.True(t, res.AllFailed())
	assert.Contains(t, store.deleted, old.ID)
	assert.Nil(t, store.byKey["p1/m1/b1"],
		"el registro borrado no se restaura: se avisa al usuario, no se autorecupera")
}

func TestPropagatePrice_FalloEnFindSeRegistraComoParFallido(t *testing.T) {
	store := newFakePriceStore()
	store.failFind["b2"] = errors.New("conexión rechazada")
	engine := propagation.NewEngine(&fakeLinker{}, store, testLogger())

	res := engine.PropagatePrice(context.Background(),
		[]*entity.Branch{branch("b1", "Uno"), branch("b2", "Dos")},
		"p1", "m1", decimal.NewFromInt(80), "try",
	)

	assert.Len(t, res.Applied, 1)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, "b2", res.Failures[0].BranchID)
}

func TestSiblingBranches_FiltraPorEmpresa(t *testing.T) {
	ref := branch("b1", "Centro")
	other := &entity.Branch{ID: "x1", CompanyID: "comp-2", Name: "Ajena"}
	all := []*entity.Branch{ref, branch("b2", "Norte"), other, branch("b3", "Sur")}

	siblings := propagation.SiblingBranches(ref, all)

	require.Len(t, siblings, 3)
	for _, s := range siblings {
		assert.Equal(t, "comp-1", s.CompanyID)
	}
}

func TestSiblingBranches_ReferenciaNil(t *testing.T) {
	assert.Nil(t, propagation.SiblingBranches(nil, []*entity.Branch{branch("b1", "Uno")}))
}
