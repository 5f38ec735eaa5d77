package ref_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aslanalper2516/wmb-admin-api/internal/domain/ref"
)

type payload struct {
	Category ref.Ref `json:"category"`
}

func TestRef_IDPelado(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"category":"cat-1"}`), &p))

	assert.Equal(t, "cat-1", p.Category.ID())
	assert.False(t, p.Category.Populated())
	assert.False(t, p.Category.IsZero())
}

func TestRef_ObjetoPoblado(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"category":{"id":"cat-2","name":"Bebidas"}}`), &p))

	assert.Equal(t, "cat-2", p.Category.ID())
	assert.True(t, p.Category.Populated())

	var obj struct {
		Name string `json:"name"`
	}
	require.NoError(t, p.Category.Object(&obj))
	assert.Equal(t, "Bebidas", obj.Name)
}

func TestRef_ObjetoConUnderscoreID(t *testing.T) {
	// Algunos endpoints del backend anterior serializan el id como "_id".
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"category":{"_id":"cat-3"}}`), &p))
	assert.Equal(t, "cat-3", p.Category.ID())
}

func TestRef_NullYAusente(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"category":null}`), &p))
	assert.True(t, p.Category.IsZero())

	var q payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &q))
	assert.True(t, q.Category.IsZero())
}

func TestRef_ObjectSobreIDPeladoFalla(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"category":"cat-1"}`), &p))

	var obj map[string]any
	assert.Error(t, p.Category.Object(&obj), "no hay objeto que decodificar si llegó id pelado")
}

func TestRef_MarshalSiempreID(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"category":{"id":"cat-9","name":"x"}}`), &p))

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"category":"cat-9"}`, string(out))
}

func TestRef_TipoInesperado(t *testing.T) {
	var p payload
	assert.Error(t, json.Unmarshal([]byte(`{"category":42}`), &p))
}
