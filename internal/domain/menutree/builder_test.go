package menutree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/menutree"
)

func asg(id, parentID, name string, order int) *entity.CategoryAssignment {
	return &entity.CategoryAssignment{
		ID:           id,
		MenuID:       "menu-1",
		CategoryID:   "cat-" + id,
		ParentID:     parentID,
		DisplayOrder: order,
		CategoryName: name,
		Active:       true,
	}
}

func ids(nodes []menutree.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Assignment.ID)
	}
	return out
}

func depthByID(nodes []menutree.Node) map[string]int {
	out := make(map[string]int, len(nodes))
	for _, n := range nodes {
		out[n.Assignment.ID] = n.Depth
	}
	return out
}

func TestBuild_EntradaVacia(t *testing.T) {
	b := menutree.NewBuilder("tr")
	assert.Empty(t, b.Build(nil, menutree.OrderAdmin))
	assert.Empty(t, b.Build([]*entity.CategoryAssignment{}, menutree.OrderAdmin))
}

func TestBuild_ProfundidadYOrdenDeEmision(t *testing.T) {
	// raíz A (orden 2), raíz B (orden 1); A tiene hijos A1, A2; A1 tiene nieto A1a.
	in := []*entity.CategoryAssignment{
		asg("a", "", "Platos", 2),
		asg("b", "", "Bebidas", 1),
		asg("a1", "a", "Carnes", 1),
		asg("a2", "a", "Pescados", 2),
		asg("a1a", "a1", "Parrilla", 1),
	}
	b := menutree.NewBuilder("tr")
	nodes := b.Build(in, menutree.OrderAdmin)

	require.Len(t, nodes, 5)
	assert.Equal(t, []string{"b", "a", "a1", "a1a", "a2"}, ids(nodes))

	d := depthByID(nodes)
	assert.Equal(t, 0, d["a"])
	assert.Equal(t, 0, d["b"])
	assert.Equal(t, 1, d["a1"])
	assert.Equal(t, 1, d["a2"])
	assert.Equal(t, 2, d["a1a"])
}

// Propiedad: todo nodo aparece después de su padre y con profundidad padre+1.
func TestBuild_PropiedadPadreAntesQueHijo(t *testing.T) {
	in := []*entity.CategoryAssignment{
		asg("r1", "", "Uno", 1),
		asg("r2", "", "Dos", 2),
		asg("c1", "r1", "Tres", 1),
		asg("c2", "r2", "Cuatro", 1),
		asg("g1", "c1", "Cinco", 1),
		asg("g2", "c2", "Seis", 1),
		asg("h1", "g1", "Siete", 1),
	}
	nodes := menutree.NewBuilder("tr").Build(in, menutree.OrderAdmin)
	require.Len(t, nodes, len(in))

	pos := make(map[string]int, len(nodes))
	for i, n := range nodes {
		pos[n.Assignment.ID] = i
	}
	d := depthByID(nodes)
	for _, n := range nodes {
		pid := n.Assignment.ParentID
		if pid == "" {
			assert.Equal(t, 0, n.Depth)
			continue
		}
		assert.Less(t, pos[pid], pos[n.Assignment.ID],
			"el padre %s debe emitirse antes que %s", pid, n.Assignment.ID)
		assert.Equal(t, d[pid]+1, n.Depth,
			"la profundidad de %s debe ser la del padre + 1", n.Assignment.ID)
	}
}

func TestBuild_CicloTerminaYQuedaEnRaiz(t *testing.T) {
	// A -> padre B, B -> padre A: debe terminar y ambos quedar en profundidad 0.
	in := []*entity.CategoryAssignment{
		asg("a", "b", "Alfa", 1),
		asg("b", "a", "Beta", 2),
	}
	nodes := menutree.NewBuilder("tr").Build(in, menutree.OrderAdmin)

	require.Len(t, nodes, 2)
	d := depthByID(nodes)
	assert.Equal(t, 0, d["a"])
	assert.Equal(t, 0, d["b"])
}

func TestBuild_NodoColgandoDeUnCiclo(t *testing.T) {
	// C cuelga de A, y A<->B forman ciclo: A y B raíces, C a profundidad 1.
	in := []*entity.CategoryAssignment{
		asg("a", "b", "Alfa", 1),
		asg("b", "a", "Beta", 2),
		asg("c", "a", "Gamma", 1),
	}
	nodes := menutree.NewBuilder("tr").Build(in, menutree.OrderAdmin)

	require.Len(t, nodes, 3)
	d := depthByID(nodes)
	assert.Equal(t, 0, d["a"])
	assert.Equal(t, 0, d["b"])
	assert.Equal(t, 1, d["c"])
}

func TestBuild_PadreInexistenteTratadoComoRaiz(t *testing.T) {
	in := []*entity.CategoryAssignment{
		asg("a", "no-existe", "Huérfana", 5),
		asg("b", "", "Normal", 1),
		asg("c", "a", "Hija", 1),
	}
	nodes := menutree.NewBuilder("tr").Build(in, menutree.OrderAdmin)

	require.Len(t, nodes, 3)
	d := depthByID(nodes)
	assert.Equal(t, 0, d["a"], "padre colgante degrada a raíz")
	assert.Equal(t, 1, d["c"], "los hijos del huérfano conservan su nivel relativo")
}

func TestBuild_OrderMenuOrdenaSoloPorNombre(t *testing.T) {
	// DisplayOrder contradice el orden alfabético a propósito.
	in := []*entity.CategoryAssignment{
		asg("z", "", "Zeytinyağlılar", 1),
		asg("c", "", "Çorbalar", 2),
		asg("i", "", "Izgaralar", 3),
	}
	nodes := menutree.NewBuilder("tr").Build(in, menutree.OrderMenu)

	// Colación turca: Ç va antes que I, e I antes que Z.
	assert.Equal(t, []string{"c", "i", "z"}, ids(nodes))
}

func TestBuild_OrderAdminDesempataPorNombre(t *testing.T) {
	in := []*entity.CategoryAssignment{
		asg("x", "", "Tatlılar", 3),
		asg("y", "", "Aperatifler", 3),
		asg("w", "", "Makarnalar", 1),
	}
	nodes := menutree.NewBuilder("tr").Build(in, menutree.OrderAdmin)
	assert.Equal(t, []string{"w", "y", "x"}, ids(nodes))
}

func TestParentCandidates_ExcluyeSelfYDescendientes(t *testing.T) {
	in := []*entity.CategoryAssignment{
		asg("a", "", "A", 1),
		asg("b", "a", "B", 1),
		asg("c", "b", "C", 1),
		asg("d", "", "D", 2),
	}
	b := menutree.NewBuilder("tr")
	nodes := b.Build(in, menutree.OrderAdmin)

	cands := b.ParentCandidates(nodes, "b")
	assert.Equal(t, []string{"a", "d"}, ids(cands),
		"ni b ni su descendiente c pueden ser el nuevo padre de b")
}

func TestIsDescendant(t *testing.T) {
	in := []*entity.CategoryAssignment{
		asg("a", "", "A", 1),
		asg("b", "a", "B", 1),
		asg("c", "b", "C", 1),
		asg("d", "", "D", 2),
	}
	assert.True(t, menutree.IsDescendant(in, "a", "c"))
	assert.True(t, menutree.IsDescendant(in, "b", "c"))
	assert.False(t, menutree.IsDescendant(in, "c", "a"))
	assert.False(t, menutree.IsDescendant(in, "a", "d"))
	assert.False(t, menutree.IsDescendant(in, "a", "no-existe"))
}

func TestIsDescendant_ConCicloTermina(t *testing.T) {
	in := []*entity.CategoryAssignment{
		asg("a", "b", "A", 1),
		asg("b", "a", "B", 1),
	}
	assert.False(t, menutree.IsDescendant(in, "x", "a"))
}
