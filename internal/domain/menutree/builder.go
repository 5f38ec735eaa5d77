// Package menutree reconstruye la jerarquía de categorías de un menú a partir
// de la lista plana de asignaciones con puntero al padre (servicio de dominio,
// sin I/O).
//
// El grafo de padres viene de datos que el almacenamiento no garantiza
// acíclicos ni íntegros, así que el constructor nunca falla: un padre
// inexistente o un ciclo degradan el nodo a raíz y la pantalla sigue usable.
package menutree

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"
)

// Order define el criterio de ordenación entre hermanos.
type Order int

const (
	// OrderAdmin ordena por DisplayOrder ascendente, desempatando por nombre
	// localizado. Es la vista de la consola de administración.
	OrderAdmin Order = iota
	// OrderMenu ordena solo por nombre localizado. Es la vista de carta
	// orientada al cliente.
	OrderMenu
)

// Node es una asignación emitida con su profundidad calculada (0 = raíz).
// La profundidad se usa para la sangría (depth × unidad fija) y para los
// selectores de padre.
type Node struct {
	Assignment *entity.CategoryAssignment
	Depth      int
}

// Builder construye árboles de categorías con comparación de nombres
// localizada. Es seguro para uso concurrente tras su construcción solo si el
// collator no se comparte; cada Build crea estado propio salvo el collator,
// así que un Builder por petición o un mutex externo si se reutiliza.
type Builder struct {
	coll *collate.Collator
}

// NewBuilder crea un Builder con la colación del locale dado (BCP 47).
// Un tag inválido cae en la colación por defecto de x/text.
func NewBuilder(locale string) *Builder {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return &Builder{coll: collate.New(tag)}
}

// Build produce la secuencia ordenada en profundidad: toda asignación aparece
// después de su padre efectivo, con hermanos ordenados según order.
//
// Degradación intencionada, nunca error:
//   - ParentID inexistente en el conjunto -> el nodo es raíz.
//   - Ciclo en la cadena de padres -> los nodos del ciclo quedan en
//     profundidad 0; los nodos colgando por debajo conservan su distancia
//     al punto de ruptura.
func (b *Builder) Build(assignments []*entity.CategoryAssignment, order Order) []Node {
	if len(assignments) == 0 {
		return nil
	}

	index := make(map[string]*entity.CategoryAssignment, len(assignments))
	for _, a := range assignments {
		index[a.ID] = a
	}

	depths := make(map[string]int, len(assignments))
	for _, a := range assignments {
		depths[a.ID] = depthOf(a, index)
	}

	// Padre efectivo: solo se respeta ParentID si el nodo no quedó degradado
	// a raíz (profundidad 0). Así cada nodo tiene exactamente un punto de
	// emisión y los miembros de un ciclo salen como raíces.
	roots := make([]*entity.CategoryAssignment, 0)
	children := make(map[string][]*entity.CategoryAssignment)
	for _, a := range assignments {
		if depths[a.ID] == 0 {
			roots = append(roots, a)
			continue
		}
		children[a.ParentID] = append(children[a.ParentID], a)
	}

	less := b.lessFunc(order)
	sortSiblings(roots, less)
	for _, siblings := range children {
		sortSiblings(siblings, less)
	}

	// DFS con pila explícita: sin recursión, inmune a profundidades absurdas.
	out := make([]Node, 0, len(assignments))
	stack := make([]*entity.CategoryAssignment, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, roots[i])
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, Node{Assignment: cur, Depth: depths[cur.ID]})
		kids := children[cur.ID]
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
	return out
}

// ParentCandidates devuelve los nodos elegibles como nuevo padre de selfID:
// todos menos el propio nodo y sus descendientes. Mover una categoría bajo un
// descendiente suyo crearía un ciclo; el caso de uso además lo rechaza en
// escritura con ErrCycleDetected.
func (b *Builder) ParentCandidates(nodes []Node, selfID string) []Node {
	if selfID == "" {
		return nodes
	}
	excluded := map[string]bool{selfID: true}
	// nodes viene en orden de profundidad (padres antes que hijos), así que
	// una sola pasada marca todo el subárbol.
	for _, n := range nodes {
		if n.Assignment.ID != selfID && excluded[n.Assignment.ParentID] {
			excluded[n.Assignment.ID] = true
		}
	}
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if !excluded[n.Assignment.ID] {
			out = append(out, n)
		}
	}
	return out
}

// IsDescendant indica si candidateID es descendiente (transitivo) de id dentro
// del conjunto dado. Tolera ciclos con el mismo conjunto de visitados que el
// cálculo de profundidad.
func IsDescendant(assignments []*entity.CategoryAssignment, id, candidateID string) bool {
	index := make(map[string]*entity.CategoryAssignment, len(assignments))
	for _, a := range assignments {
		index[a.ID] = a
	}
	cur, ok := index[candidateID]
	if !ok {
		return false
	}
	visited := map[string]bool{candidateID: true}
	for cur.ParentID != "" {
		if cur.ParentID == id {
			return true
		}
		next, ok := index[cur.ParentID]
		if !ok || visited[next.ID] {
			return false
		}
		visited[next.ID] = true
		cur = next
	}
	return false
}

// depthOf calcula la profundidad subiendo por la cadena de padres con un
// conjunto de visitados propio del recorrido (id -> paso en el que se visitó).
//
// Si se revisita un nodo antes de llegar a una raíz hay un ciclo: el nodo
// revisitado se trata como raíz, así que la profundidad devuelta es la
// distancia hasta él (0 si el revisitado es el propio nodo de partida, es
// decir, el nodo pertenece al ciclo).
func depthOf(a *entity.CategoryAssignment, index map[string]*entity.CategoryAssignment) int {
	visited := map[string]int{a.ID: 0}
	cur := a
	steps := 0
	for {
		pid := cur.ParentID
		if pid == "" {
			return steps
		}
		parent, ok := index[pid]
		if !ok {
			// Padre colgante: el nodo alcanzado hasta aquí es raíz.
			return steps
		}
		if at, seen := visited[pid]; seen {
			return at
		}
		steps++
		visited[pid] = steps
		cur = parent
	}
}

func (b *Builder) lessFunc(order Order) func(x, y *entity.CategoryAssignment) bool {
	byName := func(x, y *entity.CategoryAssignment) bool {
		return b.coll.CompareString(x.CategoryName, y.CategoryName) < 0
	}
	if order == OrderMenu {
		return byName
	}
	return func(x, y *entity.CategoryAssignment) bool {
		if x.DisplayOrder != y.DisplayOrder {
			return x.DisplayOrder < y.DisplayOrder
		}
		return byName(x, y)
	}
}

func sortSiblings(siblings []*entity.CategoryAssignment, less func(x, y *entity.CategoryAssignment) bool) {
	sort.SliceStable(siblings, func(i, j int) bool {
		return less(siblings[i], siblings[j])
	})
}
