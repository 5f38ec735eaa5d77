package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/aslanalper2516/wmb-admin-api/internal/application/dto"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/menutree"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/repository"
)

// MenuUseCase casos de uso de menús y de las asignaciones de categoría que
// componen su jerarquía. El árbol se reconstruye en memoria con menutree en
// cada petición; no se cachea más allá de la pantalla que lo pidió.
type MenuUseCase struct {
	repo         repository.MenuRepository
	asgRepo      repository.CategoryAssignmentRepository
	categoryRepo repository.CategoryRepository
	builder      *menutree.Builder
	indentUnit   int
}

// NewMenuUseCase construye el caso de uso. indentUnit es la sangría en
// píxeles por nivel que se reporta al frontend.
func NewMenuUseCase(
	repo repository.MenuRepository,
	asgRepo repository.CategoryAssignmentRepository,
	categoryRepo repository.CategoryRepository,
	builder *menutree.Builder,
	indentUnit int,
) *MenuUseCase {
	return &MenuUseCase{
		repo:         repo,
		asgRepo:      asgRepo,
		categoryRepo: categoryRepo,
		builder:      builder,
		indentUnit:   indentUnit,
	}
}

// Create crea un menú en la sucursal.
func (uc *MenuUseCase) Create(branchID string, in dto.CreateMenuRequest) (*dto.MenuResponse, error) {
	now := time.Now()
	menu := &entity.Menu{
		ID:        uuid.New().String(),
		BranchID:  branchID,
		Name:      in.Name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(menu); err != nil {
		return nil, err
	}
	return toMenuResponse(menu), nil
}

// GetByID obtiene un menú por ID.
func (uc *MenuUseCase) GetByID(id string) (*dto.MenuResponse, error) {
	menu, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, nil
	}
	return toMenuResponse(menu), nil
}

// Update actualiza un menú.
func (uc *MenuUseCase) Update(id string, in dto.UpdateMenuRequest) (*dto.MenuResponse, error) {
	menu, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, nil
	}
	if in.Name != nil {
		menu.Name = *in.Name
	}
	if in.Active != nil {
		menu.Active = *in.Active
	}
	menu.UpdatedAt = time.Now()
	if err := uc.repo.Update(menu); err != nil {
		return nil, err
	}
	return toMenuResponse(menu), nil
}

// List lista los menús de una sucursal.
func (uc *MenuUseCase) List(branchID string) (*dto.MenuListResponse, error) {
	list, err := uc.repo.ListByBranch(branchID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MenuResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMenuResponse(m))
	}
	return &dto.MenuListResponse{Items: items}, nil
}

// Delete elimina un menú por ID.
func (uc *MenuUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// Tree reconstruye el árbol del menú. order: "menu" ordena solo por nombre
// localizado (vista de carta); cualquier otro valor usa la vista de
// administración (DisplayOrder + desempate por nombre).
func (uc *MenuUseCase) Tree(menuID, order string) (*dto.TreeResponse, error) {
	menu, err := uc.repo.GetByID(menuID)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, domain.ErrNotFound
	}
	assignments, err := uc.asgRepo.ListByMenu(menuID)
	if err != nil {
		return nil, err
	}
	ord := menutree.OrderAdmin
	if order == "menu" {
		ord = menutree.OrderMenu
	}
	nodes := uc.builder.Build(assignments, ord)
	return uc.toTreeResponse(menuID, order, nodes), nil
}

// ParentCandidates devuelve las asignaciones elegibles como nuevo padre de
// selfID: todas las del árbol menos el propio nodo y sus descendientes.
func (uc *MenuUseCase) ParentCandidates(menuID, selfID string) (*dto.TreeResponse, error) {
	assignments, err := uc.asgRepo.ListByMenu(menuID)
	if err != nil {
		return nil, err
	}
	nodes := uc.builder.Build(assignments, menutree.OrderAdmin)
	candidates := uc.builder.ParentCandidates(nodes, selfID)
	return uc.toTreeResponse(menuID, "admin", candidates), nil
}

// CreateAssignment coloca una categoría en el menú. El padre, si viene, debe
// ser otra asignación del mismo menú; un padre de otro menú se rechaza.
func (uc *MenuUseCase) CreateAssignment(menuID string, in dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	menu, err := uc.repo.GetByID(menuID)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, domain.ErrNotFound
	}
	category, err := uc.categoryRepo.GetByID(in.Category.ID())
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	parentID := ""
	if !in.Parent.IsZero() {
		parent, err := uc.asgRepo.GetByID(in.Parent.ID())
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.MenuID != menuID {
			return nil, domain.ErrInvalidInput
		}
		parentID = parent.ID
	}
	now := time.Now()
	asg := &entity.CategoryAssignment{
		ID:           uuid.New().String(),
		MenuID:       menuID,
		CategoryID:   category.ID,
		ParentID:     parentID,
		DisplayOrder: in.DisplayOrder,
		CategoryName: category.Name,
		Active:       category.Active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.asgRepo.Create(asg); err != nil {
		return nil, err
	}
	return toAssignmentResponse(asg), nil
}

// UpdateAssignment reordena o re-emparenta una asignación. Mover un nodo bajo
// un descendiente suyo crearía un ciclo y se rechaza con ErrCycleDetected:
// la pantalla ya filtra los candidatos, pero el guard de escritura cubre los
// caminos que la lista de opciones no cubre.
func (uc *MenuUseCase) UpdateAssignment(menuID, asgID string, in dto.UpdateAssignmentRequest) (*dto.AssignmentResponse, error) {
	asg, err := uc.asgRepo.GetByID(asgID)
	if err != nil {
		return nil, err
	}
	if asg == nil || asg.MenuID != menuID {
		return nil, domain.ErrNotFound
	}
	if in.ParentToRoot {
		asg.ParentID = ""
	} else if in.Parent != nil && !in.Parent.IsZero() {
		newParentID := in.Parent.ID()
		if newParentID == asgID {
			return nil, domain.ErrCycleDetected
		}
		parent, err := uc.asgRepo.GetByID(newParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.MenuID != menuID {
			return nil, domain.ErrInvalidInput
		}
		all, err := uc.asgRepo.ListByMenu(menuID)
		if err != nil {
			return nil, err
		}
		if menutree.IsDescendant(all, asgID, newParentID) {
			return nil, domain.ErrCycleDetected
		}
		asg.ParentID = newParentID
	}
	if in.DisplayOrder != nil {
		asg.DisplayOrder = *in.DisplayOrder
	}
	asg.UpdatedAt = time.Now()
	if err := uc.asgRepo.Update(asg); err != nil {
		return nil, err
	}
	return toAssignmentResponse(asg), nil
}

// DeleteAssignment retira una categoría del menú. Los hijos quedan con un
// padre colgante y el constructor de árbol los degrada a raíz en la próxima
// lectura, sin romper la pantalla.
func (uc *MenuUseCase) DeleteAssignment(menuID, asgID string) error {
	asg, err := uc.asgRepo.GetByID(asgID)
	if err != nil {
		return err
	}
	if asg == nil || asg.MenuID != menuID {
		return domain.ErrNotFound
	}
	return uc.asgRepo.Delete(asgID)
}

func (uc *MenuUseCase) toTreeResponse(menuID, order string, nodes []menutree.Node) *dto.TreeResponse {
	out := &dto.TreeResponse{
		MenuID: menuID,
		Order:  order,
		Nodes:  make([]dto.TreeNodeResponse, 0, len(nodes)),
	}
	for _, n := range nodes {
		out.Nodes = append(out.Nodes, dto.TreeNodeResponse{
			AssignmentResponse: *toAssignmentResponse(n.Assignment),
			Depth:              n.Depth,
			Indent:             n.Depth * uc.indentUnit,
		})
	}
	return out
}

func toMenuResponse(m *entity.Menu) *dto.MenuResponse {
	if m == nil {
		return nil
	}
	return &dto.MenuResponse{
		ID:        m.ID,
		BranchID:  m.BranchID,
		Name:      m.Name,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toAssignmentResponse(a *entity.CategoryAssignment) *dto.AssignmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AssignmentResponse{
		ID:           a.ID,
		MenuID:       a.MenuID,
		CategoryID:   a.CategoryID,
		ParentID:     a.ParentID,
		DisplayOrder: a.DisplayOrder,
		CategoryName: a.CategoryName,
		Active:       a.Active,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
