package export

import (
	"github.com/aslanalper2516/wmb-admin-api/internal/domain"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/menutree"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/repository"
)

// MenuExportUseCase arma la carta de un menú y la exporta en PDF o XML.
// La carta usa la vista de cliente del árbol (orden alfabético localizado) y
// solo incluye categorías activas y productos activos con algún precio en la
// sucursal del menú.
type MenuExportUseCase struct {
	menuRepo    repository.MenuRepository
	branchRepo  repository.BranchRepository
	asgRepo     repository.CategoryAssignmentRepository
	productRepo repository.ProductRepository
	priceRepo   repository.PriceRepository
	methodRepo  repository.SalesMethodRepository
	builder     *menutree.Builder
	pdf         PDFGenerator
	feed        FeedBuilder
	currency    string
}

// NewMenuExportUseCase construye el caso de uso. currency es el código de
// moneda por defecto para precios sin moneda explícita.
func NewMenuExportUseCase(
	menuRepo repository.MenuRepository,
	branchRepo repository.BranchRepository,
	asgRepo repository.CategoryAssignmentRepository,
	productRepo repository.ProductRepository,
	priceRepo repository.PriceRepository,
	methodRepo repository.SalesMethodRepository,
	builder *menutree.Builder,
	pdf PDFGenerator,
	feed FeedBuilder,
	currency string,
) *MenuExportUseCase {
	return &MenuExportUseCase{
		menuRepo:    menuRepo,
		branchRepo:  branchRepo,
		asgRepo:     asgRepo,
		productRepo: productRepo,
		priceRepo:   priceRepo,
		methodRepo:  methodRepo,
		builder:     builder,
		pdf:         pdf,
		feed:        feed,
		currency:    currency,
	}
}

// PDF exporta la carta del menú como PDF.
func (uc *MenuExportUseCase) PDF(menuID string) ([]byte, error) {
	card, err := uc.buildCard(menuID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.Generate(card)
}

// XML exporta la carta del menú como feed XML.
func (uc *MenuExportUseCase) XML(menuID string) ([]byte, error) {
	card, err := uc.buildCard(menuID)
	if err != nil {
		return nil, err
	}
	return uc.feed.Build(card)
}

// buildCard reconstruye el árbol en vista de carta y cuelga de cada categoría
// sus productos con los precios de la sucursal del menú.
func (uc *MenuExportUseCase) buildCard(menuID string) (*MenuCard, error) {
	menu, err := uc.menuRepo.GetByID(menuID)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, domain.ErrNotFound
	}
	branch, err := uc.branchRepo.GetByID(menu.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}

	assignments, err := uc.asgRepo.ListByMenu(menuID)
	if err != nil {
		return nil, err
	}
	nodes := uc.builder.Build(assignments, menutree.OrderMenu)

	methodNames, err := uc.methodNames(branch.CompanyID)
	if err != nil {
		return nil, err
	}

	card := &MenuCard{
		MenuName:   menu.Name,
		BranchName: branch.Name,
		Currency:   uc.currency,
		Sections:   make([]CardSection, 0, len(nodes)),
	}
	for _, n := range nodes {
		a := n.Assignment
		if !a.Active {
			continue
		}
		section := CardSection{Name: a.CategoryName, Depth: n.Depth}
		products, err := uc.productRepo.ListByCategory(a.CategoryID)
		if err != nil {
			return nil, err
		}
		for _, p := range products {
			if !p.Active {
				continue
			}
			cp, err := uc.cardProduct(p, branch.ID, methodNames)
			if err != nil {
				return nil, err
			}
			if len(cp.Prices) == 0 {
				continue // sin precio en esta sucursal, fuera de la carta
			}
			section.Products = append(section.Products, cp)
		}
		card.Sections = append(card.Sections, section)
	}
	return card, nil
}

func (uc *MenuExportUseCase) cardProduct(p *entity.Product, branchID string, methodNames map[string]string) (CardProduct, error) {
	cp := CardProduct{Name: p.Name, Description: p.Description}
	prices, err := uc.priceRepo.ListByProductAndBranch(p.ID, branchID)
	if err != nil {
		return cp, err
	}
	for _, pr := range prices {
		name, ok := methodNames[pr.MethodID]
		if !ok {
			name = pr.MethodID
		}
		currency := pr.CurrencyID
		if currency == "" {
			currency = uc.currency
		}
		cp.Prices = append(cp.Prices, CardPrice{
			MethodName: name,
			Amount:     pr.Amount,
			Currency:   currency,
		})
	}
	return cp, nil
}

func (uc *MenuExportUseCase) methodNames(companyID string) (map[string]string, error) {
	methods, err := uc.methodRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(methods))
	for _, m := range methods {
		names[m.ID] = m.Name
	}
	return names, nil
}
