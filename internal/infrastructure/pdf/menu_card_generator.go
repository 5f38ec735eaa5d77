// Package pdf implementa la generación de la carta imprimible de un menú.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del menú  │  Sucursal                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CATEGORÍA (sangría según profundidad)                      │
//	│    Producto — descripción            Canal  Precio          │
//	│    Producto — descripción            Canal  Precio          │
//	│  SUBCATEGORÍA                                               │
//	│    ...                                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/aslanalper2516/wmb-admin-api/internal/application/export"
)

var (
	colorPrimary = &props.Color{Red: 120, Green: 30, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ export.PDFGenerator = (*MenuCardGenerator)(nil)

// MenuCardGenerator implementa export.PDFGenerator usando Maroto v2.
type MenuCardGenerator struct{}

// NewMenuCardGenerator construye el generador.
func NewMenuCardGenerator() *MenuCardGenerator { return &MenuCardGenerator{} }

// Generate genera la carta en PDF y devuelve sus bytes.
func (g *MenuCardGenerator) Generate(card *export.MenuCard) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(14).WithRightMargin(14).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(card.MenuName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(card))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, section := range card.Sections {
		m.AddRows(sectionRow(section))
		for _, p := range section.Products {
			for _, r := range productRows(p, section.Depth) {
				m.AddRows(r)
			}
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar carta: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del menú (izq) y sucursal (der).
func headerRow(card *export.MenuCard) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(card.MenuName, props.Text{
				Style: fontstyle.Bold, Size: 15, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New(card.BranchName, props.Text{
				Size: 9, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// sectionRow: título de categoría con sangría según profundidad.
func sectionRow(section export.CardSection) core.Row {
	size := 12.0 - float64(section.Depth)
	if size < 9 {
		size = 9
	}
	return row.New(9).Add(
		col.New(12).Add(
			text.New(section.Name, props.Text{
				Style: fontstyle.Bold, Size: size, Color: colorPrimary,
				Top: 2, Left: indent(section.Depth),
			}),
		),
	)
}

// productRows: nombre + descripción y una línea de precio por canal.
func productRows(p export.CardProduct, depth int) []core.Row {
	left := indent(depth) + 4

	first := ""
	if len(p.Prices) > 0 {
		first = priceLabel(p.Prices[0])
	}
	rows := []core.Row{
		row.New(6).Add(
			col.New(8).Add(
				text.New(p.Name, props.Text{
					Style: fontstyle.Bold, Size: 9, Top: 1, Left: left,
				}),
			),
			col.New(4).Add(
				text.New(first, props.Text{
					Size: 9, Align: align.Right, Top: 1, Right: 1,
				}),
			),
		),
	}
	if p.Description != "" {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New(p.Description, props.Text{
				Size: 7.5, Color: colorGray, Left: left, Top: 0.5,
			}),
		)))
	}
	if len(p.Prices) < 2 {
		return rows
	}
	for _, pr := range p.Prices[1:] {
		rows = append(rows, row.New(4).Add(
			col.New(8),
			col.New(4).Add(
				text.New(priceLabel(pr), props.Text{
					Size: 8, Align: align.Right, Right: 1, Color: colorGray,
				}),
			),
		))
	}
	return rows
}

func priceLabel(p export.CardPrice) string {
	return fmt.Sprintf("%s  %s %s", p.MethodName, p.Amount.StringFixed(2), p.Currency)
}

// indent devuelve el margen izquierdo en milímetros para una profundidad.
func indent(depth int) float64 {
	return float64(depth) * 4
}
