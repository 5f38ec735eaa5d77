// Package export arma la carta de un menú (árbol de categorías en vista de
// cliente, con productos y precios de la sucursal) y la entrega a los
// renderizadores de PDF y de feed XML.
package export

import "github.com/shopspring/decimal"

// CardPrice es un precio de producto en la carta, por canal de venta.
type CardPrice struct {
	MethodName string
	Amount     decimal.Decimal
	Currency   string
}

// CardProduct es un producto activo de la carta con sus precios en la
// sucursal del menú.
type CardProduct struct {
	Name        string
	Description string
	Prices      []CardPrice
}

// CardSection es una categoría emitida por el árbol en orden de carta, con su
// profundidad para la sangría.
type CardSection struct {
	Name     string
	Depth    int
	Products []CardProduct
}

// MenuCard es la carta completa lista para renderizar.
type MenuCard struct {
	MenuName   string
	BranchName string
	Currency   string // código por defecto cuando el precio no trae moneda
	Sections   []CardSection
}

// PDFGenerator renderiza la carta como documento PDF.
type PDFGenerator interface {
	Generate(card *MenuCard) ([]byte, error)
}

// FeedBuilder serializa la carta como feed XML para integraciones externas.
type FeedBuilder interface {
	Build(card *MenuCard) ([]byte, error)
}
