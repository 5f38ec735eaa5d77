// Package xmlfeed serializa la carta de un menú como feed XML para
// integraciones externas (agregadores de reparto, kioscos).
package xmlfeed

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/aslanalper2516/wmb-admin-api/internal/application/export"
)

var _ export.FeedBuilder = (*FeedBuilder)(nil)

// FeedBuilder implementa export.FeedBuilder usando etree.
//
// Las secciones llegan en orden de profundidad (todo hijo después de su
// padre), así que el anidado se reconstruye con una pila de elementos por
// nivel.
type FeedBuilder struct{}

// NewFeedBuilder construye el serializador.
func NewFeedBuilder() *FeedBuilder { return &FeedBuilder{} }

// Build genera el documento XML y devuelve sus bytes con sangría.
func (b *FeedBuilder) Build(card *export.MenuCard) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("menu")
	root.CreateAttr("name", card.MenuName)
	root.CreateAttr("branch", card.BranchName)
	root.CreateAttr("currency", card.Currency)

	// stack[d] es el elemento <category> abierto en profundidad d.
	stack := []*etree.Element{root}
	for _, section := range card.Sections {
		depth := section.Depth
		if depth >= len(stack) {
			depth = len(stack) - 1
		}
		stack = stack[:depth+1]

		cat := stack[depth].CreateElement("category")
		cat.CreateAttr("name", section.Name)
		for _, p := range section.Products {
			appendProduct(cat, p)
		}
		stack = append(stack, cat)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xmlfeed: serializar carta: %w", err)
	}
	return out, nil
}

func appendProduct(parent *etree.Element, p export.CardProduct) {
	prod := parent.CreateElement("product")
	prod.CreateAttr("name", p.Name)
	if p.Description != "" {
		prod.CreateElement("description").SetText(p.Description)
	}
	for _, pr := range p.Prices {
		price := prod.CreateElement("price")
		price.CreateAttr("method", pr.MethodName)
		price.CreateAttr("currency", pr.Currency)
		price.SetText(pr.Amount.StringFixed(2))
	}
}
