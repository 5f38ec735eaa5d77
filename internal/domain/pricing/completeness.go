// Package pricing contiene los servicios de dominio de precios: el chequeo de
// completitud por sucursal y producto (funciones puras sobre colecciones en
// memoria, pensadas para decenas de registros, no para consultas a DB).
package pricing

import "github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"

// BranchComplete indica si la sucursal tiene precio para todos los métodos de
// venta que tiene asignados (para el producto dado).
//
// Una sucursal sin métodos asignados es vacuamente completa: no vende por
// ningún canal, así que no le falta ningún precio. El caso "ninguna sucursal
// configurada" se penaliza a nivel de producto, no aquí.
func BranchComplete(productID, branchID string, links []*entity.BranchMethodLink, prices []*entity.PriceRecord) bool {
	for _, l := range links {
		if l.BranchID != branchID || !l.Active {
			continue
		}
		if !hasPrice(productID, l.MethodID, branchID, prices) {
			return false
		}
	}
	return true
}

// ProductComplete indica si el producto tiene precio en todos los canales de
// todas las sucursales de su empresa que tengan algún método asignado.
//
// Sucursales sin métodos se saltan (no cuentan como incompletas), pero si
// TODAS se saltan el resultado es false: ninguna sucursal puede vender el
// producto y la UI debe avisar, no ocultarlo.
func ProductComplete(productID string, branches []*entity.Branch, linksByBranch map[string][]*entity.BranchMethodLink, prices []*entity.PriceRecord) bool {
	evaluated := false
	for _, b := range branches {
		links := linksByBranch[b.ID]
		if countActiveLinks(b.ID, links) == 0 {
			continue // sucursal sin configurar: se salta
		}
		evaluated = true
		if !BranchComplete(productID, b.ID, links, prices) {
			return false
		}
	}
	return evaluated
}

func hasPrice(productID, methodID, branchID string, prices []*entity.PriceRecord) bool {
	for _, p := range prices {
		if p.ProductID == productID && p.MethodID == methodID && p.BranchID == branchID {
			return true
		}
	}
	return false
}

func countActiveLinks(branchID string, links []*entity.BranchMethodLink) int {
	n := 0
	for _, l := range links {
		if l.BranchID == branchID && l.Active {
			n++
		}
	}
	return n
}
