package dto

import "github.com/shopspring/decimal"

// PropagateMethodsRequest entrada para propagar métodos de venta a todas las
// sucursales hermanas de la sucursal de referencia.
type PropagateMethodsRequest struct {
	MethodIDs []string `json:"method_ids" validate:"required,min=1"`
}

// PropagatePriceRequest entrada para propagar un precio del producto a las
// sucursales hermanas de la sucursal de referencia.
type PropagatePriceRequest struct {
	BranchID   string          `json:"branch_id" validate:"required"` // sucursal de referencia
	MethodID   string          `json:"method_id" validate:"required"`
	Amount     decimal.Decimal `json:"amount" validate:"required"`
	CurrencyID string          `json:"currency_id"`
}

// AppliedPair un par (sucursal, método) aplicado con éxito.
type AppliedPair struct {
	BranchID   string `json:"branch_id"`
	BranchName string `json:"branch_name"`
	MethodID   string `json:"method_id"`
}

// FailedPair un par fallido con su motivo, para el aviso itemizado.
type FailedPair struct {
	BranchID   string `json:"branch_id"`
	BranchName string `json:"branch_name"`
	MethodID   string `json:"method_id"`
	Reason     string `json:"reason"`
}

// PropagationResponse resultado agregado de un lote de propagación. Partial
// indica fallo parcial: la UI lo presenta como un único aviso con la lista de
// pares fallidos, nunca como error bloqueante.
type PropagationResponse struct {
	Applied  []AppliedPair `json:"applied"`
	Failures []FailedPair  `json:"failures"`
	Partial  bool          `json:"partial"`
}
