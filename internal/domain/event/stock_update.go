package event

// StockUpdate evento inmutable emitido tras cada mutación exitosa de stock.
// El lado de consulta lo interpreta como "esta es la cantidad ahora"
// (last-write-wins); no lleva metadatos de versión ni causalidad.
// Los nombres JSON son el contrato con el servicio de consulta.
type StockUpdate struct {
	ProductID   string `json:"productId"`
	NewQuantity int64  `json:"newQuantity"`
}
