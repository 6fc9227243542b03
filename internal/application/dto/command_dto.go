package dto

// SaleRequest body para POST /api/commands/sale.
type SaleRequest struct {
	ProductID    string `json:"product_id"`
	QuantitySold int64  `json:"quantity_sold"`
}

// RestockRequest body para POST /api/commands/restock.
type RestockRequest struct {
	ProductID     string `json:"product_id"`
	QuantityAdded int64  `json:"quantity_added"`
}

// StockResponse registro de stock resultante de un comando.
type StockResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
