package entity

import "time"

// StockRecord es la única fuente de verdad del stock de un producto.
// ProductID es único e inmutable; Quantity es el único campo mutable y
// nunca es negativo en un estado commiteado.
type StockRecord struct {
	ProductID string
	Quantity  int64
	UpdatedAt time.Time
}
