package entity

import "time"

// StatusDraft es el estado inicial de un RFQ recién creado. El campo status es una
// cadena opaca bajo control del cliente; este núcleo no impone un grafo de transiciones.
const StatusDraft = "Draft"

// RFQ es la cabecera del agregado request-for-quote. Sus líneas (PartLine) se
// persisten y reemplazan siempre como un solo conjunto junto con la cabecera.
type RFQ struct {
	ID            string
	RFQNo         string
	CompanyName   string
	SalesPerson   string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Purpose       string
	TentativeDate *time.Time
	Status        string
	CreatedBy     string // Identity.ID del creador; se preserva en actualizaciones
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Items []*PartLine
}
