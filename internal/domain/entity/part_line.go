package entity

import "github.com/shopspring/decimal"

// PartLine es una línea de parte de un RFQ. Pertenece exclusivamente a un RFQ y
// nunca lo sobrevive: el conjunto completo se reemplaza en cada actualización.
// Position preserva el orden de envío para que las lecturas sean estables.
type PartLine struct {
	ID           string
	RFQID        string
	Position     int
	RFQPartNo    string
	QuotedPartNo string
	Supplier     string
	DateCode     string
	RFQQty       int
	QuotedQty    int
	Make         string
	LeadTime     string
	Source       string
	UnitPriceUSD decimal.Decimal
	UnitPriceINR decimal.Decimal
	Freight      decimal.Decimal
	Insurance    decimal.Decimal
	BCD          decimal.Decimal
	Bank         decimal.Decimal
	Clearance    decimal.Decimal
	Margin       decimal.Decimal
	Resale       decimal.Decimal
	TP           decimal.Decimal
	Remarks      string
}
