package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpsertRFQRequest entrada de make-rfq-entry. Si ID viene vacío se crea el agregado;
// si viene, se actualiza la cabecera y se reemplaza el conjunto completo de líneas.
// El caller siempre envía la lista de líneas deseada al completo.
type UpsertRFQRequest struct {
	ID            string            `json:"id"`
	RFQNo         string            `json:"rfq_no"`
	CompanyName   string            `json:"company_name"`
	SalesPerson   string            `json:"sales_person"`
	CustomerName  string            `json:"customer_name"`
	CustomerEmail string            `json:"customer_email"`
	CustomerPhone string            `json:"customer_phone"`
	Purpose       string            `json:"purpose"`
	TentativeDate *time.Time        `json:"tentative_date"`
	Status        string            `json:"status"`
	Items         []PartLineRequest `json:"items"`
}

// PartLineRequest una línea de parte tal como la envía el cliente.
type PartLineRequest struct {
	RFQPartNo    string          `json:"rfq_part_no"`
	QuotedPartNo string          `json:"quoted_part_no"`
	Supplier     string          `json:"supplier"`
	DateCode     string          `json:"date_code"`
	RFQQty       int             `json:"rfq_qty"`
	QuotedQty    int             `json:"quoted_qty"`
	Make         string          `json:"make"`
	LeadTime     string          `json:"lead_time"`
	Source       string          `json:"source"`
	UnitPriceUSD decimal.Decimal `json:"unit_price_usd"`
	UnitPriceINR decimal.Decimal `json:"unit_price_inr"`
	Freight      decimal.Decimal `json:"freight"`
	Insurance    decimal.Decimal `json:"insurance"`
	BCD          decimal.Decimal `json:"bcd"`
	Bank         decimal.Decimal `json:"bank"`
	Clearance    decimal.Decimal `json:"clearance"`
	Margin       decimal.Decimal `json:"margin"`
	Resale       decimal.Decimal `json:"resale"`
	TP           decimal.Decimal `json:"tp"`
	Remarks      string          `json:"remarks"`
}

// UpsertRFQResponse salida de make-rfq-entry.
type UpsertRFQResponse struct {
	Success bool   `json:"success"`
	RFQID   string `json:"rfq_id"`
}

// RFQResponse cabecera + líneas ya pasadas por la política de enmascaramiento.
type RFQResponse struct {
	ID            string             `json:"id"`
	RFQNo         string             `json:"rfq_no"`
	CompanyName   string             `json:"company_name"`
	SalesPerson   string             `json:"sales_person"`
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	CustomerPhone string             `json:"customer_phone"`
	Purpose       string             `json:"purpose"`
	TentativeDate *time.Time         `json:"tentative_date"`
	Status        string             `json:"status"`
	CreatedBy     string             `json:"created_by"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	Items         []PartLineResponse `json:"items"`
}

// PartLineResponse línea de salida. Los campos monetarios son strings: el valor
// decimal en texto, o el placeholder fijo "---" cuando el rol del caller no está
// exento de enmascaramiento. El placeholder nunca se reemplaza por null ni se
// omite, para que el cliente distinga "oculto" de "ausente".
type PartLineResponse struct {
	ID           string `json:"id"`
	RFQID        string `json:"rfq_id"`
	Position     int    `json:"position"`
	RFQPartNo    string `json:"rfq_part_no"`
	QuotedPartNo string `json:"quoted_part_no"`
	Supplier     string `json:"supplier"`
	DateCode     string `json:"date_code"`
	RFQQty       int    `json:"rfq_qty"`
	QuotedQty    int    `json:"quoted_qty"`
	Make         string `json:"make"`
	LeadTime     string `json:"lead_time"`
	Source       string `json:"source"`
	UnitPriceUSD string `json:"unit_price_usd"`
	UnitPriceINR string `json:"unit_price_inr"`
	Freight      string `json:"freight"`
	Insurance    string `json:"insurance"`
	BCD          string `json:"bcd"`
	Bank         string `json:"bank"`
	Clearance    string `json:"clearance"`
	Margin       string `json:"margin"`
	Resale       string `json:"resale"`
	TP           string `json:"tp"`
	Remarks      string `json:"remarks"`
}

// ListRFQResponse salida de list-rfq-entry.
type ListRFQResponse struct {
	Success bool          `json:"success"`
	Data    []RFQResponse `json:"data"`
}

// GetRFQResponse salida de get-rfq.
type GetRFQResponse struct {
	Success bool        `json:"success"`
	Data    RFQResponse `json:"data"`
}
