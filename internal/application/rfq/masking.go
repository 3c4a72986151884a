package rfq

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rfq-tracker/internal/application/dto"
	"github.com/tu-usuario/rfq-tracker/internal/domain/entity"
)

// MaskPlaceholder es el valor fijo con el que se sustituyen los campos sensibles.
// Siempre es un valor, nunca null ni omisión: el cliente distingue "oculto" de "ausente".
const MaskPlaceholder = "---"

// MaskingPolicy decide qué roles ven los campos monetarios de las líneas.
// Es una transformación de solo lectura sobre la salida; los datos almacenados
// no se alteran jamás. Los campos sensibles son los precios unitarios, margen,
// flete, seguro, arancel (BCD) y costos bancarios/de despacho.
type MaskingPolicy struct {
	exempt map[string]struct{}
}

// NewMaskingPolicy construye la política con el conjunto de roles exentos
// (típicamente admin y pricing, configurable).
func NewMaskingPolicy(exemptRoles []string) *MaskingPolicy {
	exempt := make(map[string]struct{}, len(exemptRoles))
	for _, r := range exemptRoles {
		exempt[r] = struct{}{}
	}
	return &MaskingPolicy{exempt: exempt}
}

// Exempt indica si el rol ve los valores sin enmascarar.
func (p *MaskingPolicy) Exempt(role string) bool {
	_, ok := p.exempt[role]
	return ok
}

// RFQResponse proyecta el agregado a su DTO de salida aplicando la política
// según el rol del caller.
func (p *MaskingPolicy) RFQResponse(rfq *entity.RFQ, role string) dto.RFQResponse {
	out := dto.RFQResponse{
		ID:            rfq.ID,
		RFQNo:         rfq.RFQNo,
		CompanyName:   rfq.CompanyName,
		SalesPerson:   rfq.SalesPerson,
		CustomerName:  rfq.CustomerName,
		CustomerEmail: rfq.CustomerEmail,
		CustomerPhone: rfq.CustomerPhone,
		Purpose:       rfq.Purpose,
		TentativeDate: rfq.TentativeDate,
		Status:        rfq.Status,
		CreatedBy:     rfq.CreatedBy,
		CreatedAt:     rfq.CreatedAt,
		UpdatedAt:     rfq.UpdatedAt,
		Items:         make([]dto.PartLineResponse, 0, len(rfq.Items)),
	}
	for _, item := range rfq.Items {
		out.Items = append(out.Items, p.lineResponse(item, role))
	}
	return out
}

func (p *MaskingPolicy) lineResponse(item *entity.PartLine, role string) dto.PartLineResponse {
	render := maskValue
	if p.Exempt(role) {
		render = func(d decimal.Decimal) string { return d.String() }
	}
	return dto.PartLineResponse{
		ID:           item.ID,
		RFQID:        item.RFQID,
		Position:     item.Position,
		RFQPartNo:    item.RFQPartNo,
		QuotedPartNo: item.QuotedPartNo,
		Supplier:     item.Supplier,
		DateCode:     item.DateCode,
		RFQQty:       item.RFQQty,
		QuotedQty:    item.QuotedQty,
		Make:         item.Make,
		LeadTime:     item.LeadTime,
		Source:       item.Source,
		UnitPriceUSD: render(item.UnitPriceUSD),
		UnitPriceINR: render(item.UnitPriceINR),
		Freight:      render(item.Freight),
		Insurance:    render(item.Insurance),
		BCD:          render(item.BCD),
		Bank:         render(item.Bank),
		Clearance:    render(item.Clearance),
		Margin:       render(item.Margin),
		Resale:       render(item.Resale),
		TP:           render(item.TP),
		Remarks:      item.Remarks,
	}
}

func maskValue(decimal.Decimal) string { return MaskPlaceholder }
