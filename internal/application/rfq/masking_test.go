package rfq_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apprfq "github.com/tu-usuario/rfq-tracker/internal/application/rfq"
	"github.com/tu-usuario/rfq-tracker/internal/domain/entity"
)

func lineaConPrecios() *entity.PartLine {
	return &entity.PartLine{
		ID:           "line-1",
		RFQID:        "rfq-1",
		Position:     0,
		RFQPartNo:    "PN-100",
		QuotedPartNo: "PN-100-Q",
		Supplier:     "Acme Components",
		RFQQty:       10,
		QuotedQty:    10,
		UnitPriceUSD: decimal.RequireFromString("12.50"),
		UnitPriceINR: decimal.RequireFromString("1040.75"),
		Freight:      decimal.RequireFromString("3.10"),
		Insurance:    decimal.RequireFromString("0.55"),
		BCD:          decimal.RequireFromString("1.25"),
		Bank:         decimal.RequireFromString("0.30"),
		Clearance:    decimal.RequireFromString("2.00"),
		Margin:       decimal.RequireFromString("8.75"),
		Resale:       decimal.RequireFromString("28.45"),
		TP:           decimal.RequireFromString("27.10"),
		Remarks:      "stock confirmado",
	}
}

func rfqConLineas() *entity.RFQ {
	return &entity.RFQ{
		ID:           "rfq-1",
		RFQNo:        "RFQ-2026-001",
		CompanyName:  "Industrias Norte",
		SalesPerson:  "Laura",
		CustomerName: "Cliente SA",
		Status:       entity.StatusDraft,
		CreatedBy:    "user-1",
		Items:        []*entity.PartLine{lineaConPrecios()},
	}
}

// Caso 1: rol no exento ve el placeholder fijo en todos los campos monetarios.
func TestMaskingPolicy_RolNoExentoVePlaceholder(t *testing.T) {
	policy := apprfq.NewMaskingPolicy([]string{entity.RoleAdmin, entity.RolePricing})

	out := policy.RFQResponse(rfqConLineas(), entity.RoleSales)
	require.Len(t, out.Items, 1)
	line := out.Items[0]

	for campo, valor := range map[string]string{
		"unit_price_usd": line.UnitPriceUSD,
		"unit_price_inr": line.UnitPriceINR,
		"freight":        line.Freight,
		"insurance":      line.Insurance,
		"bcd":            line.BCD,
		"bank":           line.Bank,
		"clearance":      line.Clearance,
		"margin":         line.Margin,
		"resale":         line.Resale,
		"tp":             line.TP,
	} {
		assert.Equal(t, apprfq.MaskPlaceholder, valor,
			"el campo %s debe llegar enmascarado para sales", campo)
	}

	// Los campos no monetarios pasan intactos.
	assert.Equal(t, "PN-100", line.RFQPartNo)
	assert.Equal(t, "Acme Components", line.Supplier)
	assert.Equal(t, 10, line.RFQQty)
	assert.Equal(t, "stock confirmado", line.Remarks)
}

// Caso 2: roles exentos ven los valores decimales en texto.
func TestMaskingPolicy_RolesExentosVenValores(t *testing.T) {
	policy := apprfq.NewMaskingPolicy([]string{entity.RoleAdmin, entity.RolePricing})

	for _, role := range []string{entity.RoleAdmin, entity.RolePricing} {
		out := policy.RFQResponse(rfqConLineas(), role)
		require.Len(t, out.Items, 1)
		line := out.Items[0]

		assert.Equal(t, "12.5", line.UnitPriceUSD, "rol %s debe ver el precio USD", role)
		assert.Equal(t, "1040.75", line.UnitPriceINR)
		assert.Equal(t, "8.75", line.Margin)
		assert.Equal(t, "27.1", line.TP)
	}
}

// Caso 3: el rol "user" tampoco está exento con la configuración por defecto.
func TestMaskingPolicy_RolUserEnmascarado(t *testing.T) {
	policy := apprfq.NewMaskingPolicy([]string{entity.RoleAdmin, entity.RolePricing})

	out := policy.RFQResponse(rfqConLineas(), entity.RoleUser)
	require.Len(t, out.Items, 1)
	assert.Equal(t, apprfq.MaskPlaceholder, out.Items[0].UnitPriceUSD)
	assert.False(t, policy.Exempt(entity.RoleUser))
}

// Caso 4: el conjunto exento es configurable; sales exento ve valores.
func TestMaskingPolicy_ConjuntoExentoConfigurable(t *testing.T) {
	policy := apprfq.NewMaskingPolicy([]string{entity.RoleSales})

	out := policy.RFQResponse(rfqConLineas(), entity.RoleSales)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "12.5", out.Items[0].UnitPriceUSD)
	assert.True(t, policy.Exempt(entity.RoleSales))
	assert.False(t, policy.Exempt(entity.RoleAdmin))
}

// Caso 5: la proyección no altera la entidad: el enmascaramiento es solo de lectura.
func TestMaskingPolicy_NoMutaLaEntidad(t *testing.T) {
	policy := apprfq.NewMaskingPolicy([]string{entity.RoleAdmin})
	rfq := rfqConLineas()

	_ = policy.RFQResponse(rfq, entity.RoleSales)
	_ = policy.RFQResponse(rfq, entity.RoleSales)

	assert.True(t, rfq.Items[0].UnitPriceUSD.Equal(decimal.RequireFromString("12.50")),
		"los decimales almacenados no deben cambiar tras proyectar")
	assert.True(t, rfq.Items[0].Margin.Equal(decimal.RequireFromString("8.75")))
}
