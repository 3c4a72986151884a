package rfq

import (
	"context"
	"fmt"

	"github.com/tu-usuario/rfq-tracker/internal/application/auth"
)

// PDFUseCase genera la hoja de cotización de un RFQ en PDF. La visibilidad y el
// enmascaramiento son los mismos del Get: el PDF nunca muestra más que el JSON.
type PDFUseCase struct {
	rfqUC     *RFQUseCase
	generator QuoteSheetGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(rfqUC *RFQUseCase, generator QuoteSheetGenerator) *PDFUseCase {
	return &PDFUseCase{rfqUC: rfqUC, generator: generator}
}

// DownloadQuoteSheet recupera el agregado visible para el caller y genera el PDF.
// Retorna (pdfBytes, filename, nil), o domain.ErrNotFound si el RFQ no existe o
// no es visible.
func (uc *PDFUseCase) DownloadQuoteSheet(ctx context.Context, caller *auth.User, rfqID string) ([]byte, string, error) {
	rfq, err := uc.rfqUC.Get(ctx, caller, rfqID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.generator.GenerateQuoteSheet(ctx, rfq)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar hoja de cotización: %w", err)
	}
	return pdfBytes, fmt.Sprintf("RFQ-%s.pdf", rfq.RFQNo), nil
}
