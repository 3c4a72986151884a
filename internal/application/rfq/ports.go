package rfq

import (
	"context"

	"github.com/tu-usuario/rfq-tracker/internal/application/dto"
	"github.com/tu-usuario/rfq-tracker/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con un repositorio RFQ
// atado a ella. Si fn retorna error, el runner hace rollback: un fallo entre el
// borrado y la inserción del conjunto de líneas no puede dejar un RFQ sin líneas.
type TxRunner interface {
	Run(ctx context.Context, fn func(rfqRepo repository.RFQRepository) error) error
}

// QuoteSheetGenerator puerto de salida para la hoja de cotización en PDF.
// Recibe la respuesta ya enmascarada: el PDF muestra exactamente lo que el rol
// del caller puede ver.
type QuoteSheetGenerator interface {
	GenerateQuoteSheet(ctx context.Context, rfq *dto.RFQResponse) ([]byte, error)
}
