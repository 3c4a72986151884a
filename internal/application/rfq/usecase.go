package rfq

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rfq-tracker/internal/application/auth"
	"github.com/tu-usuario/rfq-tracker/internal/application/dto"
	"github.com/tu-usuario/rfq-tracker/internal/domain"
	"github.com/tu-usuario/rfq-tracker/internal/domain/entity"
	"github.com/tu-usuario/rfq-tracker/internal/domain/repository"
)

// RFQUseCase operaciones sobre el agregado RFQ. Las lecturas van directo al
// repositorio sobre el pool; el upsert y el borrado pasan por el TxRunner.
type RFQUseCase struct {
	txRunner TxRunner
	rfqRepo  repository.RFQRepository
	masking  *MaskingPolicy
}

// NewRFQUseCase construye el caso de uso.
func NewRFQUseCase(txRunner TxRunner, rfqRepo repository.RFQRepository, masking *MaskingPolicy) *RFQUseCase {
	return &RFQUseCase{txRunner: txRunner, rfqRepo: rfqRepo, masking: masking}
}

// Upsert crea o reemplaza el agregado. Sin ID: inserta cabecera con
// created_by = caller y el conjunto de líneas. Con ID: bloquea la cabecera,
// la actualiza en sitio preservando created_by, borra todas las líneas e
// inserta el conjunto nuevo. Todo dentro de una sola transacción; el bloqueo
// de fila garantiza a lo sumo un reemplazo en vuelo por RFQ.
func (uc *RFQUseCase) Upsert(ctx context.Context, caller *auth.User, in dto.UpsertRFQRequest) (string, error) {
	if err := validateUpsert(in); err != nil {
		return "", err
	}

	now := time.Now()
	header := &entity.RFQ{
		ID:            in.ID,
		RFQNo:         in.RFQNo,
		CompanyName:   in.CompanyName,
		SalesPerson:   in.SalesPerson,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		Purpose:       in.Purpose,
		TentativeDate: in.TentativeDate,
		Status:        in.Status,
		UpdatedAt:     now,
	}

	err := uc.txRunner.Run(ctx, func(repo repository.RFQRepository) error {
		if in.ID == "" {
			header.CreatedBy = caller.Identity.ID
			header.CreatedAt = now
			if header.Status == "" {
				header.Status = entity.StatusDraft
			}
			if err := repo.InsertHeader(header); err != nil {
				return err
			}
		} else {
			existing, err := repo.GetHeaderForUpdate(in.ID)
			if err != nil {
				return err
			}
			// No existe y no visible responden igual: no se revela existencia.
			if existing == nil {
				return domain.ErrNotFound
			}
			if !caller.IsAdmin() && existing.CreatedBy != caller.Identity.ID {
				return domain.ErrNotFound
			}
			header.CreatedBy = existing.CreatedBy
			header.CreatedAt = existing.CreatedAt
			if header.Status == "" {
				header.Status = existing.Status
			}
			if err := repo.UpdateHeader(header); err != nil {
				return err
			}
			if err := repo.DeleteItems(header.ID); err != nil {
				return err
			}
		}

		items := make([]*entity.PartLine, 0, len(in.Items))
		for i, it := range in.Items {
			items = append(items, &entity.PartLine{
				RFQID:        header.ID,
				Position:     i,
				RFQPartNo:    it.RFQPartNo,
				QuotedPartNo: it.QuotedPartNo,
				Supplier:     it.Supplier,
				DateCode:     it.DateCode,
				RFQQty:       it.RFQQty,
				QuotedQty:    it.QuotedQty,
				Make:         it.Make,
				LeadTime:     it.LeadTime,
				Source:       it.Source,
				UnitPriceUSD: it.UnitPriceUSD,
				UnitPriceINR: it.UnitPriceINR,
				Freight:      it.Freight,
				Insurance:    it.Insurance,
				BCD:          it.BCD,
				Bank:         it.Bank,
				Clearance:    it.Clearance,
				Margin:       it.Margin,
				Resale:       it.Resale,
				TP:           it.TP,
				Remarks:      it.Remarks,
			})
		}
		if len(items) > 0 {
			return repo.InsertItems(items)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return header.ID, nil
}

// List devuelve los RFQ visibles para el caller, ya enmascarados: admin ve todos,
// cualquier otro rol solo los que creó (el filtro vive en la consulta).
func (uc *RFQUseCase) List(ctx context.Context, caller *auth.User) ([]dto.RFQResponse, error) {
	list, err := uc.rfqRepo.List(caller.Identity.ID, caller.IsAdmin())
	if err != nil {
		return nil, err
	}
	out := make([]dto.RFQResponse, 0, len(list))
	for _, rfq := range list {
		out = append(out, uc.masking.RFQResponse(rfq, caller.Role))
	}
	return out, nil
}

// Get devuelve un agregado visible, enmascarado. Ausente y no visible responden
// ambos ErrNotFound.
func (uc *RFQUseCase) Get(ctx context.Context, caller *auth.User, id string) (*dto.RFQResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	rfq, err := uc.rfqRepo.GetByID(id, caller.Identity.ID, caller.IsAdmin())
	if err != nil {
		return nil, err
	}
	if rfq == nil {
		return nil, domain.ErrNotFound
	}
	out := uc.masking.RFQResponse(rfq, caller.Role)
	return &out, nil
}

// Delete elimina líneas y cabecera en una transacción. Solo el dueño o un admin:
// aquí sí se distingue Forbidden de NotFound, según lo exige el contrato del borrado.
func (uc *RFQUseCase) Delete(ctx context.Context, caller *auth.User, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	header, err := uc.rfqRepo.GetHeader(id)
	if err != nil {
		return err
	}
	if header == nil {
		return domain.ErrNotFound
	}
	if !caller.IsAdmin() && header.CreatedBy != caller.Identity.ID {
		return domain.ErrForbidden
	}
	return uc.txRunner.Run(ctx, func(repo repository.RFQRepository) error {
		if err := repo.DeleteItems(id); err != nil {
			return err
		}
		return repo.DeleteHeader(id)
	})
}

func validateUpsert(in dto.UpsertRFQRequest) error {
	if in.RFQNo == "" || in.CompanyName == "" || in.SalesPerson == "" || in.CustomerName == "" {
		return domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.RFQPartNo == "" || it.QuotedPartNo == "" {
			return domain.ErrInvalidInput
		}
		if it.RFQQty < 0 || it.QuotedQty < 0 {
			return domain.ErrInvalidInput
		}
		for _, d := range []decimal.Decimal{
			it.UnitPriceUSD, it.UnitPriceINR, it.Freight, it.Insurance,
			it.BCD, it.Bank, it.Clearance, it.Resale, it.TP,
		} {
			if d.IsNegative() {
				return domain.ErrInvalidInput
			}
		}
	}
	return nil
}
