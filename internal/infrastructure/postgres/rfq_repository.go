package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/rfq-tracker/internal/domain"
	"github.com/tu-usuario/rfq-tracker/internal/domain/entity"
	"github.com/tu-usuario/rfq-tracker/internal/domain/repository"
)

var _ repository.RFQRepository = (*RFQRepo)(nil)

// RFQRepo implementación de RFQRepository (usable con pool o tx).
type RFQRepo struct {
	q Querier
}

// NewRFQRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRFQRepository(q Querier) *RFQRepo {
	return &RFQRepo{q: q}
}

const headerColumns = `id, rfq_no, company_name, sales_person, customer_name,
	customer_email, customer_phone, purpose, tentative_date, status,
	created_by, created_at, updated_at`

// InsertHeader persiste la cabecera; asigna ID si viene vacío.
func (r *RFQRepo) InsertHeader(rfq *entity.RFQ) error {
	if rfq.ID == "" {
		rfq.ID = uuid.New().String()
	}
	query := `
		INSERT INTO rfqs (` + headerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		rfq.ID, rfq.RFQNo, rfq.CompanyName, rfq.SalesPerson, rfq.CustomerName,
		nullIfEmpty(rfq.CustomerEmail), nullIfEmpty(rfq.CustomerPhone), nullIfEmpty(rfq.Purpose),
		rfq.TentativeDate, rfq.Status, rfq.CreatedBy, rfq.CreatedAt, rfq.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRFQNoAlreadyExists
		}
		return fmt.Errorf("insert rfq: %w", err)
	}
	return nil
}

// GetHeaderForUpdate carga la cabecera con FOR UPDATE. El bloqueo de fila serializa
// los reemplazos concurrentes del mismo agregado hasta el commit/rollback.
func (r *RFQRepo) GetHeaderForUpdate(id string) (*entity.RFQ, error) {
	query := `SELECT ` + headerColumns + ` FROM rfqs WHERE id = $1 FOR UPDATE`
	return r.scanHeader(r.q.QueryRow(context.Background(), query, id))
}

// UpdateHeader actualiza los campos de la cabecera en sitio. created_by no se toca:
// el creador original se preserva en cada actualización.
func (r *RFQRepo) UpdateHeader(rfq *entity.RFQ) error {
	query := `
		UPDATE rfqs
		SET rfq_no = $2, company_name = $3, sales_person = $4, customer_name = $5,
		    customer_email = $6, customer_phone = $7, purpose = $8,
		    tentative_date = $9, status = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		rfq.ID, rfq.RFQNo, rfq.CompanyName, rfq.SalesPerson, rfq.CustomerName,
		nullIfEmpty(rfq.CustomerEmail), nullIfEmpty(rfq.CustomerPhone), nullIfEmpty(rfq.Purpose),
		rfq.TentativeDate, rfq.Status, rfq.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update rfq: %w", err)
	}
	return nil
}

// DeleteItems borra todas las líneas del RFQ.
func (r *RFQRepo) DeleteItems(rfqID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM part_lines WHERE rfq_id = $1`, rfqID)
	if err != nil {
		return fmt.Errorf("delete part lines: %w", err)
	}
	return nil
}

// InsertItems persiste el conjunto de líneas; asigna IDs si vienen vacíos.
func (r *RFQRepo) InsertItems(items []*entity.PartLine) error {
	query := `
		INSERT INTO part_lines (id, rfq_id, position, rfq_part_no, quoted_part_no,
			supplier, date_code, rfq_qty, quoted_qty, make, lead_time, source,
			unit_price_usd, unit_price_inr, freight, insurance, bcd, bank,
			clearance, margin, resale, tp, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`
	for _, item := range items {
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		_, err := r.q.Exec(context.Background(), query,
			item.ID, item.RFQID, item.Position, item.RFQPartNo, item.QuotedPartNo,
			nullIfEmpty(item.Supplier), nullIfEmpty(item.DateCode), item.RFQQty, item.QuotedQty,
			nullIfEmpty(item.Make), nullIfEmpty(item.LeadTime), nullIfEmpty(item.Source),
			item.UnitPriceUSD, item.UnitPriceINR, item.Freight, item.Insurance, item.BCD, item.Bank,
			item.Clearance, item.Margin, item.Resale, item.TP, nullIfEmpty(item.Remarks),
		)
		if err != nil {
			return fmt.Errorf("insert part line: %w", err)
		}
	}
	return nil
}

// GetByID devuelve la cabecera con sus líneas. El filtro de propiedad se aplica en
// la consulta: para un caller sin rol admin un RFQ ajeno simplemente no existe.
func (r *RFQRepo) GetByID(id, callerID string, admin bool) (*entity.RFQ, error) {
	query := `SELECT ` + headerColumns + ` FROM rfqs WHERE id = $1`
	args := []any{id}
	if !admin {
		query += ` AND created_by = $2`
		args = append(args, callerID)
	}
	rfq, err := r.scanHeader(r.q.QueryRow(context.Background(), query, args...))
	if err != nil || rfq == nil {
		return rfq, err
	}
	items, err := r.getItems(rfq.ID)
	if err != nil {
		return nil, err
	}
	rfq.Items = items
	return rfq, nil
}

// GetHeader devuelve la cabecera sin filtro de visibilidad, o nil si no existe.
func (r *RFQRepo) GetHeader(id string) (*entity.RFQ, error) {
	query := `SELECT ` + headerColumns + ` FROM rfqs WHERE id = $1`
	return r.scanHeader(r.q.QueryRow(context.Background(), query, id))
}

// List devuelve los RFQ visibles con sus líneas, más recientes primero.
func (r *RFQRepo) List(callerID string, admin bool) ([]*entity.RFQ, error) {
	query := `SELECT ` + headerColumns + ` FROM rfqs`
	var args []any
	if !admin {
		query += ` WHERE created_by = $1`
		args = append(args, callerID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list rfqs: %w", err)
	}
	defer rows.Close()

	var list []*entity.RFQ
	for rows.Next() {
		rfq, err := scanHeaderRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, rfq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, rfq := range list {
		items, err := r.getItems(rfq.ID)
		if err != nil {
			return nil, err
		}
		rfq.Items = items
	}
	return list, nil
}

// DeleteHeader borra la cabecera. Las líneas deben borrarse antes en la misma tx.
func (r *RFQRepo) DeleteHeader(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM rfqs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete rfq: %w", err)
	}
	return nil
}

func (r *RFQRepo) getItems(rfqID string) ([]*entity.PartLine, error) {
	query := `
		SELECT id, rfq_id, position, rfq_part_no, quoted_part_no,
		       COALESCE(supplier, ''), COALESCE(date_code, ''), rfq_qty, quoted_qty,
		       COALESCE(make, ''), COALESCE(lead_time, ''), COALESCE(source, ''),
		       unit_price_usd, unit_price_inr, freight, insurance, bcd, bank,
		       clearance, margin, resale, tp, COALESCE(remarks, '')
		FROM part_lines WHERE rfq_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, rfqID)
	if err != nil {
		return nil, fmt.Errorf("list part lines: %w", err)
	}
	defer rows.Close()
	var items []*entity.PartLine
	for rows.Next() {
		var it entity.PartLine
		if err := rows.Scan(
			&it.ID, &it.RFQID, &it.Position, &it.RFQPartNo, &it.QuotedPartNo,
			&it.Supplier, &it.DateCode, &it.RFQQty, &it.QuotedQty,
			&it.Make, &it.LeadTime, &it.Source,
			&it.UnitPriceUSD, &it.UnitPriceINR, &it.Freight, &it.Insurance, &it.BCD, &it.Bank,
			&it.Clearance, &it.Margin, &it.Resale, &it.TP, &it.Remarks,
		); err != nil {
			return nil, fmt.Errorf("scan part line: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

func (r *RFQRepo) scanHeader(row pgx.Row) (*entity.RFQ, error) {
	rfq, err := scanHeaderRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rfq, nil
}

func scanHeaderRow(row pgx.Row) (*entity.RFQ, error) {
	var rfq entity.RFQ
	var email, phone, purpose *string
	err := row.Scan(
		&rfq.ID, &rfq.RFQNo, &rfq.CompanyName, &rfq.SalesPerson, &rfq.CustomerName,
		&email, &phone, &purpose, &rfq.TentativeDate, &rfq.Status,
		&rfq.CreatedBy, &rfq.CreatedAt, &rfq.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("scan rfq: %w", err)
	}
	rfq.CustomerEmail = derefStr(email)
	rfq.CustomerPhone = derefStr(phone)
	rfq.Purpose = derefStr(purpose)
	return &rfq, nil
}
