package repository

import "github.com/tu-usuario/rfq-tracker/internal/domain/entity"

// RFQRepository puerto de persistencia para el agregado RFQ (cabecera + líneas).
// Las operaciones de escritura del reemplazo delete+insert deben ejecutarse con un
// adaptador atado a una transacción (ver el TxRunner de infraestructura).
type RFQRepository interface {
	// InsertHeader persiste una cabecera nueva; asigna ID si viene vacío.
	InsertHeader(rfq *entity.RFQ) error
	// GetHeaderForUpdate carga la cabecera bloqueando la fila (FOR UPDATE) para
	// garantizar a lo sumo un reemplazo en vuelo por RFQ. Devuelve nil si no existe.
	GetHeaderForUpdate(id string) (*entity.RFQ, error)
	// UpdateHeader actualiza los campos de la cabecera en sitio. No toca created_by.
	UpdateHeader(rfq *entity.RFQ) error
	// DeleteItems borra todas las líneas del RFQ.
	DeleteItems(rfqID string) error
	// InsertItems persiste el conjunto de líneas; asigna IDs si vienen vacíos.
	InsertItems(items []*entity.PartLine) error

	// GetByID devuelve la cabecera con sus líneas ordenadas por posición, o nil si
	// no existe o no es visible para el caller (filtro de propiedad en la consulta).
	// admin=true omite el filtro.
	GetByID(id, callerID string, admin bool) (*entity.RFQ, error)
	// GetHeader devuelve la cabecera sin filtro de visibilidad (para decidir
	// Forbidden vs NotFound en el borrado), o nil si no existe.
	GetHeader(id string) (*entity.RFQ, error)
	// List devuelve los RFQ visibles con sus líneas, más recientes primero.
	List(callerID string, admin bool) ([]*entity.RFQ, error)
	// DeleteHeader borra la cabecera (las líneas deben borrarse antes, en la misma tx).
	DeleteHeader(id string) error
}
