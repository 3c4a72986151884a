package entity

// Identity es la identidad autenticada que devuelve el proveedor remoto.
// Es inmutable durante la petición y nunca se persiste en este servicio.
type Identity struct {
	ID    string
	Email string
}
