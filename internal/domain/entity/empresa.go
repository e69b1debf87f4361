package entity

import "time"

// Empresa es un registro denormalizado de compañía. IDPedido e IDRecibo son
// enteros sueltos sin relación verificada con otras tablas; no inferir aquí
// una invariante de clave foránea que el modelo nunca tuvo.
type Empresa struct {
	ID          int64 // autoasignado por la base de datos
	RazonSocial string
	IDPedido    int64
	IDRecibo    int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatedBy   string
	UpdatedBy   string
}
