package entity

import "time"

// Cliente representa un cliente de la operación de ventas.
// Pertenece exactamente a un Asesor (AsesorID es FK obligatoria).
type Cliente struct {
	ID        string
	Rif       string // identificación fiscal
	Nombre    string
	Zona      string
	AsesorID  string
	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy string
	UpdatedBy string
}
