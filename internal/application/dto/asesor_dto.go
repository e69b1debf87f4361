package dto

import "time"

// CreateAsesorRequest body para POST/PUT /asesores/. Los campos de auditoría
// son asignados por el servidor y no se aceptan en el request.
type CreateAsesorRequest struct {
	Nombre string `json:"Asesor"`
}

// AsesorResponse asesor en respuestas.
type AsesorResponse struct {
	ID        string    `json:"idAsesor"`
	Nombre    string    `json:"Asesor"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedBy string    `json:"createdBy"`
	UpdatedBy string    `json:"updatedBy"`
}
