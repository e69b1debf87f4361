package dto

import "time"

// CreateClienteRequest body para POST /clientes/. idAsesor es obligatorio.
type CreateClienteRequest struct {
	Rif      string `json:"Rif"`
	Nombre   string `json:"Cliente"`
	Zona     string `json:"Zona"`
	AsesorID string `json:"idAsesor"`
}

// UpdateClienteRequest body para PUT /clientes/:id. idAsesor es puntero para
// distinguir "campo omitido" (conservar el actual) de "presente pero colgante".
type UpdateClienteRequest struct {
	Rif      string  `json:"Rif"`
	Nombre   string  `json:"Cliente"`
	Zona     string  `json:"Zona"`
	AsesorID *string `json:"idAsesor"`
}

// ClienteResponse cliente en respuestas, con su asesor embebido.
type ClienteResponse struct {
	ID        string          `json:"idCliente"`
	Rif       string          `json:"Rif"`
	Nombre    string          `json:"Cliente"`
	Zona      string          `json:"Zona"`
	AsesorID  string          `json:"idAsesor"`
	Asesor    *AsesorResponse `json:"asesor,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	CreatedBy string          `json:"createdBy"`
	UpdatedBy string          `json:"updatedBy"`
}
