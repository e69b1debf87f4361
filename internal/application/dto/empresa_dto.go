package dto

import "time"

// CreateEmpresaRequest body para POST/PUT /empresas/. idPedido e idRecibo son
// enteros sueltos, sin validación de existencia contra otras tablas.
type CreateEmpresaRequest struct {
	RazonSocial string `json:"RazonSocial"`
	IDPedido    int64  `json:"idPedido"`
	IDRecibo    int64  `json:"idRecibo"`
}

// EmpresaResponse empresa en respuestas.
type EmpresaResponse struct {
	ID          int64     `json:"idEmpresa"`
	RazonSocial string    `json:"RazonSocial"`
	IDPedido    int64     `json:"idPedido"`
	IDRecibo    int64     `json:"idRecibo"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	CreatedBy   string    `json:"createdBy"`
	UpdatedBy   string    `json:"updatedBy"`
}
