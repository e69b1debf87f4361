package entity

import "time"

// User representa un usuario del sistema (acceso a la API).
// Se identifica por username (único); no se elimina nunca desde la API.
type User struct {
	Username       string
	HashedPassword string // hash bcrypt, nunca el password plano
	Disabled       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
