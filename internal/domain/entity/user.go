package entity

import "time"

// User representa una identidad del panel. El FullName se deriva de nombre y
// apellido al momento del alta y se guarda como metadato de perfil.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	FullName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
