package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Usuario é a conta administrativa da loja (painel /admin).
type Usuario struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nome      string    `gorm:"not null" json:"nome"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	SenhaHash string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// SetSenha gera o hash bcrypt da senha informada.
func (u *Usuario) SetSenha(senha string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.SenhaHash = string(hash)
	return nil
}

// CheckSenha compara a senha informada com o hash armazenado.
func (u *Usuario) CheckSenha(senha string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(senha))
}
