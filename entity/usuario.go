package entity

import (
	"gorm.io/gorm"
)

// Usuario do sistema interno (operador do caixa).
type Usuario struct {
	gorm.Model
	Email string `json:"email" gorm:"uniqueIndex"`
	Senha string `json:"-"`
	Nome  string `json:"nome"`
	Role  string `json:"role" gorm:"default:'operador'"`
}

func (Usuario) TableName() string { return "usuarios" }
