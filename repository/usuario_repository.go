package repository

import (
	"github.com/Bruno-Signori/v0-site-estacionamento/entity"
	"gorm.io/gorm"
)

type UsuarioRepository struct{ DB *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) *UsuarioRepository { return &UsuarioRepository{DB: db} }

func (r *UsuarioRepository) FindByEmail(email string) (*entity.Usuario, error) {
	var u entity.Usuario
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UsuarioRepository) FindByID(id uint) (*entity.Usuario, error) {
	var u entity.Usuario
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UsuarioRepository) Create(u *entity.Usuario) error {
	return r.DB.Create(u).Error
}
