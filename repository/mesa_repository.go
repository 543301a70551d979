package repository

import (
	"github.com/Bruno-Signori/v0-site-estacionamento/entity"
	"gorm.io/gorm"
)

type MesaRepository struct{ DB *gorm.DB }

func NewMesaRepository(db *gorm.DB) *MesaRepository { return &MesaRepository{DB: db} }

// GET /sistema/mesas → todas, ordenadas pelo número.
func (r *MesaRepository) ListMesas() ([]entity.Mesa, error) {
	var mesas []entity.Mesa
	err := r.DB.Order("nr_mesa").Find(&mesas).Error
	return mesas, err
}

func (r *MesaRepository) GetMesa(id uint) (*entity.Mesa, error) {
	var m entity.Mesa
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Ocupa a mesa com guard: só vira indisponível se ainda estava livre.
// RowsAffected == 0 significa mesa inexistente ou já ocupada.
func (r *MesaRepository) Ocupar(tx *gorm.DB, mesaID uint) (bool, error) {
	res := tx.Model(&entity.Mesa{}).
		Where("id = ? AND id_disponivel = ?", mesaID, true).
		Update("id_disponivel", false)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *MesaRepository) Liberar(tx *gorm.DB, mesaID uint) error {
	return tx.Model(&entity.Mesa{}).
		Where("id = ?", mesaID).
		Update("id_disponivel", true).Error
}
