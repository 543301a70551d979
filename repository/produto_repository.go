package repository

import (
	"github.com/Bruno-Signori/v0-site-estacionamento/entity"
	"gorm.io/gorm"
)

type ProdutoRepository struct{ DB *gorm.DB }

func NewProdutoRepository(db *gorm.DB) *ProdutoRepository { return &ProdutoRepository{DB: db} }

// GET /sistema/produtos → só ativos, ordenados por categoria e nome.
func (r *ProdutoRepository) ListAtivos() ([]entity.Produto, error) {
	var produtos []entity.Produto
	err := r.DB.Where("id_ativo = ?", true).
		Order("ds_categoria").Order("nm_produto").
		Find(&produtos).Error
	return produtos, err
}

func (r *ProdutoRepository) GetProduto(id uint) (*entity.Produto, error) {
	var p entity.Produto
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
