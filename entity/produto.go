package entity

import (
	"gorm.io/gorm"
)

// Produto do cardápio interno. Preco em centavos.
// Produto inativo some da tela de pedidos mas nunca é apagado,
// porque itens antigos ainda apontam pra ele.
type Produto struct {
	gorm.Model
	Nome      string `json:"nome" gorm:"column:nm_produto;uniqueIndex"`
	Categoria string `json:"categoria" gorm:"column:ds_categoria;index"`
	Preco     int64  `json:"preco" gorm:"column:vl_preco"`
	Ativo     bool   `json:"ativo" gorm:"column:id_ativo;default:true"`
}

func (Produto) TableName() string { return "produtos" }
