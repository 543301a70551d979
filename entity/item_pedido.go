package entity

import (
	"time"
)

// ItemPedido é uma linha da comanda. ValorUnitario é snapshot do preço do
// produto na hora do lançamento; mudar o preço no cardápio depois não mexe
// em item já lançado. Remoção é hard delete (sem soft delete aqui).
type ItemPedido struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	PedidoID   uint    `json:"pedidoId" gorm:"column:id_pedido;index"`
	ProdutoID  uint    `json:"produtoId" gorm:"column:id_produto"`
	Produto    Produto `json:"produto" gorm:"foreignKey:ProdutoID"`
	Quantidade int     `json:"quantidade" gorm:"column:nr_quantidade"`

	ValorUnitario int64 `json:"valorUnitario" gorm:"column:vl_unitario"`
	Subtotal      int64 `json:"subtotal" gorm:"column:vl_subtotal"`

	CreatedAt time.Time `json:"-"`
}

func (ItemPedido) TableName() string { return "itens_pedido" }
