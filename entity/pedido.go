package entity

import (
	"time"

	"gorm.io/gorm"
)

// Status possíveis de um pedido. Só existem duas transições:
// aberto → fechado e aberto → cancelado.
const (
	StatusAberto    = "aberto"
	StatusFechado   = "fechado"
	StatusCancelado = "cancelado"
)

// Pedido é uma comanda de mesa ou de balcão (sem mesa, só nome do cliente).
// Total é derivado: soma dos subtotais dos itens, recalculada a cada mutação.
type Pedido struct {
	gorm.Model
	MesaID      *uint      `json:"mesaId" gorm:"column:id_mesa"`
	Mesa        *Mesa      `json:"mesa,omitempty" gorm:"foreignKey:MesaID"`
	NomeCliente string     `json:"nomeCliente" gorm:"column:nm_cliente"`
	Status      string     `json:"status" gorm:"column:cd_status;index;default:'aberto'"`
	Total       int64      `json:"total" gorm:"column:vl_total"`
	Abertura    time.Time  `json:"abertura" gorm:"column:dh_abertura;autoCreateTime"`
	Fechamento  *time.Time `json:"fechamento" gorm:"column:dh_fechamento"`

	Itens []ItemPedido `json:"itens" gorm:"foreignKey:PedidoID;constraint:OnDelete:CASCADE"`
}

func (Pedido) TableName() string { return "pedidos" }
