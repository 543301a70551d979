package entity

import (
	"gorm.io/gorm"
)

// Mesa do pátio. Disponivel fica false enquanto existir pedido aberto
// apontando pra ela.
type Mesa struct {
	gorm.Model
	Numero     int  `json:"numero" gorm:"column:nr_mesa;uniqueIndex"`
	Disponivel bool `json:"disponivel" gorm:"column:id_disponivel;default:true"`

	Pedidos []Pedido `json:"-" gorm:"foreignKey:MesaID"`
}

func (Mesa) TableName() string { return "mesas" }
