package repository

import (
	"time"

	"github.com/Bruno-Signori/v0-site-estacionamento/entity"
	"gorm.io/gorm"
)

type PedidoRepository struct{ DB *gorm.DB }

func NewPedidoRepository(db *gorm.DB) *PedidoRepository { return &PedidoRepository{DB: db} }

// ---------------- Pedidos ----------------

func (r *PedidoRepository) CreatePedido(tx *gorm.DB, p *entity.Pedido) error {
	return tx.Create(p).Error
}

func (r *PedidoRepository) GetPedido(id uint) (*entity.Pedido, error) {
	var p entity.Pedido
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Pedido com mesa e itens (cada item com o produto) pra tela de detalhe.
func (r *PedidoRepository) GetPedidoCompleto(id uint) (*entity.Pedido, error) {
	var p entity.Pedido
	err := r.DB.Preload("Mesa").
		Preload("Itens").
		Preload("Itens.Produto").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GET /sistema/pedidos → abertos, mais recentes primeiro.
func (r *PedidoRepository) ListAbertos() ([]entity.Pedido, error) {
	var pedidos []entity.Pedido
	err := r.DB.Where("cd_status = ?", entity.StatusAberto).
		Preload("Mesa").
		Preload("Itens").
		Preload("Itens.Produto").
		Order("dh_abertura DESC").
		Find(&pedidos).Error
	return pedidos, err
}

// Fechados e cancelados abertos dentro do intervalo, pro relatório do dia.
func (r *PedidoRepository) ListFechados(inicio, fim time.Time) ([]entity.Pedido, error) {
	var pedidos []entity.Pedido
	err := r.DB.Where("cd_status IN ?", []string{entity.StatusFechado, entity.StatusCancelado}).
		Where("dh_abertura >= ? AND dh_abertura <= ?", inicio, fim).
		Preload("Mesa").
		Preload("Itens").
		Preload("Itens.Produto").
		Order("dh_fechamento DESC").
		Find(&pedidos).Error
	return pedidos, err
}

// Transição de status com guard: só aplica se o status atual for `de`.
// RowsAffected == 0 → pedido inexistente ou já em estado terminal.
func (r *PedidoRepository) UpdateStatusGuard(tx *gorm.DB, pedidoID uint, de, para string, fechamento time.Time) (bool, error) {
	res := tx.Model(&entity.Pedido{}).
		Where("id = ? AND cd_status = ?", pedidoID, de).
		Updates(map[string]any{
			"cd_status":     para,
			"dh_fechamento": fechamento,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ---------------- Itens ----------------

func (r *PedidoRepository) CreateItem(tx *gorm.DB, item *entity.ItemPedido) error {
	return tx.Create(item).Error
}

// Remove o item garantindo que pertence ao pedido informado.
func (r *PedidoRepository) DeleteItem(tx *gorm.DB, itemID, pedidoID uint) (int64, error) {
	res := tx.Where("id = ? AND id_pedido = ?", itemID, pedidoID).
		Delete(&entity.ItemPedido{})
	return res.RowsAffected, res.Error
}

func (r *PedidoRepository) GetItens(pedidoID uint) ([]entity.ItemPedido, error) {
	var itens []entity.ItemPedido
	err := r.DB.Where("id_pedido = ?", pedidoID).Find(&itens).Error
	return itens, err
}

func (r *PedidoRepository) ContarItens(pedidoID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.ItemPedido{}).
		Where("id_pedido = ?", pedidoID).Count(&cnt).Error
	return cnt, err
}

// Recalcula vl_total como soma dos subtotais restantes. Chamado na mesma
// transação de qualquer mutação de item, pra nunca deixar total defasado.
func (r *PedidoRepository) AtualizarTotal(tx *gorm.DB, pedidoID uint) error {
	var row struct{ Total int64 }
	if err := tx.Model(&entity.ItemPedido{}).
		Select("COALESCE(SUM(vl_subtotal), 0) AS total").
		Where("id_pedido = ?", pedidoID).
		Scan(&row).Error; err != nil {
		return err
	}
	return tx.Model(&entity.Pedido{}).
		Where("id = ?", pedidoID).
		Update("vl_total", row.Total).Error
}
