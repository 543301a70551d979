package controllers

import (
	"strconv"

	"github.com/Bruno-Signori/v0-site-estacionamento/entity"
	"github.com/Bruno-Signori/v0-site-estacionamento/pkg/resp"
	"github.com/Bruno-Signori/v0-site-estacionamento/services"
	"github.com/gin-gonic/gin"
)

type PedidoController struct {
	Svc *services.PedidoService
}

func NewPedidoController(svc *services.PedidoService) *PedidoController {
	return &PedidoController{Svc: svc}
}

// ----- DTOs -----

type ItemPedidoIn struct {
	ProdutoID  uint `json:"produtoId" binding:"required"`
	Quantidade int  `json:"quantidade" binding:"required,min=1"`
}

type CriarPedidoReq struct {
	MesaID      *uint          `json:"mesaId"`
	NomeCliente string         `json:"nomeCliente"`
	Itens       []ItemPedidoIn `json:"itens" binding:"required,min=1"`
}

type AdicionarItemReq struct {
	ProdutoID  uint `json:"produtoId" binding:"required"`
	Quantidade int  `json:"quantidade" binding:"required,min=1"`
}

// GET /sistema/pedidos
func (pc *PedidoController) ListAbertos(c *gin.Context) {
	pedidos, err := pc.Svc.ListAbertos()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, pedidos)
}

// GET /sistema/pedidos/:id
func (pc *PedidoController) Detalhe(c *gin.Context) {
	id := paramUint(c, "id")
	pedido, err := pc.Svc.Detalhe(id)
	if err != nil {
		responderErro(c, err)
		return
	}
	resp.OK(c, pedido)
}

// POST /sistema/pedidos confirma um carrinho: abre o pedido e lança os
// itens em sequência, cada lançamento com seu recálculo de total.
func (pc *PedidoController) Criar(c *gin.Context) {
	var req CriarPedidoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var pedido *entity.Pedido
	var err error
	if req.MesaID != nil {
		pedido, err = pc.Svc.AbrirPedidoMesa(*req.MesaID, req.NomeCliente)
	} else {
		pedido, err = pc.Svc.AbrirPedidoBalcao(req.NomeCliente)
	}
	if err != nil {
		responderErro(c, err)
		return
	}

	for _, it := range req.Itens {
		if err := pc.Svc.AdicionarItem(pedido.ID, it.ProdutoID, it.Quantidade); err != nil {
			responderErro(c, err)
			return
		}
	}

	completo, err := pc.Svc.Detalhe(pedido.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, completo)
}

// POST /sistema/pedidos/:id/itens
func (pc *PedidoController) AdicionarItem(c *gin.Context) {
	id := paramUint(c, "id")

	var req AdicionarItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := pc.Svc.AdicionarItem(id, req.ProdutoID, req.Quantidade); err != nil {
		responderErro(c, err)
		return
	}

	pedido, err := pc.Svc.Detalhe(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, pedido)
}

// DELETE /sistema/pedidos/:id/itens/:itemId
func (pc *PedidoController) RemoverItem(c *gin.Context) {
	id := paramUint(c, "id")
	itemID := paramUint(c, "itemId")

	if err := pc.Svc.RemoverItem(itemID, id); err != nil {
		responderErro(c, err)
		return
	}

	pedido, err := pc.Svc.Detalhe(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, pedido)
}

// POST /sistema/pedidos/:id/fechar
func (pc *PedidoController) Fechar(c *gin.Context) {
	id := paramUint(c, "id")
	if err := pc.Svc.FecharPedido(id); err != nil {
		responderErro(c, err)
		return
	}
	resp.OK(c, gin.H{"fechado": true})
}

// POST /sistema/pedidos/:id/cancelar
func (pc *PedidoController) Cancelar(c *gin.Context) {
	id := paramUint(c, "id")
	if err := pc.Svc.CancelarPedido(id); err != nil {
		responderErro(c, err)
		return
	}
	resp.OK(c, gin.H{"cancelado": true})
}

func paramUint(c *gin.Context, name string) uint {
	v, _ := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(v)
}
