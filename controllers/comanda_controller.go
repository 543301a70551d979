package controllers

import (
	"github.com/Bruno-Signori/v0-site-estacionamento/pkg/resp"
	"github.com/Bruno-Signori/v0-site-estacionamento/services"
	"github.com/Bruno-Signori/v0-site-estacionamento/utils"
	"github.com/gin-gonic/gin"
)

// ComandaController expõe a comanda (estado de trabalho) do operador:
// montar carrinho, confirmar, editar pedido aberto, relatório.
type ComandaController struct {
	Svc *services.ComandaService
}

func NewComandaController(svc *services.ComandaService) *ComandaController {
	return &ComandaController{Svc: svc}
}

// GET /sistema/comanda
func (cc *ComandaController) Estado(c *gin.Context) {
	comanda := cc.Svc.Estado(utils.CurrentUserID(c))
	resp.OK(c, gin.H{
		"comanda":       comanda,
		"totalCarrinho": comanda.TotalCarrinho(),
		"qtdCarrinho":   comanda.QtdCarrinho(),
	})
}

type IniciarPedidoReq struct {
	Tipo   string `json:"tipo" binding:"required,oneof=mesa balcao"`
	MesaID uint   `json:"mesaId"`
}

// POST /sistema/comanda/iniciar
func (cc *ComandaController) Iniciar(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req IniciarPedidoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var err error
	if req.Tipo == "mesa" {
		err = cc.Svc.IniciarPedidoMesa(uid, req.MesaID)
	} else {
		err = cc.Svc.IniciarPedidoBalcao(uid)
	}
	if err != nil {
		responderErro(c, err)
		return
	}
	cc.Estado(c)
}

type ProdutoReq struct {
	ProdutoID uint `json:"produtoId" binding:"required"`
}

type NomeClienteReq struct {
	Nome string `json:"nome"`
}

// PATCH /sistema/comanda/cliente
func (cc *ComandaController) NomeCliente(c *gin.Context) {
	var req NomeClienteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Svc.DefinirNomeCliente(utils.CurrentUserID(c), req.Nome); err != nil {
		responderErro(c, err)
		return
	}
	cc.Estado(c)
}

// POST /sistema/comanda/carrinho
func (cc *ComandaController) AdicionarAoCarrinho(c *gin.Context) {
	var req ProdutoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Svc.AdicionarAoCarrinho(utils.CurrentUserID(c), req.ProdutoID); err != nil {
		responderErro(c, err)
		return
	}
	cc.Estado(c)
}

// POST /sistema/comanda/carrinho/diminuir
func (cc *ComandaController) DiminuirDoCarrinho(c *gin.Context) {
	var req ProdutoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Svc.DiminuirDoCarrinho(utils.CurrentUserID(c), req.ProdutoID); err != nil {
		responderErro(c, err)
		return
	}
	cc.Estado(c)
}

// DELETE /sistema/comanda/carrinho/:produtoId
func (cc *ComandaController) ExcluirDoCarrinho(c *gin.Context) {
	produtoID := paramUint(c, "produtoId")
	if err := cc.Svc.ExcluirDoCarrinho(utils.CurrentUserID(c), produtoID); err != nil {
		responderErro(c, err)
		return
	}
	cc.Estado(c)
}

// POST /sistema/comanda/confirmar
func (cc *ComandaController) Confirmar(c *gin.Context) {
	pedido, err := cc.Svc.ConfirmarPedido(utils.CurrentUserID(c))
	if err != nil {
		responderErro(c, err)
		return
	}
	resp.Created(c, pedido)
}

// POST /sistema/comanda/descartar
func (cc *ComandaController) Descartar(c *gin.Context) {
	cc.Svc.DescartarCarrinho(utils.CurrentUserID(c))
	cc.Estado(c)
}

// POST /sistema/comanda/detalhe/:id
func (cc *ComandaController) AbrirDetalhe(c *gin.Context) {
	id := paramUint(c, "id")
	if err := cc.Svc.AbrirDetalhe(utils.CurrentUserID(c), id); err != nil {
		responderErro(c, err)
		return
	}
	cc.Estado(c)
}

type IniciarAdicaoReq struct {
	Categoria string `json:"categoria"`
}

// POST /sistema/comanda/adicionar
func (cc *ComandaController) IniciarAdicao(c *gin.Context) {
	var req IniciarAdicaoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Svc.IniciarAdicao(utils.CurrentUserID(c), req.Categoria); err != nil {
		responderErro(c, err)
		return
	}
	cc.Estado(c)
}

// POST /sistema/comanda/adicionar/produto
func (cc *ComandaController) AdicionarAoPedido(c *gin.Context) {
	var req ProdutoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Svc.AdicionarAoPedido(utils.CurrentUserID(c), req.ProdutoID); err != nil {
		responderErro(c, err)
		return
	}
	cc.Estado(c)
}

// DELETE /sistema/comanda/detalhe/itens/:itemId
func (cc *ComandaController) RemoverItem(c *gin.Context) {
	itemID := paramUint(c, "itemId")
	if err := cc.Svc.RemoverItemDetalhe(utils.CurrentUserID(c), itemID); err != nil {
		responderErro(c, err)
		return
	}
	cc.Estado(c)
}

// POST /sistema/comanda/fechar
func (cc *ComandaController) Fechar(c *gin.Context) {
	if err := cc.Svc.FecharPedido(utils.CurrentUserID(c)); err != nil {
		responderErro(c, err)
		return
	}
	cc.Estado(c)
}

// POST /sistema/comanda/cancelar
func (cc *ComandaController) Cancelar(c *gin.Context) {
	if err := cc.Svc.CancelarPedido(utils.CurrentUserID(c)); err != nil {
		responderErro(c, err)
		return
	}
	cc.Estado(c)
}

type RelatorioReq struct {
	Data string `json:"data" binding:"required"`
}

// POST /sistema/comanda/relatorio
func (cc *ComandaController) AbrirRelatorio(c *gin.Context) {
	var req RelatorioReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Svc.AbrirRelatorio(utils.CurrentUserID(c), req.Data); err != nil {
		responderErro(c, err)
		return
	}
	cc.Estado(c)
}

// POST /sistema/comanda/voltar
func (cc *ComandaController) Voltar(c *gin.Context) {
	cc.Svc.VoltarParaMesas(utils.CurrentUserID(c))
	cc.Estado(c)
}
