package controllers

import (
	"github.com/Bruno-Signori/v0-site-estacionamento/pkg/resp"
	"github.com/Bruno-Signori/v0-site-estacionamento/services"
	"github.com/gin-gonic/gin"
)

// CardapioController serve a página pública de lanches: catálogo fixo e
// montagem do link de WhatsApp. Nenhuma rota aqui toca o banco.
type CardapioController struct {
	Svc *services.CardapioService
}

func NewCardapioController(svc *services.CardapioService) *CardapioController {
	return &CardapioController{Svc: svc}
}

// GET /cardapio
func (cc *CardapioController) Catalogo(c *gin.Context) {
	resp.OK(c, cc.Svc.Catalogo())
}

type EnviarPedidoReq struct {
	Quantidades map[string]int `json:"quantidades" binding:"required"`
	Observacoes string         `json:"observacoes"`
}

// POST /cardapio/pedido → mensagem formatada + link wa.me
func (cc *CardapioController) EnviarPedido(c *gin.Context) {
	var req EnviarPedidoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	pedido, err := cc.Svc.MontarPedido(req.Quantidades, req.Observacoes)
	if err != nil {
		responderErro(c, err)
		return
	}
	resp.OK(c, pedido)
}
