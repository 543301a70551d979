package controllers

import (
	"errors"

	"github.com/Bruno-Signori/v0-site-estacionamento/pkg/resp"
	"github.com/Bruno-Signori/v0-site-estacionamento/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Mapeia os erros dos services pra resposta HTTP. Erro de banco genérico
// vira 500 com a mensagem original (sem retry, sem embrulho).
func responderErro(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrMesaOcupada),
		errors.Is(err, services.ErrPedidoNaoAberto),
		errors.Is(err, services.ErrTransicaoInvalida):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrNomeObrigatorio),
		errors.Is(err, services.ErrQuantidadeInvalida),
		errors.Is(err, services.ErrPedidoSemItens),
		errors.Is(err, services.ErrProdutoInativo),
		errors.Is(err, services.ErrCarrinhoVazio),
		errors.Is(err, services.ErrItemForaDoCarrinho),
		errors.Is(err, services.ErrEstadoInvalido),
		errors.Is(err, services.ErrDataInvalida):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
