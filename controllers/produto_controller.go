package controllers

import (
	"github.com/Bruno-Signori/v0-site-estacionamento/pkg/resp"
	"github.com/Bruno-Signori/v0-site-estacionamento/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProdutoController struct {
	Repo *repository.ProdutoRepository
}

func NewProdutoController(db *gorm.DB) *ProdutoController {
	return &ProdutoController{Repo: repository.NewProdutoRepository(db)}
}

// GET /sistema/produtos lista só os ativos; inativos ficam no banco por causa
// do histórico mas não aparecem pra lançamento.
func (pc *ProdutoController) List(c *gin.Context) {
	produtos, err := pc.Repo.ListAtivos()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, produtos)
}
