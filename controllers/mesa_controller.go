package controllers

import (
	"github.com/Bruno-Signori/v0-site-estacionamento/pkg/resp"
	"github.com/Bruno-Signori/v0-site-estacionamento/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MesaController struct {
	Repo *repository.MesaRepository
}

func NewMesaController(db *gorm.DB) *MesaController {
	return &MesaController{Repo: repository.NewMesaRepository(db)}
}

// GET /sistema/mesas
func (mc *MesaController) List(c *gin.Context) {
	mesas, err := mc.Repo.ListMesas()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, mesas)
}
