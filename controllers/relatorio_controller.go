package controllers

import (
	"time"

	"github.com/Bruno-Signori/v0-site-estacionamento/pkg/resp"
	"github.com/Bruno-Signori/v0-site-estacionamento/services"
	"github.com/gin-gonic/gin"
)

type RelatorioController struct {
	Svc *services.RelatorioService
}

func NewRelatorioController(svc *services.RelatorioService) *RelatorioController {
	return &RelatorioController{Svc: svc}
}

// GET /sistema/relatorio?data=AAAA-MM-DD (sem data → hoje)
func (rc *RelatorioController) Resumo(c *gin.Context) {
	data := c.Query("data")
	if data == "" {
		data = time.Now().Format("2006-01-02")
	}

	resumo, err := rc.Svc.Resumo(data)
	if err != nil {
		responderErro(c, err)
		return
	}
	resp.OK(c, resumo)
}
