package controllers

import (
	"net/http"

	"github.com/Bruno-Signori/v0-site-estacionamento/pkg/resp"
	"github.com/Bruno-Signori/v0-site-estacionamento/services"
	"github.com/Bruno-Signori/v0-site-estacionamento/utils"
	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

type AuthController struct {
	Svc     *services.AuthService
	Comanda *services.ComandaService
}

func NewAuthController(svc *services.AuthService, comanda *services.ComandaService) *AuthController {
	return &AuthController{Svc: svc, Comanda: comanda}
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, usuario, err := a.Svc.Login(req.Email, req.Senha)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user": gin.H{
			"id": usuario.ID, "email": usuario.Email, "nome": usuario.Nome, "role": usuario.Role,
		},
	})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	usuario, err := a.Svc.Perfil(utils.CurrentUserID(c))
	if err != nil {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	resp.OK(c, usuario)
}

// POST /auth/logout. Token é stateless; aqui só se descarta a comanda
// em memória do operador. O front joga o token fora.
func (a *AuthController) Logout(c *gin.Context) {
	a.Comanda.Encerrar(utils.CurrentUserID(c))
	resp.OK(c, gin.H{"loggedOut": true})
}
