package routes

import (
	"github.com/Bruno-Signori/v0-site-estacionamento/configs"
	"github.com/Bruno-Signori/v0-site-estacionamento/controllers"
	"github.com/Bruno-Signori/v0-site-estacionamento/middlewares"
	"github.com/Bruno-Signori/v0-site-estacionamento/repository"
	"github.com/Bruno-Signori/v0-site-estacionamento/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	mesaRepo := repository.NewMesaRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)

	// Services
	pedidoSvc := services.NewPedidoService(db, pedidoRepo, mesaRepo, produtoRepo)
	comandaSvc := services.NewComandaService(pedidoSvc, mesaRepo, produtoRepo)
	relatorioSvc := services.NewRelatorioService(pedidoRepo)
	cardapioSvc := services.NewCardapioService(cfg.WhatsAppNumero)
	authSvc := services.NewAuthService(usuarioRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, comandaSvc)
	mesaCtrl := controllers.NewMesaController(db)
	produtoCtrl := controllers.NewProdutoController(db)
	pedidoCtrl := controllers.NewPedidoController(pedidoSvc)
	comandaCtrl := controllers.NewComandaController(comandaSvc)
	relatorioCtrl := controllers.NewRelatorioController(relatorioSvc)
	cardapioCtrl := controllers.NewCardapioController(cardapioSvc)

	// Público: login e cardápio de lanches (sem banco, sem auth)
	r.POST("/auth/login", authCtrl.Login)
	r.GET("/cardapio", cardapioCtrl.Catalogo)
	r.POST("/cardapio/pedido", cardapioCtrl.EnviarPedido)

	// Auth (protegido)
	auth := r.Group("/auth", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		auth.GET("/me", authCtrl.Me)
		auth.POST("/logout", authCtrl.Logout)
	}

	// Sistema interno
	sistema := r.Group("/sistema", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		sistema.GET("/mesas", mesaCtrl.List)
		sistema.GET("/produtos", produtoCtrl.List)

		sistema.GET("/pedidos", pedidoCtrl.ListAbertos)
		sistema.GET("/pedidos/:id", pedidoCtrl.Detalhe)
		sistema.POST("/pedidos", pedidoCtrl.Criar)
		sistema.POST("/pedidos/:id/itens", pedidoCtrl.AdicionarItem)
		sistema.DELETE("/pedidos/:id/itens/:itemId", pedidoCtrl.RemoverItem)
		sistema.POST("/pedidos/:id/fechar", pedidoCtrl.Fechar)
		sistema.POST("/pedidos/:id/cancelar", pedidoCtrl.Cancelar)

		// Comanda do operador (estado de trabalho em memória)
		sistema.GET("/comanda", comandaCtrl.Estado)
		sistema.POST("/comanda/iniciar", comandaCtrl.Iniciar)
		sistema.PATCH("/comanda/cliente", comandaCtrl.NomeCliente)
		sistema.POST("/comanda/carrinho", comandaCtrl.AdicionarAoCarrinho)
		sistema.POST("/comanda/carrinho/diminuir", comandaCtrl.DiminuirDoCarrinho)
		sistema.DELETE("/comanda/carrinho/:produtoId", comandaCtrl.ExcluirDoCarrinho)
		sistema.POST("/comanda/confirmar", comandaCtrl.Confirmar)
		sistema.POST("/comanda/descartar", comandaCtrl.Descartar)
		sistema.POST("/comanda/detalhe/:id", comandaCtrl.AbrirDetalhe)
		sistema.POST("/comanda/adicionar", comandaCtrl.IniciarAdicao)
		sistema.POST("/comanda/adicionar/produto", comandaCtrl.AdicionarAoPedido)
		sistema.DELETE("/comanda/detalhe/itens/:itemId", comandaCtrl.RemoverItem)
		sistema.POST("/comanda/fechar", comandaCtrl.Fechar)
		sistema.POST("/comanda/cancelar", comandaCtrl.Cancelar)
		sistema.POST("/comanda/relatorio", comandaCtrl.AbrirRelatorio)
		sistema.POST("/comanda/voltar", comandaCtrl.Voltar)

		sistema.GET("/relatorio", relatorioCtrl.Resumo)
	}
}
