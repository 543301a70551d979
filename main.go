package main

import (
	"fmt"
	"log"

	"github.com/Bruno-Signori/v0-site-estacionamento/configs"
	"github.com/Bruno-Signori/v0-site-estacionamento/middlewares"
	"github.com/Bruno-Signori/v0-site-estacionamento/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate + seeds
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin falhou: %v", err)
	}
	if err := configs.SeedMesas(); err != nil {
		log.Fatalf("seed mesas falhou: %v", err)
	}
	if err := configs.SeedProdutos(); err != nil {
		log.Fatalf("seed produtos falhou: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("servidor rodando em", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
