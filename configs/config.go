package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver  string
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// Número que recebe os pedidos do cardápio público (wa.me).
	WhatsAppNumero string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("sem arquivo .env, usando variáveis do ambiente")
	}

	return &Config{
		DBDriver:       getEnv("DB_DRIVER", "sqlite"),
		DBSource:       getEnv("DB_SOURCE", "estacionamento.db"),
		Port:           getEnv("PORT", "8000"),
		JWTSecret:      getEnv("JWT_SECRET", "changeme"),
		JWTTTL:         time.Duration(12) * time.Hour,
		WhatsAppNumero: getEnv("WHATSAPP_NUMERO", "555499710222"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
