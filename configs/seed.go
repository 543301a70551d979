package configs

import (
	"log"

	"github.com/Bruno-Signori/v0-site-estacionamento/entity"
	"golang.org/x/crypto/bcrypt"
)

// Cria o operador inicial a partir do ambiente.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("seed admin pulado: falta ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Usuario{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin já existe:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.Usuario{
		Email: email,
		Senha: string(hash),
		Nome:  "Administrador",
		Role:  "admin",
	}
	return db.Create(&admin).Error
}

// Mesas 1..10, todas livres. FirstOrCreate pra não duplicar em restart.
func SeedMesas() error {
	db := DB()
	for n := 1; n <= 10; n++ {
		mesa := entity.Mesa{Numero: n, Disponivel: true}
		if err := db.Where(entity.Mesa{Numero: n}).
			Attrs(mesa).FirstOrCreate(&mesa).Error; err != nil {
			return err
		}
	}
	return nil
}

// Cardápio interno inicial. Preços em centavos.
func SeedProdutos() error {
	db := DB()

	produtos := []entity.Produto{
		{Nome: "Pastel de Carne", Categoria: "pasteis", Preco: 900},
		{Nome: "Pastel de Frango", Categoria: "pasteis", Preco: 1000},
		{Nome: "Pastel de Carne e Queijo", Categoria: "pasteis", Preco: 1000},
		{Nome: "Pastel de Queijo", Categoria: "pasteis", Preco: 1100},
		{Nome: "Pastel de Queijo e Presunto", Categoria: "pasteis", Preco: 1000},
		{Nome: "Pastel de Chocolate Preto", Categoria: "pasteis", Preco: 1100},
		{Nome: "Pastel de Chocolate Branco", Categoria: "pasteis", Preco: 1100},
		{Nome: "Pastel de Chocolate Misto", Categoria: "pasteis", Preco: 1100},

		{Nome: "Hamburguer", Categoria: "xis", Preco: 1600},
		{Nome: "X-Especial", Categoria: "xis", Preco: 1700},

		{Nome: "Torrada Completa", Categoria: "torradas", Preco: 1000},
		{Nome: "Pão de Queijo (unidade)", Categoria: "pao_de_queijo", Preco: 500},

		{Nome: "Café", Categoria: "bebidas", Preco: 500},
		{Nome: "Café com Leite", Categoria: "bebidas", Preco: 500},
		{Nome: "Coca 220ml", Categoria: "bebidas", Preco: 400},
		{Nome: "Coca 350ml", Categoria: "bebidas", Preco: 600},
		{Nome: "Coca 600ml", Categoria: "bebidas", Preco: 800},
		{Nome: "Coca 2L", Categoria: "bebidas", Preco: 1500},
		{Nome: "Energetico Monster", Categoria: "bebidas", Preco: 1300},
		{Nome: "Red Bull", Categoria: "bebidas", Preco: 1300},
		{Nome: "Gatorade", Categoria: "bebidas", Preco: 900},

		{Nome: "Espetinho", Categoria: "diversos", Preco: 1200},
		{Nome: "Snickers", Categoria: "diversos", Preco: 600},
		{Nome: "Sonho De Valsa", Categoria: "diversos", Preco: 200},
		{Nome: "Ouro Branco", Categoria: "diversos", Preco: 200},
		{Nome: "Trento Tradicional", Categoria: "diversos", Preco: 500},
		{Nome: "Doritos", Categoria: "diversos", Preco: 1200},
		{Nome: "Ruffles", Categoria: "diversos", Preco: 1200},
		{Nome: "Amendoim Iracema", Categoria: "diversos", Preco: 800},
	}

	for _, p := range produtos {
		prod := p
		prod.Ativo = true
		if err := db.Where(entity.Produto{Nome: p.Nome}).
			Attrs(prod).FirstOrCreate(&prod).Error; err != nil {
			return err
		}
	}

	log.Println("seed de produtos ok")
	return nil
}
