package services

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/Bruno-Signori/v0-site-estacionamento/utils"
)

var ErrCarrinhoVazio = errors.New("carrinho vazio")

// Item do cardápio público de lanches. Vive em código, não no banco:
// a página de lanches não faz nenhuma chamada ao sistema interno.
type ItemCardapio struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Preco int64  `json:"preco"`
}

type CategoriaCardapio struct {
	ID    string         `json:"id"`
	Nome  string         `json:"nome"`
	Itens []ItemCardapio `json:"itens"`
}

var cardapio = []CategoriaCardapio{
	{ID: "pasteis", Nome: "Pastéis", Itens: []ItemCardapio{
		{ID: "p1", Nome: "Carne", Preco: 900},
		{ID: "p2", Nome: "Frango", Preco: 1000},
		{ID: "p3", Nome: "Carne e Queijo", Preco: 1000},
		{ID: "p4", Nome: "Queijo", Preco: 1100},
		{ID: "p5", Nome: "Queijo e Presunto", Preco: 1000},
		{ID: "p6", Nome: "Chocolate Preto", Preco: 1100},
		{ID: "p7", Nome: "Chocolate Branco", Preco: 1100},
		{ID: "p8", Nome: "Chocolate Misto", Preco: 1100},
	}},
	{ID: "xis", Nome: "Xis e Burgers", Itens: []ItemCardapio{
		{ID: "h1", Nome: "Hamburguer", Preco: 1600},
		{ID: "h2", Nome: "X-Especial", Preco: 1700},
	}},
	{ID: "torradas", Nome: "Torradas", Itens: []ItemCardapio{
		{ID: "t1", Nome: "Torrada Completa", Preco: 1000},
	}},
	{ID: "pao", Nome: "Pão de Queijo", Itens: []ItemCardapio{
		{ID: "pq1", Nome: "Pão de Queijo (unidade)", Preco: 500},
	}},
	{ID: "bebidas", Nome: "Bebidas", Itens: []ItemCardapio{
		{ID: "b1", Nome: "Café", Preco: 500},
		{ID: "b2", Nome: "Café com Leite", Preco: 500},
		{ID: "b3", Nome: "Coca 220ml", Preco: 400},
		{ID: "b4", Nome: "Coca 350ml", Preco: 600},
		{ID: "b5", Nome: "Coca 600ml", Preco: 800},
		{ID: "b6", Nome: "Coca 2L", Preco: 1500},
		{ID: "b7", Nome: "Energetico Monster", Preco: 1300},
		{ID: "b8", Nome: "Red Bull", Preco: 1300},
		{ID: "b9", Nome: "Gatorade", Preco: 900},
	}},
	{ID: "diversos", Nome: "Diversos", Itens: []ItemCardapio{
		{ID: "d1", Nome: "Espetinho", Preco: 1200},
		{ID: "d2", Nome: "Snickers", Preco: 600},
		{ID: "d3", Nome: "Sonho De Valsa", Preco: 200},
		{ID: "d4", Nome: "Ouro Branco", Preco: 200},
		{ID: "d5", Nome: "Trento Tradicional", Preco: 500},
		{ID: "d6", Nome: "Trento Branco", Preco: 500},
		{ID: "d7", Nome: "Trento Dark", Preco: 500},
		{ID: "d8", Nome: "Lacta Shot", Preco: 1200},
		{ID: "d9", Nome: "Lacta Oreo", Preco: 1200},
		{ID: "d10", Nome: "Lacta Ao Leite", Preco: 1200},
		{ID: "d11", Nome: "Lacta Tamanho Família", Preco: 1600},
		{ID: "d12", Nome: "Kinder Bueno", Preco: 1000},
		{ID: "d13", Nome: "Doritos", Preco: 1200},
		{ID: "d14", Nome: "Ruffles", Preco: 1200},
		{ID: "d15", Nome: "Fandangos", Preco: 1200},
		{ID: "d16", Nome: "Cheetos Assado", Preco: 1200},
		{ID: "d17", Nome: "Baconzitos", Preco: 1200},
		{ID: "d18", Nome: "Cebolitos", Preco: 1200},
		{ID: "d19", Nome: "Stiksy", Preco: 1200},
		{ID: "d20", Nome: "Pingo d’Ouro", Preco: 1200},
		{ID: "d21", Nome: "Takis", Preco: 1000},
		{ID: "d22", Nome: "Crocantíssimo", Preco: 800},
		{ID: "d23", Nome: "Mentos", Preco: 350},
		{ID: "d24", Nome: "Trident", Preco: 350},
		{ID: "d25", Nome: "Fruit-tella", Preco: 450},
		{ID: "d26", Nome: "Tic Tac", Preco: 400},
		{ID: "d27", Nome: "Barra Nutry", Preco: 500},
		{ID: "d28", Nome: "Amendoim Iracema", Preco: 800},
	}},
}

type CardapioService struct {
	NumeroWhatsApp string
}

func NewCardapioService(numero string) *CardapioService {
	return &CardapioService{NumeroWhatsApp: numero}
}

func (s *CardapioService) Catalogo() []CategoriaCardapio {
	return cardapio
}

// PedidoLanche é o resultado do "enviar pedido": o texto formatado e o
// link wa.me pronto pro cliente abrir. Nada é persistido.
type PedidoLanche struct {
	Mensagem string `json:"mensagem"`
	URL      string `json:"url"`
	Total    int64  `json:"total"`
}

// MontarPedido percorre o cardápio na ordem e monta a mensagem com os itens
// de quantidade > 0, o total e as observações livres.
func (s *CardapioService) MontarPedido(quantidades map[string]int, observacoes string) (*PedidoLanche, error) {
	var b strings.Builder
	b.WriteString("🍴 *Pedido - Estacionamento Fittipaldi*\n\n")

	var total int64
	selecionados := 0
	for _, cat := range cardapio {
		for _, item := range cat.Itens {
			qtd := quantidades[item.ID]
			if qtd <= 0 {
				continue
			}
			selecionados++
			total += item.Preco * int64(qtd)
			fmt.Fprintf(&b, "✔ %s — %dx %s\n", item.Nome, qtd, utils.FormatarValor(item.Preco))
		}
	}
	if selecionados == 0 {
		return nil, ErrCarrinhoVazio
	}

	fmt.Fprintf(&b, "\n*Total: %s*", utils.FormatarReal(total))

	if obs := strings.TrimSpace(observacoes); obs != "" {
		b.WriteString("\n\n📝 Observações:\n")
		b.WriteString(obs)
	}

	mensagem := b.String()
	return &PedidoLanche{
		Mensagem: mensagem,
		URL:      fmt.Sprintf("https://wa.me/%s?text=%s", s.NumeroWhatsApp, url.QueryEscape(mensagem)),
		Total:    total,
	}, nil
}
