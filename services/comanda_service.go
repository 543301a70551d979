package services

import (
	"errors"
	"sync"

	"github.com/Bruno-Signori/v0-site-estacionamento/entity"
	"github.com/Bruno-Signori/v0-site-estacionamento/repository"
)

var (
	ErrEstadoInvalido     = errors.New("operação não permitida neste estado")
	ErrItemForaDoCarrinho = errors.New("produto não está no carrinho")
)

// Estados da tela do sistema interno. A comanda só muda de estado pelas
// operações nomeadas abaixo; nada de estado solto vazando entre telas.
type EstadoComanda string

const (
	EstadoMesas       EstadoComanda = "mesas"       // navegando mesas/balcão
	EstadoMontando    EstadoComanda = "montando"    // carrinho em montagem, pedido ainda não existe
	EstadoDetalhe     EstadoComanda = "detalhe"     // detalhe de pedido aberto
	EstadoAdicionando EstadoComanda = "adicionando" // escolhendo produto pra pedido já aberto
	EstadoRelatorio   EstadoComanda = "relatorio"   // relatório do dia
)

// ItemCarrinho só existe antes do pedido ser criado. Quantidade nunca
// fica abaixo de 1: diminuir a última unidade remove a entrada.
type ItemCarrinho struct {
	Produto    entity.Produto `json:"produto"`
	Quantidade int            `json:"quantidade"`
}

// Comanda é o estado de trabalho de um operador.
type Comanda struct {
	Estado        EstadoComanda  `json:"estado"`
	TipoPedido    string         `json:"tipoPedido,omitempty"` // "mesa" ou "balcao"
	Mesa          *entity.Mesa   `json:"mesa,omitempty"`
	NomeCliente   string         `json:"nomeCliente,omitempty"`
	Carrinho      []ItemCarrinho `json:"carrinho"`
	Detalhe       *entity.Pedido `json:"detalhe,omitempty"`
	Categoria     string         `json:"categoria,omitempty"`
	DataRelatorio string         `json:"dataRelatorio,omitempty"`
}

func (c *Comanda) TotalCarrinho() int64 {
	var total int64
	for _, it := range c.Carrinho {
		total += it.Produto.Preco * int64(it.Quantidade)
	}
	return total
}

func (c *Comanda) QtdCarrinho() int {
	qtd := 0
	for _, it := range c.Carrinho {
		qtd += it.Quantidade
	}
	return qtd
}

// ComandaService guarda uma comanda em memória por operador. Uso é de
// sessão única por operador; o mutex só protege o mapa e serializa as
// ações (equivalente ao indicador de "carregando" que trava a tela).
type ComandaService struct {
	mu      sync.Mutex
	sessoes map[uint]*Comanda

	Pedidos     *PedidoService
	MesaRepo    *repository.MesaRepository
	ProdutoRepo *repository.ProdutoRepository
}

func NewComandaService(
	pedidos *PedidoService,
	mesaRepo *repository.MesaRepository,
	produtoRepo *repository.ProdutoRepository,
) *ComandaService {
	return &ComandaService{
		sessoes:     make(map[uint]*Comanda),
		Pedidos:     pedidos,
		MesaRepo:    mesaRepo,
		ProdutoRepo: produtoRepo,
	}
}

// chamar com o lock pego
func (s *ComandaService) sessao(operadorID uint) *Comanda {
	c, ok := s.sessoes[operadorID]
	if !ok {
		c = &Comanda{Estado: EstadoMesas}
		s.sessoes[operadorID] = c
	}
	return c
}

// Estado devolve uma cópia da comanda pro controller serializar.
func (s *ComandaService) Estado(operadorID uint) Comanda {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.sessao(operadorID)
}

// ----- Montagem de carrinho -----

func (s *ComandaService) IniciarPedidoMesa(operadorID, mesaID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mesa, err := s.MesaRepo.GetMesa(mesaID)
	if err != nil {
		return err
	}
	if !mesa.Disponivel {
		return ErrMesaOcupada
	}

	c := s.sessao(operadorID)
	*c = Comanda{
		Estado:     EstadoMontando,
		TipoPedido: "mesa",
		Mesa:       mesa,
	}
	return nil
}

func (s *ComandaService) IniciarPedidoBalcao(operadorID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.sessao(operadorID)
	*c = Comanda{
		Estado:     EstadoMontando,
		TipoPedido: "balcao",
	}
	return nil
}

func (s *ComandaService) DefinirNomeCliente(operadorID uint, nome string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.sessao(operadorID)
	if c.Estado != EstadoMontando {
		return ErrEstadoInvalido
	}
	c.NomeCliente = nome
	return nil
}

func (s *ComandaService) AdicionarAoCarrinho(operadorID, produtoID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.sessao(operadorID)
	if c.Estado != EstadoMontando {
		return ErrEstadoInvalido
	}

	for i := range c.Carrinho {
		if c.Carrinho[i].Produto.ID == produtoID {
			c.Carrinho[i].Quantidade++
			return nil
		}
	}

	produto, err := s.ProdutoRepo.GetProduto(produtoID)
	if err != nil {
		return err
	}
	if !produto.Ativo {
		return ErrProdutoInativo
	}
	c.Carrinho = append(c.Carrinho, ItemCarrinho{Produto: *produto, Quantidade: 1})
	return nil
}

// Diminui uma unidade; na última, a entrada sai do carrinho.
func (s *ComandaService) DiminuirDoCarrinho(operadorID, produtoID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.sessao(operadorID)
	if c.Estado != EstadoMontando {
		return ErrEstadoInvalido
	}

	for i := range c.Carrinho {
		if c.Carrinho[i].Produto.ID != produtoID {
			continue
		}
		if c.Carrinho[i].Quantidade > 1 {
			c.Carrinho[i].Quantidade--
		} else {
			c.Carrinho = append(c.Carrinho[:i], c.Carrinho[i+1:]...)
		}
		return nil
	}
	return ErrItemForaDoCarrinho
}

func (s *ComandaService) ExcluirDoCarrinho(operadorID, produtoID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.sessao(operadorID)
	if c.Estado != EstadoMontando {
		return ErrEstadoInvalido
	}

	for i := range c.Carrinho {
		if c.Carrinho[i].Produto.ID == produtoID {
			c.Carrinho = append(c.Carrinho[:i], c.Carrinho[i+1:]...)
			return nil
		}
	}
	return ErrItemForaDoCarrinho
}

// ConfirmarPedido descarrega o carrinho: abre o pedido e lança um item por
// entrada, em sequência. Se algo falhar no meio, a comanda fica como está
// pro operador tentar de novo ou descartar.
func (s *ComandaService) ConfirmarPedido(operadorID uint) (*entity.Pedido, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.sessao(operadorID)
	if c.Estado != EstadoMontando {
		return nil, ErrEstadoInvalido
	}
	if len(c.Carrinho) == 0 {
		return nil, ErrCarrinhoVazio
	}

	var pedido *entity.Pedido
	var err error
	if c.TipoPedido == "mesa" && c.Mesa != nil {
		pedido, err = s.Pedidos.AbrirPedidoMesa(c.Mesa.ID, c.NomeCliente)
	} else {
		pedido, err = s.Pedidos.AbrirPedidoBalcao(c.NomeCliente)
	}
	if err != nil {
		return nil, err
	}

	for _, item := range c.Carrinho {
		if err := s.Pedidos.AdicionarItem(pedido.ID, item.Produto.ID, item.Quantidade); err != nil {
			return nil, err
		}
	}

	*c = Comanda{Estado: EstadoMesas}
	return s.Pedidos.Detalhe(pedido.ID)
}

func (s *ComandaService) DescartarCarrinho(operadorID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.sessao(operadorID)
	*c = Comanda{Estado: EstadoMesas}
}

// ----- Detalhe de pedido aberto -----

func (s *ComandaService) AbrirDetalhe(operadorID, pedidoID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.Pedidos.Detalhe(pedidoID)
	if err != nil {
		return err
	}
	if p.Status != entity.StatusAberto {
		return ErrPedidoNaoAberto
	}

	c := s.sessao(operadorID)
	*c = Comanda{Estado: EstadoDetalhe, Detalhe: p}
	return nil
}

func (s *ComandaService) IniciarAdicao(operadorID uint, categoria string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.sessao(operadorID)
	if c.Estado != EstadoDetalhe || c.Detalhe == nil {
		return ErrEstadoInvalido
	}
	c.Estado = EstadoAdicionando
	c.Categoria = categoria
	return nil
}

// Lança uma unidade no pedido aberto e volta pro detalhe com o pedido
// re-consultado do banco (nunca remendado em memória).
func (s *ComandaService) AdicionarAoPedido(operadorID, produtoID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.sessao(operadorID)
	if c.Estado != EstadoAdicionando || c.Detalhe == nil {
		return ErrEstadoInvalido
	}

	if err := s.Pedidos.AdicionarItem(c.Detalhe.ID, produtoID, 1); err != nil {
		return err
	}

	p, err := s.Pedidos.Detalhe(c.Detalhe.ID)
	if err != nil {
		return err
	}
	c.Detalhe = p
	c.Estado = EstadoDetalhe
	c.Categoria = ""
	return nil
}

func (s *ComandaService) RemoverItemDetalhe(operadorID, itemID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.sessao(operadorID)
	if c.Estado != EstadoDetalhe || c.Detalhe == nil {
		return ErrEstadoInvalido
	}

	if err := s.Pedidos.RemoverItem(itemID, c.Detalhe.ID); err != nil {
		return err
	}

	p, err := s.Pedidos.Detalhe(c.Detalhe.ID)
	if err != nil {
		return err
	}
	c.Detalhe = p
	return nil
}

func (s *ComandaService) FecharPedido(operadorID uint) error {
	return s.encerrarDetalhe(operadorID, s.Pedidos.FecharPedido)
}

func (s *ComandaService) CancelarPedido(operadorID uint) error {
	return s.encerrarDetalhe(operadorID, s.Pedidos.CancelarPedido)
}

func (s *ComandaService) encerrarDetalhe(operadorID uint, op func(uint) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.sessao(operadorID)
	if c.Estado != EstadoDetalhe || c.Detalhe == nil {
		return ErrEstadoInvalido
	}

	if err := op(c.Detalhe.ID); err != nil {
		return err
	}

	*c = Comanda{Estado: EstadoMesas}
	return nil
}

// ----- Relatório / navegação -----

// O relatório é acessível de qualquer estado; não mexe no pedido em edição.
func (s *ComandaService) AbrirRelatorio(operadorID uint, data string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.sessao(operadorID)
	c.Estado = EstadoRelatorio
	c.DataRelatorio = data
	return nil
}

func (s *ComandaService) VoltarParaMesas(operadorID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.sessao(operadorID)
	*c = Comanda{Estado: EstadoMesas}
}

// Encerrar descarta a sessão do operador (logout).
func (s *ComandaService) Encerrar(operadorID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessoes, operadorID)
}
