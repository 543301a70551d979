package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Bruno-Signori/v0-site-estacionamento/entity"
	"github.com/Bruno-Signori/v0-site-estacionamento/repository"
	"gorm.io/gorm"
)

var (
	ErrMesaOcupada       = errors.New("mesa ocupada")
	ErrNomeObrigatorio   = errors.New("nome do cliente é obrigatório no balcão")
	ErrQuantidadeInvalida = errors.New("quantidade deve ser no mínimo 1")
	ErrPedidoNaoAberto   = errors.New("pedido não está aberto")
	ErrPedidoSemItens    = errors.New("pedido sem itens não pode ser fechado")
	ErrTransicaoInvalida = errors.New("pedido já fechado ou cancelado")
	ErrProdutoInativo    = errors.New("produto inativo")
)

// PedidoService carrega o ciclo de vida da comanda: abrir (mesa ou balcão),
// lançar e remover itens, fechar e cancelar. Toda mutação de item e o
// recálculo do total rodam na mesma transação.
type PedidoService struct {
	DB          *gorm.DB
	Repo        *repository.PedidoRepository
	MesaRepo    *repository.MesaRepository
	ProdutoRepo *repository.ProdutoRepository
}

func NewPedidoService(
	db *gorm.DB,
	repo *repository.PedidoRepository,
	mesaRepo *repository.MesaRepository,
	produtoRepo *repository.ProdutoRepository,
) *PedidoService {
	return &PedidoService{DB: db, Repo: repo, MesaRepo: mesaRepo, ProdutoRepo: produtoRepo}
}

// ----- Abertura -----

// Abre pedido em mesa. A mesa é ocupada com guard na mesma transação;
// se alguém abriu nela no meio tempo, falha com ErrMesaOcupada.
func (s *PedidoService) AbrirPedidoMesa(mesaID uint, nomeCliente string) (*entity.Pedido, error) {
	var out *entity.Pedido
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.MesaRepo.Ocupar(tx, mesaID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrMesaOcupada
		}

		p := &entity.Pedido{
			MesaID:      &mesaID,
			NomeCliente: strings.TrimSpace(nomeCliente),
			Status:      entity.StatusAberto,
		}
		if err := s.Repo.CreatePedido(tx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Abre pedido de balcão: sem mesa, nome do cliente obrigatório.
func (s *PedidoService) AbrirPedidoBalcao(nomeCliente string) (*entity.Pedido, error) {
	nome := strings.TrimSpace(nomeCliente)
	if nome == "" {
		return nil, ErrNomeObrigatorio
	}

	p := &entity.Pedido{
		NomeCliente: nome,
		Status:      entity.StatusAberto,
	}
	if err := s.Repo.CreatePedido(s.DB, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ----- Itens -----

// Lança um item no pedido. O preço do produto é congelado em vl_unitario
// neste momento; mudança posterior de preço no cardápio não afeta o item.
func (s *PedidoService) AdicionarItem(pedidoID, produtoID uint, quantidade int) error {
	if quantidade < 1 {
		return ErrQuantidadeInvalida
	}

	p, err := s.Repo.GetPedido(pedidoID)
	if err != nil {
		return err
	}
	if p.Status != entity.StatusAberto {
		return ErrPedidoNaoAberto
	}

	produto, err := s.ProdutoRepo.GetProduto(produtoID)
	if err != nil {
		return err
	}
	if !produto.Ativo {
		return ErrProdutoInativo
	}

	item := &entity.ItemPedido{
		PedidoID:      pedidoID,
		ProdutoID:     produtoID,
		Quantidade:    quantidade,
		ValorUnitario: produto.Preco,
		Subtotal:      produto.Preco * int64(quantidade),
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateItem(tx, item); err != nil {
			return err
		}
		return s.Repo.AtualizarTotal(tx, pedidoID)
	})
}

// Remove o item e recalcula o total na mesma transação.
func (s *PedidoService) RemoverItem(itemID, pedidoID uint) error {
	p, err := s.Repo.GetPedido(pedidoID)
	if err != nil {
		return err
	}
	if p.Status != entity.StatusAberto {
		return ErrPedidoNaoAberto
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.DeleteItem(tx, itemID, pedidoID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return gorm.ErrRecordNotFound
		}
		return s.Repo.AtualizarTotal(tx, pedidoID)
	})
}

// ----- Fechamento -----

func (s *PedidoService) FecharPedido(pedidoID uint) error {
	cnt, err := s.Repo.ContarItens(pedidoID)
	if err != nil {
		return err
	}
	if cnt == 0 {
		return ErrPedidoSemItens
	}
	return s.encerrar(pedidoID, entity.StatusFechado)
}

// Cancelar não exige itens; a mesa é liberada do mesmo jeito.
func (s *PedidoService) CancelarPedido(pedidoID uint) error {
	return s.encerrar(pedidoID, entity.StatusCancelado)
}

func (s *PedidoService) encerrar(pedidoID uint, status string) error {
	p, err := s.Repo.GetPedido(pedidoID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Repo.UpdateStatusGuard(tx, pedidoID, entity.StatusAberto, status, time.Now())
		if err != nil {
			return err
		}
		if !ok {
			return ErrTransicaoInvalida
		}
		if p.MesaID != nil {
			return s.MesaRepo.Liberar(tx, *p.MesaID)
		}
		return nil
	})
}

// ----- Consultas -----

func (s *PedidoService) ListAbertos() ([]entity.Pedido, error) {
	return s.Repo.ListAbertos()
}

func (s *PedidoService) Detalhe(pedidoID uint) (*entity.Pedido, error) {
	return s.Repo.GetPedidoCompleto(pedidoID)
}
