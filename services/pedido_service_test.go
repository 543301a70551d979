package services

import (
	"testing"

	"github.com/Bruno-Signori/v0-site-estacionamento/entity"
	"github.com/Bruno-Signori/v0-site-estacionamento/repository"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("falha ao abrir banco de teste: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.Usuario{},
		&entity.Mesa{},
		&entity.Produto{},
		&entity.Pedido{},
		&entity.ItemPedido{},
	); err != nil {
		t.Fatalf("falha na migração: %v", err)
	}
	return db
}

func newPedidoService(db *gorm.DB) *PedidoService {
	return NewPedidoService(
		db,
		repository.NewPedidoRepository(db),
		repository.NewMesaRepository(db),
		repository.NewProdutoRepository(db),
	)
}

func criarMesa(t *testing.T, db *gorm.DB, numero int) entity.Mesa {
	mesa := entity.Mesa{Numero: numero, Disponivel: true}
	if err := db.Create(&mesa).Error; err != nil {
		t.Fatalf("falha ao criar mesa: %v", err)
	}
	return mesa
}

func criarProduto(t *testing.T, db *gorm.DB, nome, categoria string, preco int64) entity.Produto {
	p := entity.Produto{Nome: nome, Categoria: categoria, Preco: preco, Ativo: true}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("falha ao criar produto: %v", err)
	}
	return p
}

func TestAbrirPedidoMesaOcupaMesa(t *testing.T) {
	db := setupTestDB(t)
	svc := newPedidoService(db)
	mesa := criarMesa(t, db, 1)

	pedido, err := svc.AbrirPedidoMesa(mesa.ID, "")
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusAberto, pedido.Status)
	assert.NotNil(t, pedido.MesaID)
	assert.Equal(t, mesa.ID, *pedido.MesaID)
	assert.Equal(t, int64(0), pedido.Total)

	var atualizada entity.Mesa
	db.First(&atualizada, mesa.ID)
	assert.False(t, atualizada.Disponivel)

	// mesa já ocupada não aceita segundo pedido
	_, err = svc.AbrirPedidoMesa(mesa.ID, "")
	assert.ErrorIs(t, err, ErrMesaOcupada)
}

func TestAbrirPedidoBalcao(t *testing.T) {
	db := setupTestDB(t)
	svc := newPedidoService(db)
	mesa := criarMesa(t, db, 1)

	_, err := svc.AbrirPedidoBalcao("   ")
	assert.ErrorIs(t, err, ErrNomeObrigatorio)

	pedido, err := svc.AbrirPedidoBalcao("João")
	assert.NoError(t, err)
	assert.Nil(t, pedido.MesaID)
	assert.Equal(t, "João", pedido.NomeCliente)

	// pedido de balcão nunca mexe em mesa
	var atualizada entity.Mesa
	db.First(&atualizada, mesa.ID)
	assert.True(t, atualizada.Disponivel)
}

func TestTotalAcompanhaItens(t *testing.T) {
	db := setupTestDB(t)
	svc := newPedidoService(db)
	pastel := criarProduto(t, db, "Pastel de Carne", "pasteis", 900)
	cafe := criarProduto(t, db, "Café", "bebidas", 500)

	pedido, err := svc.AbrirPedidoBalcao("João")
	assert.NoError(t, err)

	assert.NoError(t, svc.AdicionarItem(pedido.ID, pastel.ID, 2))
	assert.NoError(t, svc.AdicionarItem(pedido.ID, cafe.ID, 1))

	detalhe, err := svc.Detalhe(pedido.ID)
	assert.NoError(t, err)
	assert.Len(t, detalhe.Itens, 2)
	assert.Equal(t, int64(2300), detalhe.Total)

	var itemCafe entity.ItemPedido
	for _, it := range detalhe.Itens {
		if it.ProdutoID == cafe.ID {
			itemCafe = it
		}
	}
	assert.NotZero(t, itemCafe.ID)

	assert.NoError(t, svc.RemoverItem(itemCafe.ID, pedido.ID))

	detalhe, err = svc.Detalhe(pedido.ID)
	assert.NoError(t, err)
	assert.Len(t, detalhe.Itens, 1)
	assert.Equal(t, int64(1800), detalhe.Total)
}

func TestQuantidadeInvalida(t *testing.T) {
	db := setupTestDB(t)
	svc := newPedidoService(db)
	produto := criarProduto(t, db, "Café", "bebidas", 500)

	pedido, _ := svc.AbrirPedidoBalcao("João")
	assert.ErrorIs(t, svc.AdicionarItem(pedido.ID, produto.ID, 0), ErrQuantidadeInvalida)
	assert.ErrorIs(t, svc.AdicionarItem(pedido.ID, produto.ID, -2), ErrQuantidadeInvalida)
}

func TestPrecoCongeladoNoItem(t *testing.T) {
	db := setupTestDB(t)
	svc := newPedidoService(db)
	produto := criarProduto(t, db, "Hamburguer", "xis", 1600)

	pedido, _ := svc.AbrirPedidoBalcao("Maria")
	assert.NoError(t, svc.AdicionarItem(pedido.ID, produto.ID, 1))

	// sobe o preço no cardápio depois do lançamento
	db.Model(&entity.Produto{}).Where("id = ?", produto.ID).Update("vl_preco", 9900)

	detalhe, err := svc.Detalhe(pedido.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1600), detalhe.Itens[0].ValorUnitario)
	assert.Equal(t, int64(1600), detalhe.Itens[0].Subtotal)
	assert.Equal(t, int64(1600), detalhe.Total)
}

func TestProdutoInativoNaoLanca(t *testing.T) {
	db := setupTestDB(t)
	svc := newPedidoService(db)
	produto := criarProduto(t, db, "Espetinho", "diversos", 1200)
	db.Model(&entity.Produto{}).Where("id = ?", produto.ID).Update("id_ativo", false)

	pedido, _ := svc.AbrirPedidoBalcao("João")
	assert.ErrorIs(t, svc.AdicionarItem(pedido.ID, produto.ID, 1), ErrProdutoInativo)
}

func TestCancelarLiberaMesa(t *testing.T) {
	db := setupTestDB(t)
	svc := newPedidoService(db)
	mesa := criarMesa(t, db, 5)
	produto := criarProduto(t, db, "Hamburguer", "xis", 1600)

	pedido, err := svc.AbrirPedidoMesa(mesa.ID, "")
	assert.NoError(t, err)
	assert.NoError(t, svc.AdicionarItem(pedido.ID, produto.ID, 1))

	detalhe, _ := svc.Detalhe(pedido.ID)
	assert.Equal(t, int64(1600), detalhe.Total)

	var ocupada entity.Mesa
	db.First(&ocupada, mesa.ID)
	assert.False(t, ocupada.Disponivel)

	assert.NoError(t, svc.CancelarPedido(pedido.ID))

	var liberada entity.Mesa
	db.First(&liberada, mesa.ID)
	assert.True(t, liberada.Disponivel)

	detalhe, _ = svc.Detalhe(pedido.ID)
	assert.Equal(t, entity.StatusCancelado, detalhe.Status)
	assert.NotNil(t, detalhe.Fechamento)
}

func TestFecharPedido(t *testing.T) {
	db := setupTestDB(t)
	svc := newPedidoService(db)
	mesa := criarMesa(t, db, 2)
	produto := criarProduto(t, db, "Café", "bebidas", 500)

	pedido, _ := svc.AbrirPedidoMesa(mesa.ID, "Ana")
	assert.NoError(t, svc.AdicionarItem(pedido.ID, produto.ID, 2))
	assert.NoError(t, svc.FecharPedido(pedido.ID))

	detalhe, _ := svc.Detalhe(pedido.ID)
	assert.Equal(t, entity.StatusFechado, detalhe.Status)
	assert.NotNil(t, detalhe.Fechamento)
	assert.Equal(t, int64(1000), detalhe.Total)

	var liberada entity.Mesa
	db.First(&liberada, mesa.ID)
	assert.True(t, liberada.Disponivel)
}

func TestFecharSemItens(t *testing.T) {
	db := setupTestDB(t)
	svc := newPedidoService(db)

	pedido, _ := svc.AbrirPedidoBalcao("João")
	assert.ErrorIs(t, svc.FecharPedido(pedido.ID), ErrPedidoSemItens)

	// cancelar não exige itens
	assert.NoError(t, svc.CancelarPedido(pedido.ID))
}

func TestEstadoTerminalNaoTransiciona(t *testing.T) {
	db := setupTestDB(t)
	svc := newPedidoService(db)
	produto := criarProduto(t, db, "Café", "bebidas", 500)

	pedido, _ := svc.AbrirPedidoBalcao("João")
	assert.NoError(t, svc.AdicionarItem(pedido.ID, produto.ID, 1))
	assert.NoError(t, svc.FecharPedido(pedido.ID))

	assert.ErrorIs(t, svc.FecharPedido(pedido.ID), ErrTransicaoInvalida)
	assert.ErrorIs(t, svc.CancelarPedido(pedido.ID), ErrTransicaoInvalida)

	// pedido encerrado não aceita mutação de item
	assert.ErrorIs(t, svc.AdicionarItem(pedido.ID, produto.ID, 1), ErrPedidoNaoAberto)

	detalhe, _ := svc.Detalhe(pedido.ID)
	assert.ErrorIs(t, svc.RemoverItem(detalhe.Itens[0].ID, pedido.ID), ErrPedidoNaoAberto)
}

func TestListAbertos(t *testing.T) {
	db := setupTestDB(t)
	svc := newPedidoService(db)
	produto := criarProduto(t, db, "Café", "bebidas", 500)

	p1, _ := svc.AbrirPedidoBalcao("João")
	svc.AdicionarItem(p1.ID, produto.ID, 1)
	p2, _ := svc.AbrirPedidoBalcao("Maria")
	svc.AdicionarItem(p2.ID, produto.ID, 1)
	svc.FecharPedido(p2.ID)

	abertos, err := svc.ListAbertos()
	assert.NoError(t, err)
	assert.Len(t, abertos, 1)
	assert.Equal(t, p1.ID, abertos[0].ID)
	assert.Len(t, abertos[0].Itens, 1)
	assert.Equal(t, "Café", abertos[0].Itens[0].Produto.Nome)
}
