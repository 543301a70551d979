package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Bruno-Signori/v0-site-estacionamento/configs"
	"github.com/Bruno-Signori/v0-site-estacionamento/entity"
	"github.com/Bruno-Signori/v0-site-estacionamento/routes"
)

func setupAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("falha ao abrir banco de teste: %v", err)
	}
	err = db.AutoMigrate(
		&entity.Usuario{},
		&entity.Mesa{},
		&entity.Produto{},
		&entity.Pedido{},
		&entity.ItemPedido{},
	)
	if err != nil {
		t.Fatalf("falha no automigrate: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("falha no bcrypt: %v", err)
	}
	usuario := entity.Usuario{Email: "caixa@fittipaldi.com", Senha: string(hash), Nome: "Caixa", Role: "operador"}
	if err := db.Create(&usuario).Error; err != nil {
		t.Fatalf("falha ao criar usuário: %v", err)
	}

	cfg := &configs.Config{
		JWTSecret:      "test-secret",
		JWTTTL:         time.Hour,
		WhatsAppNumero: "555499710222",
	}

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg)
	return r, db
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("resposta não é JSON: %v (%s)", err, w.Body.String())
	}
	return out
}

func login(t *testing.T, r *gin.Engine) string {
	w := doJSON(r, http.MethodPost, "/auth/login", "", gin.H{
		"email": "caixa@fittipaldi.com", "senha": "senha123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login falhou: %d %s", w.Code, w.Body.String())
	}
	return decode(t, w)["token"].(string)
}

func TestLogin(t *testing.T) {
	r, _ := setupAPI(t)

	w := doJSON(r, http.MethodPost, "/auth/login", "", gin.H{
		"email": "caixa@fittipaldi.com", "senha": "senha123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "caixa@fittipaldi.com", user["email"])

	// senha errada e email inexistente respondem igual
	w = doJSON(r, http.MethodPost, "/auth/login", "", gin.H{
		"email": "caixa@fittipaldi.com", "senha": "errada",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid credentials", decode(t, w)["error"])

	w = doJSON(r, http.MethodPost, "/auth/login", "", gin.H{
		"email": "ninguem@fittipaldi.com", "senha": "senha123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid credentials", decode(t, w)["error"])
}

func TestRotasProtegidasExigemToken(t *testing.T) {
	r, _ := setupAPI(t)

	for _, path := range []string{"/sistema/mesas", "/sistema/pedidos", "/sistema/relatorio", "/auth/me"} {
		w := doJSON(r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := doJSON(r, http.MethodGet, "/sistema/mesas", "token-qualquer", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMe(t *testing.T) {
	r, _ := setupAPI(t)
	token := login(t, r)

	w := doJSON(r, http.MethodGet, "/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "caixa@fittipaldi.com", data["email"])
}

func TestFluxoDePedidoHTTP(t *testing.T) {
	r, db := setupAPI(t)
	token := login(t, r)

	mesa := entity.Mesa{Numero: 3, Disponivel: true}
	assert.NoError(t, db.Create(&mesa).Error)
	xis := entity.Produto{Nome: "Hamburguer", Categoria: "xis", Preco: 1600, Ativo: true}
	assert.NoError(t, db.Create(&xis).Error)
	cafe := entity.Produto{Nome: "Café", Categoria: "bebidas", Preco: 500, Ativo: true}
	assert.NoError(t, db.Create(&cafe).Error)

	// abre pedido na mesa com um item
	w := doJSON(r, http.MethodPost, "/sistema/pedidos", token, gin.H{
		"mesaId":      mesa.ID,
		"nomeCliente": "Maria",
		"itens":       []gin.H{{"produtoId": xis.ID, "quantidade": 1}},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	pedido := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "aberto", pedido["status"])
	assert.Equal(t, float64(1600), pedido["total"])
	pedidoID := uint(pedido["ID"].(float64))

	// a mesma mesa não abre dois pedidos
	w = doJSON(r, http.MethodPost, "/sistema/pedidos", token, gin.H{
		"mesaId":      mesa.ID,
		"nomeCliente": "José",
		"itens":       []gin.H{{"produtoId": cafe.ID, "quantidade": 1}},
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// lança mais um item
	w = doJSON(r, http.MethodPost, fmt.Sprintf("/sistema/pedidos/%d/itens", pedidoID), token, gin.H{
		"produtoId": cafe.ID, "quantidade": 2,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	pedido = decode(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(2600), pedido["total"])
	itens := pedido["itens"].([]any)
	assert.Len(t, itens, 2)

	// remove o item do café e o total volta
	var itemCafeID uint
	for _, it := range itens {
		item := it.(map[string]any)
		if uint(item["produtoId"].(float64)) == cafe.ID {
			itemCafeID = uint(item["id"].(float64))
		}
	}
	assert.NotZero(t, itemCafeID)
	w = doJSON(r, http.MethodDelete,
		fmt.Sprintf("/sistema/pedidos/%d/itens/%d", pedidoID, itemCafeID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	pedido = decode(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(1600), pedido["total"])

	// fecha e a mesa libera
	w = doJSON(r, http.MethodPost, fmt.Sprintf("/sistema/pedidos/%d/fechar", pedidoID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var mesaDepois entity.Mesa
	assert.NoError(t, db.First(&mesaDepois, mesa.ID).Error)
	assert.True(t, mesaDepois.Disponivel)

	// fechar de novo é transição inválida
	w = doJSON(r, http.MethodPost, fmt.Sprintf("/sistema/pedidos/%d/fechar", pedidoID), token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// a lista de abertos fica vazia
	w = doJSON(r, http.MethodGet, "/sistema/pedidos", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["data"])
}

func TestPedidoInexistente(t *testing.T) {
	r, _ := setupAPI(t)
	token := login(t, r)

	w := doJSON(r, http.MethodGet, "/sistema/pedidos/999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCardapioPublico(t *testing.T) {
	r, _ := setupAPI(t)

	// catálogo não pede token
	w := doJSON(r, http.MethodGet, "/cardapio", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	categorias := decode(t, w)["data"].([]any)
	assert.NotEmpty(t, categorias)

	w = doJSON(r, http.MethodPost, "/cardapio/pedido", "", gin.H{
		"quantidades": gin.H{"h1": 1},
		"observacoes": "sem cebola",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	assert.Contains(t, data["url"], "https://wa.me/555499710222?text=")
	assert.Contains(t, data["mensagem"], "Hamburguer")
	assert.Equal(t, float64(1600), data["total"])

	w = doJSON(r, http.MethodPost, "/cardapio/pedido", "", gin.H{
		"quantidades": gin.H{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
