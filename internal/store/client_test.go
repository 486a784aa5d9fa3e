package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedrorafaeloficial/mestredoatacado/internal/models"
)

func apiFixture(t *testing.T, products []models.Product, prefixes []models.SkuPrefix) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(products)
	})
	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Category{{ID: "1", Name: "Moda", Slug: "moda"}})
	})
	mux.HandleFunc("/api/sku-prefixes", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(prefixes)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func produto(id, sku, prefixID string, price float64) models.Product {
	return models.Product{
		ID:          id,
		SKU:         sku,
		SkuPrefixID: prefixID,
		Name:        "Produto " + id,
		Price:       price,
		Images:      []string{"https://example.com/" + id + ".jpg"},
		MinQuantity: 1,
	}
}

func TestLoadPreencheOsSnapshots(t *testing.T) {
	srv := apiFixture(t,
		[]models.Product{produto("1", "A-1", "p1", 100)},
		[]models.SkuPrefix{{ID: "p1", Name: "Alfa", Prefix: "A", MinQuantity: 6}})

	c := New(srv.URL, "5511977957131", 500)
	require.NoError(t, c.Load(context.Background()))

	assert.Len(t, c.Products(), 1)
	assert.Len(t, c.Categories(), 1)
	assert.Len(t, c.SkuPrefixes(), 1)
}

func TestLoadRejeitaProdutoSemImagem(t *testing.T) {
	quebrado := produto("1", "A-1", "", 100)
	quebrado.Images = nil
	srv := apiFixture(t, []models.Product{quebrado}, nil)

	c := New(srv.URL, "5511977957131", 500)
	err := c.Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sem imagem")
	// snapshot anterior (vazio) fica valendo
	assert.Empty(t, c.Products())
}

func TestLoadRejeitaContentTypeErrado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>erro</html>"))
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, "5511977957131", 500)
	err := c.Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "content-type")
}

func TestLoadRejeitaStatusNao2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "fora do ar", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, "5511977957131", 500)
	err := c.Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestCarrinhoAcumulaEValida(t *testing.T) {
	srv := apiFixture(t,
		[]models.Product{produto("1", "A-1", "p1", 100)},
		[]models.SkuPrefix{{ID: "p1", Name: "Alfa", Prefix: "A", MinQuantity: 6}})

	c := New(srv.URL, "5511977957131", 500)
	require.NoError(t, c.Load(context.Background()))

	require.NoError(t, c.AddToCart("1", 3, nil))
	require.NoError(t, c.AddToCart("1", 2, nil))

	itens := c.Cart()
	require.Len(t, itens, 1)
	assert.Equal(t, 5, itens[0].Quantity)

	// 5 de 6 unidades do fornecedor: checkout bloqueado
	s := c.Summary()
	assert.False(t, s.CanCheckout())
	require.Len(t, s.Violations, 1)
	assert.Contains(t, s.Violations[0], "Alfa")

	_, _, err := c.Checkout()
	assert.ErrorIs(t, err, ErrCheckoutUnavailable)

	// completando o mínimo o checkout libera
	require.NoError(t, c.AddToCart("1", 1, nil))
	msg, link, err := c.Checkout()
	require.NoError(t, err)
	assert.Contains(t, msg, "[A-1] 6x")
	assert.Contains(t, link, "https://wa.me/5511977957131?text=")
}

func TestCheckoutCarrinhoVazioEhNoOp(t *testing.T) {
	srv := apiFixture(t, nil, nil)

	c := New(srv.URL, "5511977957131", 500)
	require.NoError(t, c.Load(context.Background()))

	_, _, err := c.Checkout()
	assert.ErrorIs(t, err, ErrCheckoutUnavailable)
}

func TestAddToCartProdutoForaDoCatalogo(t *testing.T) {
	srv := apiFixture(t, nil, nil)

	c := New(srv.URL, "5511977957131", 500)
	require.NoError(t, c.Load(context.Background()))

	err := c.AddToCart("fantasma", 1, nil)
	require.Error(t, err)
}

func TestUpdateCartQuantityZeroRemove(t *testing.T) {
	srv := apiFixture(t, []models.Product{produto("1", "A-1", "", 100)}, nil)

	c := New(srv.URL, "5511977957131", 500)
	require.NoError(t, c.Load(context.Background()))
	require.NoError(t, c.AddToCart("1", 2, nil))

	c.UpdateCartQuantity("1", 0, nil)
	assert.Empty(t, c.Cart())
}
