package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedrorafaeloficial/mestredoatacado/internal/models"
)

const minPedido = 500.00

func produto(id, sku, prefixID string, price float64, minQty int) models.Product {
	return models.Product{
		ID:          id,
		SKU:         sku,
		SkuPrefixID: prefixID,
		Name:        "Produto " + id,
		Price:       price,
		Images:      []string{"https://example.com/" + id + ".jpg"},
		MinQuantity: minQty,
	}
}

func linha(id, sku, prefixID string, price float64, qty, minQty int) models.CartItem {
	return models.CartItem{Product: produto(id, sku, prefixID, price, minQty), Quantity: qty}
}

func TestAddAcumulaMesmaLinha(t *testing.T) {
	p := produto("1", "A-1", "", 10, 1)

	items := Add(nil, p, 2, map[string]string{"Cor": "Preto", "Tamanho": "M"})
	items = Add(items, p, 3, map[string]string{"Tamanho": "M", "Cor": "Preto"})

	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddVariacoesDiferentesCriamOutraLinha(t *testing.T) {
	p := produto("1", "A-1", "", 10, 1)

	items := Add(nil, p, 1, map[string]string{"Cor": "Preto"})
	items = Add(items, p, 1, map[string]string{"Cor": "Branco"})
	items = Add(items, p, 1, nil)

	assert.Len(t, items, 3)
}

func TestAddNaoMutaSnapshotAnterior(t *testing.T) {
	p := produto("1", "A-1", "", 10, 1)

	before := Add(nil, p, 2, nil)
	after := Add(before, p, 3, nil)

	assert.Equal(t, 2, before[0].Quantity)
	assert.Equal(t, 5, after[0].Quantity)
}

func TestUpdateQuantityZeroRemoveALinha(t *testing.T) {
	p := produto("1", "A-1", "", 10, 1)
	items := Add(nil, p, 2, nil)

	items = UpdateQuantity(items, "1", 0, nil)
	assert.Empty(t, items)
}

func TestRemoveSoTiraALinhaCerta(t *testing.T) {
	items := Add(nil, produto("1", "A-1", "", 10, 1), 1, map[string]string{"Cor": "Preto"})
	items = Add(items, produto("1", "A-1", "", 10, 1), 1, map[string]string{"Cor": "Branco"})

	items = Remove(items, "1", map[string]string{"Cor": "Preto"})

	require.Len(t, items, 1)
	assert.Equal(t, "Branco", items[0].SelectedVariations["Cor"])
}

func TestSubtotalComutativoELinear(t *testing.T) {
	a := linha("1", "A-1", "", 29.90, 10, 1)
	b := linha("2", "B-1", "", 45.00, 5, 1)
	c := linha("3", "C-1", "", 120.00, 3, 1)

	direto := Subtotal([]models.CartItem{a, b, c})
	invertido := Subtotal([]models.CartItem{c, b, a})
	assert.InDelta(t, direto, invertido, 0.001)

	dobrado := []models.CartItem{a, b, c}
	for i := range dobrado {
		dobrado[i].Quantity *= 2
	}
	assert.InDelta(t, direto*2, Subtotal(dobrado), 0.001)
}

func TestSummarizeAbaixoDoMinimoGlobal(t *testing.T) {
	items := []models.CartItem{linha("1", "A-1", "", 100, 3, 1)}

	s := Summarize(items, nil, minPedido)

	assert.False(t, s.Valid)
	require.Len(t, s.Violations, 1)
	assert.Contains(t, s.Violations[0], "valor mínimo")
	assert.Contains(t, s.Violations[0], "R$ 200.00")
}

func TestSummarizeCenarioFornecedorIncompleto(t *testing.T) {
	// subtotal bate os 500, mas o grupo do fornecedor soma 5 de 6
	items := []models.CartItem{linha("1", "A-1", "p1", 100, 5, 1)}
	prefixes := []models.SkuPrefix{{ID: "p1", Name: "Alfa", Prefix: "A", MinQuantity: 6}}

	s := Summarize(items, prefixes, minPedido)

	assert.InDelta(t, 500.0, s.Subtotal, 0.001)
	assert.False(t, s.Valid)
	require.Len(t, s.Violations, 1)
	assert.Contains(t, s.Violations[0], "Alfa")
	assert.Contains(t, s.Violations[0], "Faltam 1")
}

func TestSummarizeCenarioValidoSemPrefixos(t *testing.T) {
	items := []models.CartItem{
		linha("1", "B-1", "", 250, 1, 1),
		linha("2", "B-2", "", 260, 1, 1),
	}

	s := Summarize(items, nil, minPedido)

	assert.InDelta(t, 510.0, s.Subtotal, 0.001)
	assert.True(t, s.Valid)
	assert.Empty(t, s.Violations)
	assert.True(t, s.CanCheckout())
}

func TestSummarizeCarrinhoVazio(t *testing.T) {
	s := Summarize(nil, nil, minPedido)

	assert.Zero(t, s.Subtotal)
	assert.Empty(t, s.Groups)
	assert.Empty(t, s.Violations)
	assert.True(t, s.Empty)
	// vazio não é "inválido": só não tem checkout
	assert.False(t, s.CanCheckout())
}

func TestSummarizeMinimoPorProduto(t *testing.T) {
	items := []models.CartItem{
		linha("1", "A-1", "", 300, 2, 10),
		linha("2", "B-1", "", 300, 1, 1),
	}

	s := Summarize(items, nil, minPedido)

	assert.False(t, s.Valid)
	require.Len(t, s.Violations, 1)
	assert.Contains(t, s.Violations[0], "Produto 1")
	assert.Contains(t, s.Violations[0], "no mínimo 10")
}

func TestSummarizeAgrupamentoPorPrefixo(t *testing.T) {
	items := []models.CartItem{
		linha("1", "A-1", "p1", 100, 3, 1),
		linha("2", "A-2", "p1", 100, 4, 1),
		linha("3", "Z-1", "", 100, 2, 1),
	}
	prefixes := []models.SkuPrefix{{ID: "p1", Name: "Alfa", Prefix: "A", MinQuantity: 6}}

	s := Summarize(items, prefixes, minPedido)

	require.Len(t, s.Groups, 2)

	alfa := s.Groups["p1"]
	require.NotNil(t, alfa.Prefix)
	assert.Equal(t, 7, alfa.Quantity)
	assert.Len(t, alfa.Items, 2)

	avulsos := s.Groups[NoPrefixKey]
	assert.Nil(t, avulsos.Prefix)
	assert.Equal(t, 2, avulsos.Quantity)

	assert.True(t, s.Valid)
}

func TestSummarizePrefixoDesconhecidoFicaIsento(t *testing.T) {
	// o prefixo foi apagado no admin mas o produto ainda aponta para ele
	items := []models.CartItem{linha("1", "A-1", "fantasma", 600, 1, 1)}

	s := Summarize(items, []models.SkuPrefix{{ID: "p1", Name: "Alfa", Prefix: "A", MinQuantity: 6}}, minPedido)

	g, ok := s.Groups["fantasma"]
	require.True(t, ok)
	assert.Nil(t, g.Prefix)
	assert.True(t, s.Valid)
}

func TestSummarizeViolacoesEmOrdemEstavel(t *testing.T) {
	items := []models.CartItem{
		linha("1", "A-1", "p1", 10, 1, 5),
		linha("2", "B-1", "p2", 10, 1, 1),
	}
	prefixes := []models.SkuPrefix{
		{ID: "p1", Name: "Alfa", Prefix: "A", MinQuantity: 6},
		{ID: "p2", Name: "Beta", Prefix: "B", MinQuantity: 6},
	}

	s := Summarize(items, prefixes, minPedido)

	// global primeiro, depois fornecedores em ordem de chave, depois linhas
	require.Len(t, s.Violations, 4)
	assert.Contains(t, s.Violations[0], "valor mínimo")
	assert.Contains(t, s.Violations[1], "Alfa")
	assert.Contains(t, s.Violations[2], "Beta")
	assert.Contains(t, s.Violations[3], "Produto 1")
}

func TestVariationsEqualIndependeDeOrdemENil(t *testing.T) {
	assert.True(t, models.VariationsEqual(nil, nil))
	assert.True(t, models.VariationsEqual(map[string]string{}, nil))
	assert.True(t, models.VariationsEqual(
		map[string]string{"a": "1", "b": "2"},
		map[string]string{"b": "2", "a": "1"},
	))
	assert.False(t, models.VariationsEqual(
		map[string]string{"a": "1"},
		map[string]string{"a": "2"},
	))
	assert.False(t, models.VariationsEqual(
		map[string]string{"a": "1"},
		map[string]string{"a": "1", "b": "2"},
	))
}
