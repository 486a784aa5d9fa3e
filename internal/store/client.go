// Package store é o cliente da API REST: carrega os snapshots de
// produtos, categorias e prefixos, guarda o estado do carrinho e entrega
// dados já validados para o catálogo, o agregador e o checkout.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/pedrorafaeloficial/mestredoatacado/internal/cart"
	"github.com/pedrorafaeloficial/mestredoatacado/internal/checkout"
	"github.com/pedrorafaeloficial/mestredoatacado/internal/models"
)

// ErrCheckoutUnavailable sinaliza checkout com carrinho vazio ou com
// violações pendentes — a ação vira no-op.
var ErrCheckoutUnavailable = errors.New("checkout indisponível: carrinho vazio ou pedido fora dos mínimos")

type Client struct {
	baseURL       string
	httpClient    *http.Client
	whatsAppPhone string
	minOrderValue float64

	mu         sync.Mutex
	token      string
	products   []models.Product
	categories []models.Category
	prefixes   []models.SkuPrefix
	items      []models.CartItem
}

// New cria o cliente. phone e minOrderValue normalmente vêm do config.
func New(baseURL, phone string, minOrderValue float64) *Client {
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		httpClient:    &http.Client{Timeout: 15 * time.Second},
		whatsAppPhone: phone,
		minOrderValue: minOrderValue,
	}
}

// --- Carga dos snapshots ---

// Load busca produtos, categorias e prefixos. Qualquer payload fora do
// formato é rejeitado inteiro: o snapshot anterior fica valendo e o core
// nunca vê dado quebrado.
func (c *Client) Load(ctx context.Context) error {
	var products []models.Product
	if err := c.getJSON(ctx, "/api/products", &products); err != nil {
		return fmt.Errorf("produtos: %w", err)
	}
	for i := range products {
		if err := validateProduct(&products[i]); err != nil {
			return fmt.Errorf("produto %q rejeitado: %w", products[i].ID, err)
		}
	}

	var categories []models.Category
	if err := c.getJSON(ctx, "/api/categories", &categories); err != nil {
		return fmt.Errorf("categorias: %w", err)
	}

	var prefixes []models.SkuPrefix
	if err := c.getJSON(ctx, "/api/sku-prefixes", &prefixes); err != nil {
		return fmt.Errorf("prefixos: %w", err)
	}
	for i := range prefixes {
		if prefixes[i].MinQuantity < 1 {
			prefixes[i].MinQuantity = 1
		}
	}

	c.mu.Lock()
	c.products = products
	c.categories = categories
	c.prefixes = prefixes
	c.mu.Unlock()
	return nil
}

func validateProduct(p *models.Product) error {
	if p.ID == "" {
		return errors.New("id vazio")
	}
	if p.Name == "" {
		return errors.New("nome vazio")
	}
	if len(p.Images) == 0 {
		return errors.New("produto sem imagem")
	}
	if p.Price < 0 {
		return errors.New("preço negativo")
	}
	if p.Stock < 0 {
		return errors.New("estoque negativo")
	}
	if p.MinQuantity < 1 {
		p.MinQuantity = 1
	}
	return nil
}

func (c *Client) Products() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Client) Categories() []models.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *Client) SkuPrefixes() []models.SkuPrefix {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.SkuPrefix, len(c.prefixes))
	copy(out, c.prefixes)
	return out
}

// --- Carrinho ---

// AddToCart acrescenta um produto do snapshot atual ao carrinho.
func (c *Client) AddToCart(productID string, quantity int, variations map[string]string) error {
	if quantity <= 0 {
		return errors.New("quantidade deve ser positiva")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range c.products {
		if p.ID == productID {
			c.items = cart.Add(c.items, p, quantity, variations)
			return nil
		}
	}
	return fmt.Errorf("produto %q não está no catálogo", productID)
}

func (c *Client) RemoveFromCart(productID string, variations map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = cart.Remove(c.items, productID, variations)
}

func (c *Client) UpdateCartQuantity(productID string, quantity int, variations map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = cart.UpdateQuantity(c.items, productID, quantity, variations)
}

func (c *Client) ClearCart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

func (c *Client) Cart() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Summary recalcula o agregado do carrinho com os prefixos atuais.
func (c *Client) Summary() cart.Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cart.Summarize(c.items, c.prefixes, c.minOrderValue)
}

// Checkout monta a mensagem e o link do WhatsApp. Só funciona atrás do
// veredito do agregador; fora dele é no-op com erro.
func (c *Client) Checkout() (message, link string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	summary := cart.Summarize(c.items, c.prefixes, c.minOrderValue)
	if !summary.CanCheckout() {
		return "", "", ErrCheckoutUnavailable
	}

	message = checkout.BuildMessage(c.items, summary.Subtotal)
	link = checkout.WhatsAppLink(c.whatsAppPhone, message)
	return message, link, nil
}

// --- Admin ---

// Login troca a senha compartilhada pelo token das mutações.
func (c *Client) Login(ctx context.Context, password string) error {
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/admin/login",
		map[string]string{"password": password}, &resp); err != nil {
		return err
	}

	c.mu.Lock()
	c.token = resp.Token
	c.mu.Unlock()
	return nil
}

func (c *Client) CreateProduct(ctx context.Context, p models.Product) error {
	if err := c.doJSON(ctx, http.MethodPost, "/api/products", p, nil); err != nil {
		return err
	}
	return c.Load(ctx)
}

func (c *Client) UpdateProduct(ctx context.Context, p models.Product) error {
	if err := c.doJSON(ctx, http.MethodPut, "/api/products/"+p.ID, p, nil); err != nil {
		return err
	}
	return c.Load(ctx)
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/products/"+id, nil, nil); err != nil {
		return err
	}
	return c.Load(ctx)
}

func (c *Client) CreateCategory(ctx context.Context, cat models.Category) error {
	if err := c.doJSON(ctx, http.MethodPost, "/api/categories", cat, nil); err != nil {
		return err
	}
	return c.Load(ctx)
}

func (c *Client) UpdateCategory(ctx context.Context, cat models.Category) error {
	if err := c.doJSON(ctx, http.MethodPut, "/api/categories/"+cat.ID, cat, nil); err != nil {
		return err
	}
	return c.Load(ctx)
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/categories/"+id, nil, nil); err != nil {
		return err
	}
	return c.Load(ctx)
}

func (c *Client) CreateSkuPrefix(ctx context.Context, p models.SkuPrefix) error {
	if err := c.doJSON(ctx, http.MethodPost, "/api/sku-prefixes", p, nil); err != nil {
		return err
	}
	return c.Load(ctx)
}

func (c *Client) UpdateSkuPrefix(ctx context.Context, p models.SkuPrefix) error {
	if err := c.doJSON(ctx, http.MethodPut, "/api/sku-prefixes/"+p.ID, p, nil); err != nil {
		return err
	}
	return c.Load(ctx)
}

func (c *Client) DeleteSkuPrefix(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/sku-prefixes/"+id, nil, nil); err != nil {
		return err
	}
	return c.Load(ctx)
}

// --- HTTP ---

func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, dest)
}

// doJSON aplica a fronteira "parse ou rejeita": status fora de 2xx ou
// corpo que não é JSON nunca chega aos consumidores.
func (c *Client) doJSON(ctx context.Context, method, path string, body, dest any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(data)))
	}
	if dest == nil {
		return nil
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		return fmt.Errorf("%s %s: content-type inesperado %q", method, path, mediaType)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}
