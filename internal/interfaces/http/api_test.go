package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konverse/konverse-api/internal/application/analytics"
	"github.com/konverse/konverse-api/internal/application/auth"
	"github.com/konverse/konverse-api/internal/application/usecase"
	"github.com/konverse/konverse-api/internal/domain"
	"github.com/konverse/konverse-api/internal/domain/entity"
	"github.com/konverse/konverse-api/internal/domain/repository"
	apphttp "github.com/konverse/konverse-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para el test de la API completa
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	byEmail map[string]*entity.User
}

func (m *memUserRepo) Create(u *entity.User) error {
	if _, ok := m.byEmail[u.Email]; ok {
		return domain.ErrDuplicate
	}
	m.byEmail[u.Email] = u
	return nil
}

func (m *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	return m.byEmail[email], nil
}

func (m *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

type memStoreRepo struct {
	stores map[string]*entity.Store
}

func (m *memStoreRepo) Create(s *entity.Store) error {
	for _, existing := range m.stores {
		if existing.Name == s.Name {
			return domain.ErrDuplicate
		}
	}
	m.stores[s.ID] = s
	return nil
}

func (m *memStoreRepo) GetByIDAndOwner(id, ownerID string) (*entity.Store, error) {
	s, ok := m.stores[id]
	if !ok || s.OwnerID != ownerID {
		return nil, nil
	}
	return s, nil
}

func (m *memStoreRepo) ListByOwner(ownerID string) ([]*entity.Store, error) {
	var out []*entity.Store
	for _, s := range m.stores {
		if s.OwnerID == ownerID {
			out = append(out, s)
		}
	}
	return out, nil
}

type memProductRepo struct {
	products map[string]*entity.Product
}

func (m *memProductRepo) Create(p *entity.Product) error {
	m.products[p.ID] = p
	return nil
}

func (m *memProductRepo) List(userID string, filter repository.ProductFilter) ([]*entity.ProductWithOrderCount, error) {
	var out []*entity.ProductWithOrderCount
	for _, p := range m.products {
		if p.UserID != userID {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(p.Name), needle) &&
				!strings.Contains(strings.ToLower(p.Description), needle) {
				continue
			}
		}
		if filter.Category != "" && (p.Category == nil || *p.Category != filter.Category) {
			continue
		}
		out = append(out, &entity.ProductWithOrderCount{Product: *p})
	}
	return out, nil
}

func (m *memProductRepo) DeleteOwned(id, userID string) (bool, error) {
	p, ok := m.products[id]
	if !ok || p.UserID != userID {
		return false, nil
	}
	delete(m.products, id)
	return true, nil
}

type memDashboardRepo struct {
	products *memProductRepo
	stores   *memStoreRepo
}

func (m *memDashboardRepo) CountProducts(ctx context.Context, userID string) (int, error) {
	list, _ := m.products.List(userID, repository.ProductFilter{})
	return len(list), nil
}

func (m *memDashboardRepo) ListProductStocks(ctx context.Context, userID string) ([]int, error) {
	list, _ := m.products.List(userID, repository.ProductFilter{})
	var stocks []int
	for _, p := range list {
		stocks = append(stocks, p.Stock)
	}
	return stocks, nil
}

func (m *memDashboardRepo) CountOrders(ctx context.Context, userID string) (int, error) {
	return 0, nil
}

func (m *memDashboardRepo) CountOrdersByStatus(ctx context.Context, userID, status string) (int, error) {
	return 0, nil
}

func (m *memDashboardRepo) ListStoresWithCounts(ctx context.Context, userID string) ([]entity.StoreWithCounts, error) {
	stores, _ := m.stores.ListByOwner(userID)
	var out []entity.StoreWithCounts
	for _, s := range stores {
		out = append(out, entity.StoreWithCounts{Store: *s})
	}
	return out, nil
}

func (m *memDashboardRepo) ListProductsWithOrderCounts(ctx context.Context, userID string) ([]entity.ProductWithOrderCount, error) {
	return nil, nil
}

// buildAPIApp monta la app Fiber completa (router + middleware) sobre
// repositorios en memoria. Devuelve también el repo de tiendas para sembrar datos.
func buildAPIApp() (*fiber.App, *memStoreRepo, *memProductRepo) {
	userRepo := &memUserRepo{byEmail: make(map[string]*entity.User)}
	storeRepo := &memStoreRepo{stores: make(map[string]*entity.Store)}
	productRepo := &memProductRepo{products: make(map[string]*entity.Product)}
	dashRepo := &memDashboardRepo{products: productRepo, stores: storeRepo}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(userRepo, auth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: testExpMin,
			Issuer:     testIssuer,
		}),
		StoreUC:     usecase.NewStoreUseCase(storeRepo, nil),
		ProductUC:   usecase.NewProductUseCase(productRepo, storeRepo, nil),
		DashboardUC: analytics.NewDashboardUseCase(dashRepo, nil),
		JWTSecret:   testJWTSecret,
	})
	return app, storeRepo, productRepo
}

func jsonRequest(t *testing.T, app *fiber.App, method, path, authHeader string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func seedOwnedStore(repo *memStoreRepo, id, name, ownerID string) {
	repo.stores[id] = &entity.Store{ID: id, Name: name, OwnerID: ownerID, CreatedAt: time.Now()}
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_Data_SinSesion_Retorna401(t *testing.T) {
	app, _, _ := buildAPIApp()
	resp := doRequest(t, app, "/api/data", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_Data_DevuelveTotalesDelUsuario(t *testing.T) {
	app, storeRepo, productRepo := buildAPIApp()
	seedOwnedStore(storeRepo, "s1", "Mi Tienda", testUserID)
	productRepo.products["p1"] = &entity.Product{
		ID: "p1", UserID: testUserID, StoreID: "s1", Name: "Camiseta",
		Price: decimal.NewFromInt(10), Stock: 3, CreatedAt: time.Now(),
	}
	productRepo.products["p2"] = &entity.Product{
		ID: "p2", UserID: testUserID, StoreID: "s1", Name: "Gorra",
		Price: decimal.NewFromInt(5), Stock: 10, CreatedAt: time.Now(),
	}

	resp := doRequest(t, app, "/api/data", sessionToken(t))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.EqualValues(t, 2, body["totalProducts"])
	assert.EqualValues(t, 13, body["totalUnitsInStock"])
	assert.EqualValues(t, 1, body["lowStockItems"])
	assert.EqualValues(t, 0, body["totalOrders"])
	assert.EqualValues(t, 0, body["pendingOrders"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Products
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_CrearProducto_OK(t *testing.T) {
	app, storeRepo, _ := buildAPIApp()
	seedOwnedStore(storeRepo, "s1", "Mi Tienda", testUserID)

	resp := jsonRequest(t, app, http.MethodPost, "/api/products", sessionToken(t), map[string]any{
		"name":    "Camiseta",
		"price":   19.99,
		"stock":   10,
		"storeId": "s1",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["userId"], "el producto pertenece al usuario de la sesión")
	assert.Nil(t, body["category"])
	assert.Nil(t, body["imageUrl"])
}

func TestAPI_CrearProducto_PrecioNegativo_Retorna400(t *testing.T) {
	app, storeRepo, _ := buildAPIApp()
	seedOwnedStore(storeRepo, "s1", "Mi Tienda", testUserID)

	resp := jsonRequest(t, app, http.MethodPost, "/api/products", sessionToken(t), map[string]any{
		"name":    "Camiseta",
		"price":   -1,
		"stock":   10,
		"storeId": "s1",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_CrearProducto_StockNegativo_Retorna400(t *testing.T) {
	app, storeRepo, _ := buildAPIApp()
	seedOwnedStore(storeRepo, "s1", "Mi Tienda", testUserID)

	resp := jsonRequest(t, app, http.MethodPost, "/api/products", sessionToken(t), map[string]any{
		"name":    "Camiseta",
		"price":   5,
		"stock":   -3,
		"storeId": "s1",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// La tienda existe pero es de otro usuario: 403, igual que si no existiera.
func TestAPI_CrearProducto_TiendaAjena_Retorna403(t *testing.T) {
	app, storeRepo, _ := buildAPIApp()
	seedOwnedStore(storeRepo, "s-ajena", "Otra Tienda", "otro-usuario")

	resp := jsonRequest(t, app, http.MethodPost, "/api/products", sessionToken(t), map[string]any{
		"name":    "Camiseta",
		"price":   5,
		"stock":   1,
		"storeId": "s-ajena",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAPI_EliminarProducto_SinID_Retorna400(t *testing.T) {
	app, _, _ := buildAPIApp()

	resp := jsonRequest(t, app, http.MethodDelete, "/api/products", sessionToken(t), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_EliminarProducto_OKDevuelveTextoPlano(t *testing.T) {
	app, _, productRepo := buildAPIApp()
	productRepo.products["p1"] = &entity.Product{
		ID: "p1", UserID: testUserID, StoreID: "s1", Name: "Camiseta",
		Price: decimal.NewFromInt(10), Stock: 1, CreatedAt: time.Now(),
	}

	resp := jsonRequest(t, app, http.MethodDelete, "/api/products?id=p1", sessionToken(t), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "eliminado")

	// segundo intento: el producto ya no existe → 403
	resp2 := jsonRequest(t, app, http.MethodDelete, "/api/products?id=p1", sessionToken(t), nil)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp2.StatusCode)
}

func TestAPI_ListarProductos_FiltraPorDescripcion(t *testing.T) {
	app, _, productRepo := buildAPIApp()
	productRepo.products["p1"] = &entity.Product{
		ID: "p1", UserID: testUserID, StoreID: "s1", Name: "Camiseta",
		Description: "tela de algodón", Price: decimal.NewFromInt(10), Stock: 1, CreatedAt: time.Now(),
	}
	productRepo.products["p2"] = &entity.Product{
		ID: "p2", UserID: testUserID, StoreID: "s1", Name: "Gorra",
		Description: "poliéster", Price: decimal.NewFromInt(5), Stock: 1, CreatedAt: time.Now(),
	}

	resp := doRequest(t, app, "/api/products?search=algod%C3%B3n", sessionToken(t))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1, "el término solo aparece en la descripción y aun así matchea")
	assert.Equal(t, "p1", body[0]["id"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Stores
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_CrearTienda_OK(t *testing.T) {
	app, _, _ := buildAPIApp()

	resp := jsonRequest(t, app, http.MethodPost, "/api/stores", sessionToken(t), map[string]any{
		"name": "Mi Tienda",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestAPI_CrearTienda_NombreVacio_Retorna400(t *testing.T) {
	app, _, _ := buildAPIApp()

	resp := jsonRequest(t, app, http.MethodPost, "/api/stores", sessionToken(t), map[string]any{
		"name": "   ",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_CrearTienda_Duplicada_Retorna409(t *testing.T) {
	app, _, _ := buildAPIApp()

	resp := jsonRequest(t, app, http.MethodPost, "/api/stores", sessionToken(t), map[string]any{"name": "Única"})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp2 := jsonRequest(t, app, http.MethodPost, "/api/stores", sessionToken(t), map[string]any{"name": "Única"})
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusConflict, resp2.StatusCode)
}

// La ruta con userId exige que el parámetro coincida con la sesión.
func TestAPI_TiendasPorUsuario_UserIDAjeno_Retorna401(t *testing.T) {
	app, storeRepo, _ := buildAPIApp()
	seedOwnedStore(storeRepo, "s1", "Mi Tienda", testUserID)

	resp := doRequest(t, app, "/api/user/otro-usuario/stores", sessionToken(t))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp2 := doRequest(t, app, "/api/user/"+testUserID+"/stores", sessionToken(t))
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)

	var body []map[string]any
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "s1", body[0]["id"])
	assert.Equal(t, "Mi Tienda", body[0]["name"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth end-to-end: register + login + uso del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_RegisterYLogin(t *testing.T) {
	app, _, _ := buildAPIApp()

	resp := jsonRequest(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    "ana@example.com",
		"password": "secreto-largo",
		"name":     "Ana",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// email duplicado → 409
	resp2 := jsonRequest(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    "ana@example.com",
		"password": "otro-secreto",
	})
	resp2.Body.Close()
	assert.Equal(t, http.StatusConflict, resp2.StatusCode)

	// login correcto devuelve un token utilizable
	resp3 := jsonRequest(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "ana@example.com",
		"password": "secreto-largo",
	})
	defer resp3.Body.Close()
	require.Equal(t, http.StatusOK, resp3.StatusCode)

	var login map[string]any
	require.NoError(t, json.NewDecoder(resp3.Body).Decode(&login))
	token, _ := login["token"].(string)
	require.NotEmpty(t, token)

	resp4 := doRequest(t, app, "/api/stores", "Bearer "+token)
	defer resp4.Body.Close()
	assert.Equal(t, http.StatusOK, resp4.StatusCode)
}

func TestAPI_Login_PasswordIncorrecto_Retorna401(t *testing.T) {
	app, _, _ := buildAPIApp()

	resp := jsonRequest(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    "ana@example.com",
		"password": "secreto-largo",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp2 := jsonRequest(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "ana@example.com",
		"password": "equivocado",
	})
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode)
}

func TestAPI_RegisterYLogin_PasswordCorto_Retorna400(t *testing.T) {
	app, _, _ := buildAPIApp()

	resp := jsonRequest(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    "ana@example.com",
		"password": "corto",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
