package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Inventario-hospitalario/internal/application/dto"
	"github.com/jhoicas/Inventario-hospitalario/internal/application/inventory"
	"github.com/jhoicas/Inventario-hospitalario/internal/application/session"
	"github.com/jhoicas/Inventario-hospitalario/internal/domain"
	"github.com/jhoicas/Inventario-hospitalario/internal/domain/entity"
	"github.com/jhoicas/Inventario-hospitalario/internal/infrastructure/report"
	apphttp "github.com/jhoicas/Inventario-hospitalario/internal/interfaces/http"
	"github.com/jhoicas/Inventario-hospitalario/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testPassword  = "correct-horse"
)

// fakeUserRepo repositorio de usuarios en memoria.
type fakeUserRepo struct {
	users map[int64]*entity.User
}

func (r *fakeUserRepo) Create(user *entity.User) error { r.users[user.ID] = user; return nil }

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) { return r.users[id], nil }

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

// fakeProvider proveedor de inventario en memoria, por hospital.
type fakeProvider struct {
	data map[int64][]entity.InventoryItem
}

func (p *fakeProvider) ListByHospital(_ context.Context, hospitalID int64) ([]entity.InventoryItem, error) {
	items, ok := p.data[hospitalID]
	if !ok || len(items) == 0 {
		return nil, domain.ErrNoInventory
	}
	out := make([]entity.InventoryItem, len(items))
	copy(out, items)
	return out, nil
}

func (p *fakeProvider) ReplaceForHospital(_ context.Context, hospitalID int64, items []entity.InventoryItem) error {
	p.data[hospitalID] = items
	return nil
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func testUsers(t *testing.T) map[int64]*entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	alice := &entity.User{
		ID: 1, Name: "Alice", Email: "alice@hospital-a.test", PasswordHash: string(hash),
		Hospital: entity.Hospital{
			ID: 1, Name: "Test Hospital",
			Config: entity.HospitalConfig{
				InventoryHeaders: entity.HeadersConfig{
					Fields:      []string{"productName", "expiryDate", "unitPrice", "quantity"},
					DefaultSort: entity.SortSpec{Key: "unitPrice", Order: entity.SortDesc},
				},
			},
		},
	}
	bob := &entity.User{
		ID: 2, Name: "Bob", Email: "bob@hospital-b.test", PasswordHash: string(hash),
		Hospital: entity.Hospital{ID: 2, Name: "Empty Hospital"},
	}
	return map[int64]*entity.User{1: alice, 2: bob}
}

func testItems() []entity.InventoryItem {
	return []entity.InventoryItem{
		{ID: 1, ProductName: "Test Syringe", Manufacturer: "TestMed", Category: "Consumables",
			Quantity: 3500, ExpiryDate: "2026-12-31", UnitPrice: price("1.5")},
		{ID: 2, ProductName: "Test MRI", Manufacturer: "TestMed", Category: "Diagnostics",
			Quantity: 3, ExpiryDate: "2035-09-14", UnitPrice: price("5000")},
	}
}

// buildTestApp levanta la API completa contra repos en memoria y devuelve la
// app junto con el proveedor, para poder alterar los datos entre peticiones.
func buildTestApp(t *testing.T) (*fiber.App, *fakeProvider) {
	t.Helper()

	users := &fakeUserRepo{users: testUsers(t)}
	provider := &fakeProvider{data: map[int64][]entity.InventoryItem{1: testItems()}}

	sessionUC := session.NewUseCase(users, session.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: 60, Issuer: "inventario-test",
	})
	manager := inventory.NewManager(provider, logger.Nop())
	inventoryUC := inventory.NewUseCase(manager, map[string]inventory.ReportGenerator{
		"pdf":  report.NewMarotoPDFGenerator(),
		"xlsx": report.NewExcelGenerator(),
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		SessionUC:   sessionUC,
		InventoryUC: inventoryUC,
		JWTSecret:   testJWTSecret,
	})
	return app, provider
}

// loginToken hace login y devuelve el header Authorization listo para usar.
func loginToken(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: email, Password: testPassword}, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return "Bearer " + out.Token
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, auth string) *http.Response {
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
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeTable(t *testing.T, resp *http.Response) dto.TableResponse {
	t.Helper()
	var table dto.TableResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&table))
	return table
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: "alice@hospital-a.test", Password: testPassword}, "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "Test Hospital", out.User.Hospital.Name)
	assert.Equal(t, "unitPrice", out.User.Hospital.InventoryHeaders.DefaultSort.Key,
		"la configuración del hospital viaja resuelta en el login")
}

func TestLogin_PasswordIncorrecto_Retorna401(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: "alice@hospital-a.test", Password: "nope"}, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "UNAUTHORIZED")
}

func TestLogin_EmailDesconocido_Retorna401(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: "nadie@ninguna.parte", Password: testPassword}, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMe_DevuelveUsuarioConConfigResuelta(t *testing.T) {
	app, _ := buildTestApp(t)
	auth := loginToken(t, app, "bob@hospital-b.test")

	resp := doJSON(t, app, http.MethodGet, "/api/me", nil, auth)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.UserResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Bob", out.Name)
	// El hospital de Bob no tiene configuración: se resuelve el default.
	assert.Equal(t, session.DefaultHeadersConfig(), out.Hospital.InventoryHeaders)
}

func TestInventario_SinToken_Retorna401(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/inventory/", nil, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la tabla
// ──────────────────────────────────────────────────────────────────────────────

func TestTabla_ProyeccionOrdenYFormato(t *testing.T) {
	app, _ := buildTestApp(t)
	auth := loginToken(t, app, "alice@hospital-a.test")

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/", nil, auth)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	table := decodeTable(t, resp)

	titles := make([]string, len(table.Headers))
	for i, h := range table.Headers {
		titles[i] = h.Title
	}
	assert.Equal(t, []string{"Product Name", "Expiry Date", "Unit Price", "Quantity"}, titles,
		"las cabeceras siguen el orden de la configuración del tenant")

	require.Len(t, table.Items, 2)
	assert.Equal(t, "unitPrice", table.Sort.Key)
	assert.Equal(t, entity.SortDesc, table.Sort.Order)
	assert.Equal(t, "Test MRI", table.Items[0].ProductName, "ordenado por precio descendente")
	assert.Equal(t, "£5,000.00", table.Items[0].Display.UnitPrice)
	assert.Equal(t, "3,500", table.Items[1].Display.Quantity)
	assert.Equal(t, "14/09/2035", table.Items[0].Display.ExpiryDate)
}

func TestTabla_HospitalSinInventario_Retorna404(t *testing.T) {
	app, _ := buildTestApp(t)
	auth := loginToken(t, app, "bob@hospital-b.test")

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/", nil, auth)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NO_INVENTORY")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del CRUD sobre la copia de trabajo
// ──────────────────────────────────────────────────────────────────────────────

func TestAgregarItem_AsignaIDYAparaceEnLaTabla(t *testing.T) {
	app, _ := buildTestApp(t)
	auth := loginToken(t, app, "alice@hospital-a.test")

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/items", dto.ItemRequest{
		ProductName: "Test Ventilator", Manufacturer: "TestMed", Category: "Equipment",
		Quantity: 7, UnitPrice: price("1200"),
	}, auth)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created dto.ItemResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, int64(3), created.ID, "siguiente ID disponible tras 1 y 2")

	tableResp := doJSON(t, app, http.MethodGet, "/api/inventory/", nil, auth)
	defer tableResp.Body.Close()
	table := decodeTable(t, tableResp)
	assert.Len(t, table.Items, 3)
}

func TestAgregarItem_IDDuplicado_Retorna409(t *testing.T) {
	app, _ := buildTestApp(t)
	auth := loginToken(t, app, "alice@hospital-a.test")

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/items", dto.ItemRequest{
		ID: 1, ProductName: "Clon", Manufacturer: "TestMed", Category: "Consumables",
	}, auth)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "DUPLICATE_ID")
}

func TestAgregarItem_CantidadNegativa_Retorna400(t *testing.T) {
	app, _ := buildTestApp(t)
	auth := loginToken(t, app, "alice@hospital-a.test")

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/items", dto.ItemRequest{
		ProductName: "Roto", Manufacturer: "TestMed", Category: "Consumables", Quantity: -1,
	}, auth)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestActualizarItem_ReemplazaCampos(t *testing.T) {
	app, _ := buildTestApp(t)
	auth := loginToken(t, app, "alice@hospital-a.test")

	resp := doJSON(t, app, http.MethodPut, "/api/inventory/items/1", dto.ItemRequest{
		ProductName: "Test Syringe XL", Manufacturer: "TestMed", Category: "Consumables",
		Quantity: 4000, ExpiryDate: "2027-01-31", UnitPrice: price("1.75"),
	}, auth)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated dto.ItemResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, int64(1), updated.ID, "el ID del path manda sobre el del cuerpo")
	assert.Equal(t, "Test Syringe XL", updated.ProductName)
	assert.Equal(t, "4,000", updated.Display.Quantity)
}

func TestActualizarItem_IDInexistente_Retorna404(t *testing.T) {
	app, _ := buildTestApp(t)
	auth := loginToken(t, app, "alice@hospital-a.test")

	resp := doJSON(t, app, http.MethodPut, "/api/inventory/items/99", dto.ItemRequest{
		ProductName: "Fantasma", Manufacturer: "TestMed", Category: "Consumables",
	}, auth)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "ITEM_NOT_FOUND")
}

func TestEliminarItem_EsIdempotente(t *testing.T) {
	app, _ := buildTestApp(t)
	auth := loginToken(t, app, "alice@hospital-a.test")

	for i := 0; i < 2; i++ {
		resp := doJSON(t, app, http.MethodDelete, "/api/inventory/items/1", nil, auth)
		resp.Body.Close()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode,
			fmt.Sprintf("intento %d: eliminar es no-op si el ítem ya no está", i+1))
	}

	tableResp := doJSON(t, app, http.MethodGet, "/api/inventory/", nil, auth)
	defer tableResp.Body.Close()
	table := decodeTable(t, tableResp)
	assert.Len(t, table.Items, 1)
}

func TestRecargar_DescartaLaCopiaDeTrabajo(t *testing.T) {
	app, _ := buildTestApp(t)
	auth := loginToken(t, app, "alice@hospital-a.test")

	resp := doJSON(t, app, http.MethodDelete, "/api/inventory/items/2", nil, auth)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	reloadResp := doJSON(t, app, http.MethodPost, "/api/inventory/reload", nil, auth)
	defer reloadResp.Body.Close()
	require.Equal(t, http.StatusOK, reloadResp.StatusCode)

	table := decodeTable(t, reloadResp)
	assert.Len(t, table.Items, 2, "la recarga restaura lo que tiene el proveedor")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de exportación
// ──────────────────────────────────────────────────────────────────────────────

func TestExportar_PDFDescargable(t *testing.T) {
	app, _ := buildTestApp(t)
	auth := loginToken(t, app, "alice@hospital-a.test")

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/export?format=pdf", nil, auth)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "inventario.pdf")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(body[:4]))
}

func TestExportar_XLSXDescargable(t *testing.T) {
	app, _ := buildTestApp(t)
	auth := loginToken(t, app, "alice@hospital-a.test")

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/export?format=xlsx", nil, auth)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "inventario.xlsx")
}

func TestExportar_FormatoDesconocido_Retorna400(t *testing.T) {
	app, _ := buildTestApp(t)
	auth := loginToken(t, app, "alice@hospital-a.test")

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/export?format=csv", nil, auth)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
