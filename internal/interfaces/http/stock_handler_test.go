package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monraspgit/ines-stock-api/internal/application/auth"
	"github.com/monraspgit/ines-stock-api/internal/application/stock"
	"github.com/monraspgit/ines-stock-api/internal/domain/entity"
	"github.com/monraspgit/ines-stock-api/internal/domain/repository"
	apphttp "github.com/monraspgit/ines-stock-api/internal/interfaces/http"
	"github.com/monraspgit/ines-stock-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para montar la app completa sin base de datos
// ──────────────────────────────────────────────────────────────────────────────

var errStore = errors.New("fallo simulado del store")

type fakeStockRepo struct {
	items      []*entity.StockItem
	nextID     int64
	failInsert bool
	failUpdate bool
}

func (r *fakeStockRepo) List(_ context.Context) ([]*entity.StockItem, error) {
	return cloneItems(r.items), nil
}

func (r *fakeStockRepo) InsertMany(_ context.Context, items []*entity.StockItem) error {
	if r.failInsert {
		return errStore
	}
	for _, item := range items {
		r.nextID++
		cp := *item
		cp.ID = r.nextID
		r.items = append(r.items, &cp)
	}
	return nil
}

func (r *fakeStockRepo) UpdateMany(_ context.Context, items []*entity.StockItem) error {
	if r.failUpdate {
		return errStore
	}
	for _, item := range items {
		for _, stored := range r.items {
			if stored.CodigoInsumo != item.CodigoInsumo {
				continue
			}
			stored.CantidadPedida = item.CantidadPedida
			stored.CantidadMaxima = item.CantidadMaxima
			stored.Pendiente = item.Pendiente
			if item.Week != nil {
				stored.Week = item.Week
			}
			if item.Observation != nil {
				stored.Observation = item.Observation
			}
			if item.Bimensual != nil {
				stored.Bimensual = item.Bimensual
			}
		}
	}
	return nil
}

func (r *fakeStockRepo) DeleteAll(_ context.Context) error {
	r.items = nil
	return nil
}

func (r *fakeStockRepo) FilterByBimensualAndWeek(_ context.Context, bimensual, week string) ([]*entity.StockItem, error) {
	var out []*entity.StockItem
	for _, item := range r.items {
		if item.Bimensual == nil || item.Week == nil {
			continue
		}
		if strings.Contains(*item.Bimensual, bimensual) && *item.Week == week {
			cp := *item
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) InsertOne(_ context.Context, item *entity.StockItem) (int64, error) {
	if r.failInsert {
		return 0, errStore
	}
	r.nextID++
	cp := *item
	cp.ID = r.nextID
	r.items = append(r.items, &cp)
	return cp.ID, nil
}

func cloneItems(items []*entity.StockItem) []*entity.StockItem {
	out := make([]*entity.StockItem, len(items))
	for i, item := range items {
		cp := *item
		out[i] = &cp
	}
	return out
}

type fakeTxRunner struct {
	repo *fakeStockRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repo repository.StockRepository) error) error {
	snapshot := cloneItems(r.repo.items)
	if err := fn(r.repo); err != nil {
		r.repo.items = snapshot
		return err
	}
	return nil
}

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) FindByCredentials(_ context.Context, nombre, password string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Nombre == nombre && u.Password == password {
			return u, nil
		}
	}
	return nil, nil
}

// buildTestApp monta la app Fiber con las rutas reales sobre fakes en memoria.
func buildTestApp(repo *fakeStockRepo, users *fakeUserRepo) *fiber.App {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		StockUC: stock.NewUseCase(repo, &fakeTxRunner{repo: repo}),
		AuthUC:  auth.NewUseCase(users),
		Log:     log,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/stock/
// ──────────────────────────────────────────────────────────────────────────────

func TestListarStock_DevuelveArrayConFechasCalendario(t *testing.T) {
	app := buildTestApp(&fakeStockRepo{}, &fakeUserRepo{})

	resp := doJSON(t, app, http.MethodPost, "/api/stock/", `[
		{"codigoInsumo":"A-1","nombreInsumo":"Tornillo","fechaEnvio":"2024-03-01T00:00:00.000Z","mes01":""}
	]`)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/stock/", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var items []map[string]any
	decodeBody(t, resp, &items)
	require.Len(t, items, 1)
	assert.Equal(t, "2024-03-01", items[0]["fechaEnvio"],
		"la fecha debe volver como YYYY-MM-DD, nunca como timestamp")
	assert.Nil(t, items[0]["fechaLlegada"])
	assert.Equal(t, float64(0), items[0]["mes01"], `mes01 "" debe almacenarse como 0`)
	assert.Equal(t, "", items[0]["observation"])
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/stock/ (inserción masiva)
// ──────────────────────────────────────────────────────────────────────────────

func TestInsercionMasiva_ArrayVacioRetorna400(t *testing.T) {
	app := buildTestApp(&fakeStockRepo{}, &fakeUserRepo{})

	resp := doJSON(t, app, http.MethodPost, "/api/stock/", `[]`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "array")
}

func TestInsercionMasiva_ObjetoNoArrayRetorna400(t *testing.T) {
	app := buildTestApp(&fakeStockRepo{}, &fakeUserRepo{})

	resp := doJSON(t, app, http.MethodPost, "/api/stock/", `{"codigoInsumo":"A-1"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInsercionMasiva_Exitosa201(t *testing.T) {
	app := buildTestApp(&fakeStockRepo{}, &fakeUserRepo{})

	resp := doJSON(t, app, http.MethodPost, "/api/stock/", `[{"codigoInsumo":"A-1"},{"codigoInsumo":"A-2"}]`)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var out map[string]string
	decodeBody(t, resp, &out)
	assert.Equal(t, "Datos guardados exitosamente", out["message"])
}

func TestInsercionMasiva_FalloDelStoreRetorna500Generico(t *testing.T) {
	repo := &fakeStockRepo{failInsert: true}
	app := buildTestApp(repo, &fakeUserRepo{})

	resp := doJSON(t, app, http.MethodPost, "/api/stock/", `[{"codigoInsumo":"A-1"}]`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(body), "simulado",
		"el detalle interno del error no debe cruzar al cliente")
	assert.Empty(t, repo.items, "tras el fallo no debe persistir ninguna fila")
}

// ──────────────────────────────────────────────────────────────────────────────
// PUT /api/stock/update
// ──────────────────────────────────────────────────────────────────────────────

func TestActualizacionMasiva_Exitosa200(t *testing.T) {
	repo := &fakeStockRepo{items: []*entity.StockItem{{ID: 1, CodigoInsumo: "A-1", CantidadPedida: 1}}, nextID: 1}
	app := buildTestApp(repo, &fakeUserRepo{})

	resp := doJSON(t, app, http.MethodPut, "/api/stock/update", `[{"codigoInsumo":"A-1","cantidadPedida":7}]`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]string
	decodeBody(t, resp, &out)
	assert.Equal(t, "Datos actualizados exitosamente", out["message"])
	assert.Equal(t, 7, repo.items[0].CantidadPedida)
}

func TestActualizacionMasiva_CodigoInexistenteSigueSiendo200(t *testing.T) {
	app := buildTestApp(&fakeStockRepo{}, &fakeUserRepo{})

	resp := doJSON(t, app, http.MethodPut, "/api/stock/update", `[{"codigoInsumo":"NO-EXISTE"}]`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"cero filas afectadas se reporta como éxito")
}

func TestActualizacionMasiva_ArrayVacioRetorna400(t *testing.T) {
	app := buildTestApp(&fakeStockRepo{}, &fakeUserRepo{})

	resp := doJSON(t, app, http.MethodPut, "/api/stock/update", `[]`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// DELETE /api/stock/deleteAll
// ──────────────────────────────────────────────────────────────────────────────

func TestEliminarTodo_EsIdempotente(t *testing.T) {
	repo := &fakeStockRepo{items: []*entity.StockItem{{ID: 1, CodigoInsumo: "A-1"}}, nextID: 1}
	app := buildTestApp(repo, &fakeUserRepo{})

	resp := doJSON(t, app, http.MethodDelete, "/api/stock/deleteAll", "")
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, repo.items)

	// Segunda pasada sobre la tabla ya vacía: sigue siendo 200.
	resp = doJSON(t, app, http.MethodDelete, "/api/stock/deleteAll", "")
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/stock/filter
// ──────────────────────────────────────────────────────────────────────────────

func TestFiltrar_ParametroFaltanteRetorna400(t *testing.T) {
	app := buildTestApp(&fakeStockRepo{}, &fakeUserRepo{})

	resp := doJSON(t, app, http.MethodGet, "/api/stock/filter?bimensual=Feb", "")
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/stock/filter?week=3", "")
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFiltrar_DevuelveSoloCoincidencias(t *testing.T) {
	week3, week13 := "3", "13"
	eneFeb, marAbr := "Ene-Feb", "Mar-Abr"
	repo := &fakeStockRepo{items: []*entity.StockItem{
		{ID: 1, CodigoInsumo: "A-1", Bimensual: &eneFeb, Week: &week3},
		{ID: 2, CodigoInsumo: "A-2", Bimensual: &eneFeb, Week: &week13},
		{ID: 3, CodigoInsumo: "A-3", Bimensual: &marAbr, Week: &week3},
	}, nextID: 3}
	app := buildTestApp(repo, &fakeUserRepo{})

	resp := doJSON(t, app, http.MethodGet, "/api/stock/filter?bimensual=Feb&week=3", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var items []map[string]any
	decodeBody(t, resp, &items)
	require.Len(t, items, 1)
	assert.Equal(t, "A-1", items[0]["codigoInsumo"])
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/stock/add
// ──────────────────────────────────────────────────────────────────────────────

func TestAgregar_Devuelve201ConID(t *testing.T) {
	app := buildTestApp(&fakeStockRepo{}, &fakeUserRepo{})

	resp := doJSON(t, app, http.MethodPost, "/api/stock/add", `{"codigoInsumo":"A-1","mes01":"4"}`)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var out map[string]any
	decodeBody(t, resp, &out)
	assert.Equal(t, "Registro agregado exitosamente", out["message"])
	assert.Equal(t, float64(1), out["id"])
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/stock/login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_ExitosoDevuelveProyeccionSinPassword(t *testing.T) {
	users := &fakeUserRepo{users: []*entity.User{
		{ID: "u-1", Nombre: "alice", Password: "secret", Rol: "admin"},
	}}
	app := buildTestApp(&fakeStockRepo{}, users)

	resp := doJSON(t, app, http.MethodPost, "/api/stock/login", `{"nombre":"alice","password":"secret"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret", "el password nunca se devuelve")

	var out struct {
		Message string `json:"message"`
		User    struct {
			ID     string `json:"id"`
			Nombre string `json:"nombre"`
			Rol    string `json:"rol"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "u-1", out.User.ID)
	assert.Equal(t, "alice", out.User.Nombre)
	assert.Equal(t, "admin", out.User.Rol)
}

func TestLogin_CredencialesIncorrectasRetorna401(t *testing.T) {
	users := &fakeUserRepo{users: []*entity.User{
		{ID: "u-1", Nombre: "alice", Password: "secret", Rol: "admin"},
	}}
	app := buildTestApp(&fakeStockRepo{}, users)

	resp := doJSON(t, app, http.MethodPost, "/api/stock/login", `{"nombre":"alice","password":"wrong"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_CREDENTIALS")
}

func TestLogin_CampoFaltanteRetorna400(t *testing.T) {
	app := buildTestApp(&fakeStockRepo{}, &fakeUserRepo{})

	resp := doJSON(t, app, http.MethodPost, "/api/stock/login", `{"nombre":"","password":"x"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
