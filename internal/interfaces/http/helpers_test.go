package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/internal/application/ports"
	"github.com/jhoicas/clientes-api/internal/application/usecase"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	apphttp "github.com/jhoicas/clientes-api/internal/interfaces/http"
)

// memRepo repositorio en memoria con filtro por substring, suficiente para los handlers.
type memRepo struct {
	mu    sync.Mutex
	next  entity.ID
	items map[entity.ID]*entity.Customer
}

func newMemRepo() *memRepo { return &memRepo{items: map[entity.ID]*entity.Customer{}} }

func (r *memRepo) Create(_ context.Context, c *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.items {
		if e.Code == c.Code {
			return domain.ErrDuplicate
		}
	}
	r.next++
	c.ID = r.next
	c.CreatedAt = time.Date(2024, 1, 1, 0, 0, int(r.next), 0, time.UTC)
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id entity.ID) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memRepo) List(_ context.Context, f entity.CustomerFilter, limit, offset int) ([]*entity.Customer, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*entity.Customer
	for _, c := range r.items {
		if contains(c.Code, f.Code) && contains(c.Name, f.Name) && contains(c.City, f.City) &&
			contains(c.PostalCode.String(), f.PostalCode) {
			cp := *c
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	total := len(all)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func contains(field, q string) bool {
	return strings.Contains(strings.ToLower(field), strings.ToLower(q))
}

func (r *memRepo) Update(_ context.Context, c *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *memRepo) Delete(_ context.Context, id entity.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type stubLookup struct {
	calls int
	addr  *entity.Address
	err   error
}

func (s *stubLookup) LookupPostalCode(_ context.Context, _ string) (*entity.Address, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	cp := *s.addr
	return &cp, nil
}

type stubGenerator struct{}

func (stubGenerator) Generate(ports.CustomerReport) ([]byte, error) { return []byte("%PDF-1.4 test"), nil }

type testEnv struct {
	app    *fiber.App
	repo   *memRepo
	lookup *stubLookup
}

func newTestEnv(t *testing.T, jwtSecret string) *testEnv {
	t.Helper()
	repo := newMemRepo()
	lookup := &stubLookup{addr: &entity.Address{Street: "Avenida Paulista", Neighborhood: "Bela Vista", City: "São Paulo", State: "SP"}}

	app := apphttp.NewApp(apphttp.AppOptions{Name: "clientes-api-test"})
	apphttp.Router(app, apphttp.RouterDeps{
		ServiceName: "clientes-api-test",
		CustomerUC:  usecase.NewCustomerUseCase(repo),
		AddressUC:   usecase.NewAddressUseCase(lookup, time.Second),
		ReportUC:    usecase.NewReportUseCase(repo, stubGenerator{}),
		JWTSecret:   jwtSecret,
	})
	return &testEnv{app: app, repo: repo, lookup: lookup}
}

// do lanza la petición; body nil o cualquier valor serializable a JSON.
func (e *testEnv) do(t *testing.T, method, path string, body any, headers ...string) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func validBody(code string) map[string]any {
	return map[string]any{
		"userId":      "1",
		"code":        code,
		"name":        "Ana Souza",
		"taxId":       "529.982.247-25",
		"postalCode":  "01310-930",
		"city":        "São Paulo",
		"state":       "SP",
		"phone":       "(11) 98765-4321",
		"creditLimit": 1500.5,
		"expiresAt":   "2030-12-31",
	}
}
