package usecase_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/clientes-api/internal/application/ports"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

// memRepo repositorio en memoria; no filtra, solo registra el último filtro recibido.
type memRepo struct {
	mu         sync.Mutex
	next       entity.ID
	items      map[entity.ID]*entity.Customer
	lastFilter entity.CustomerFilter
	lastLimit  int
	lastOffset int
	err        error
}

func newMemRepo() *memRepo {
	return &memRepo{items: map[entity.ID]*entity.Customer{}}
}

func (r *memRepo) Create(_ context.Context, c *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for _, existing := range r.items {
		if existing.Code == c.Code {
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
	r.lastFilter, r.lastLimit, r.lastOffset = f, limit, offset
	if r.err != nil {
		return nil, 0, r.err
	}
	all := make([]*entity.Customer, 0, len(r.items))
	for _, c := range r.items {
		cp := *c
		all = append(all, &cp)
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
	calls []string
	addr  *entity.Address
	err   error
}

func (s *stubLookup) LookupPostalCode(_ context.Context, postalCode string) (*entity.Address, error) {
	s.calls = append(s.calls, postalCode)
	if s.err != nil {
		return nil, s.err
	}
	cp := *s.addr
	return &cp, nil
}

type stubGenerator struct {
	got ports.CustomerReport
}

func (g *stubGenerator) Generate(report ports.CustomerReport) ([]byte, error) {
	g.got = report
	return []byte("%PDF-1.4"), nil
}

// fakeTx trabaja sobre una copia del memRepo y solo la publica si fn termina sin error.
type fakeTx struct {
	repo *memRepo
}

func (f *fakeTx) RunCustomers(_ context.Context, fn func(repo repository.CustomerRepository) error) error {
	f.repo.mu.Lock()
	staged := &memRepo{next: f.repo.next, items: make(map[entity.ID]*entity.Customer, len(f.repo.items)), err: f.repo.err}
	for id, c := range f.repo.items {
		cp := *c
		staged.items[id] = &cp
	}
	f.repo.mu.Unlock()

	if err := fn(staged); err != nil {
		return err
	}
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	f.repo.items, f.repo.next = staged.items, staged.next
	return nil
}
