package listing_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/application/listing"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// fakeStore registra el orden de las llamadas.
type fakeStore struct {
	mu      sync.Mutex
	records []dto.CustomerResponse
	calls   []string
	listErr error
	lastLim int
}

func (s *fakeStore) List(_ context.Context, _ entity.CustomerFilter, _, limit int) (*dto.CustomerListResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "list")
	s.lastLim = limit
	if s.listErr != nil {
		return nil, s.listErr
	}
	return &dto.CustomerListResponse{Data: append([]dto.CustomerResponse(nil), s.records...)}, nil
}

func (s *fakeStore) Delete(_ context.Context, id entity.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, fmt.Sprintf("delete:%s", id))
	for i, r := range s.records {
		if r.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: Cliente não encontrado", domain.ErrNotFound)
}

func TestController_RefreshPide1000(t *testing.T) {
	store := &fakeStore{records: twelveRecords()}
	c := listing.NewController(store, 10)

	require.NoError(t, c.Refresh(context.Background()))
	assert.Equal(t, listing.FetchLimit, store.lastLim)
	assert.Len(t, c.View().Records(), 12)
	assert.Empty(t, c.Message())
}

func TestController_DeleteLuegoRefresh(t *testing.T) {
	store := &fakeStore{records: twelveRecords()}
	c := listing.NewController(store, 10)
	require.NoError(t, c.Refresh(context.Background()))

	require.NoError(t, c.Delete(context.Background(), 3))
	assert.Equal(t, []string{"list", "delete:3", "list"}, store.calls)
	assert.Len(t, c.View().Records(), 11)
}

func TestController_DeleteInexistenteNoCambiaLista(t *testing.T) {
	store := &fakeStore{records: twelveRecords()}
	c := listing.NewController(store, 10)
	require.NoError(t, c.Refresh(context.Background()))
	before := c.View().Records()

	err := c.Delete(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, listing.MsgDeleteFailed, c.Message())
	assert.Equal(t, before, c.View().Records())
	assert.Equal(t, []string{"list", "delete:99"}, store.calls, "sin refresh tras un borrado fallido")
}

func TestController_RefreshFallidoConservaLista(t *testing.T) {
	store := &fakeStore{records: twelveRecords()}
	c := listing.NewController(store, 10)
	require.NoError(t, c.Refresh(context.Background()))

	store.listErr = domain.ErrServer
	assert.Error(t, c.Refresh(context.Background()))
	assert.Equal(t, listing.MsgLoadFailed, c.Message())
	assert.Len(t, c.View().Records(), 12)

	store.listErr = fmt.Errorf("%w: connection refused", domain.ErrTransport)
	assert.Error(t, c.Refresh(context.Background()))
	assert.Equal(t, listing.MsgConnection, c.Message())

	store.listErr = nil
	require.NoError(t, c.Refresh(context.Background()))
	assert.Empty(t, c.Message())
}

func TestController_FiltrosYPaginas(t *testing.T) {
	c := listing.NewController(&fakeStore{records: twelveRecords()}, 10)
	require.NoError(t, c.Refresh(context.Background()))

	c.GoToPage(2)
	assert.Equal(t, 2, c.View().Page())
	c.SetFilter(listing.FieldName, "ana")
	assert.Equal(t, 1, c.View().Page())
	assert.Len(t, c.View().Visible(), 3)
	c.ClearFilters()
	assert.Len(t, c.View().Filtered(), 12)
}
