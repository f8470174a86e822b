package listing

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// FetchLimit registros pedidos a la API en cada recarga; el filtrado es local.
const FetchLimit = 1000

// Mensajes de la pantalla de listado.
const (
	MsgLoadFailed   = "Erro ao carregar clientes"
	MsgDeleteFailed = "Erro ao excluir cliente"
	MsgConnection   = "Erro de conexão. Verifique sua rede e tente novamente"
)

// Store operaciones remotas que necesita el listado (implementado por apiclient.Client).
type Store interface {
	List(ctx context.Context, filter entity.CustomerFilter, page, limit int) (*dto.CustomerListResponse, error)
	Delete(ctx context.Context, id entity.ID) error
}

// Controller dueño de una View; convierte los fallos remotos en un mensaje visible.
type Controller struct {
	store Store

	mu      sync.Mutex
	view    View
	message string
}

// NewController construye el controlador. pageSize <= 0 usa DefaultPageSize.
func NewController(store Store, pageSize int) *Controller {
	return &Controller{store: store, view: NewView(pageSize)}
}

// View copia del estado actual.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Message último mensaje de error, vacío si la última operación terminó bien.
func (c *Controller) Message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

// Refresh recarga hasta FetchLimit registros. Si falla la lista anterior queda intacta.
func (c *Controller) Refresh(ctx context.Context) error {
	out, err := c.store.List(ctx, entity.CustomerFilter{}, 1, FetchLimit)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.message = userMessage(err, MsgLoadFailed)
		return fmt.Errorf("cargar clientes: %w", err)
	}
	c.view = c.view.WithRecords(out.Data)
	c.message = ""
	return nil
}

// Delete elimina y, solo después de confirmado, recarga la lista. Si el borrado falla no
// se recarga y la lista no cambia.
func (c *Controller) Delete(ctx context.Context, id entity.ID) error {
	if err := c.store.Delete(ctx, id); err != nil {
		c.setMessage(userMessage(err, MsgDeleteFailed))
		return fmt.Errorf("eliminar cliente %s: %w", id, err)
	}
	return c.Refresh(ctx)
}

// SetFilter cambia un criterio (vuelve a la página 1).
func (c *Controller) SetFilter(field Field, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = c.view.WithFilter(field, value)
}

// ClearFilters quita todos los criterios.
func (c *Controller) ClearFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = c.view.ClearFilters()
}

// GoToPage navega entre páginas del conjunto filtrado.
func (c *Controller) GoToPage(p int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = c.view.GoToPage(p)
}

func (c *Controller) setMessage(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.message = msg
}

func userMessage(err error, fallback string) string {
	if errors.Is(err, domain.ErrTransport) {
		return MsgConnection
	}
	return fallback
}
