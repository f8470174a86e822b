package form

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/application/ports"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// Store operaciones remotas del formulario (implementado por apiclient.Client).
type Store interface {
	Get(ctx context.Context, id entity.ID) (*dto.CustomerResponse, error)
	Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	Update(ctx context.Context, id entity.ID, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error)
}

// Controller mantiene el State y ejecuta los efectos que devuelve Reduce.
// Las consultas de CEP corren en segundo plano; carga y guardado son síncronos.
type Controller struct {
	store    Store
	lookup   ports.AddressLookup
	navigate func(to string)

	mu    sync.Mutex
	state State
	wg    sync.WaitGroup
}

// NewController construye el controlador sobre un estado inicial (NewCreate o NewEdit).
// navigate puede ser nil. Con lookup nil no hay autocompletado: cada consulta de CEP falla
// con domain.ErrLookupFailed sin salir a la red.
func NewController(initial State, store Store, lookup ports.AddressLookup, navigate func(to string)) *Controller {
	if navigate == nil {
		navigate = func(string) {}
	}
	if lookup == nil {
		lookup = noLookup{}
	}
	return &Controller{store: store, lookup: lookup, navigate: navigate, state: initial}
}

// State copia del estado actual.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Dispatch aplica el evento y ejecuta sus efectos.
func (c *Controller) Dispatch(ctx context.Context, ev Event) {
	c.mu.Lock()
	next, effects := Reduce(c.state, ev)
	c.state = next
	c.mu.Unlock()

	for _, eff := range effects {
		c.run(ctx, eff)
	}
}

// Mount abre el formulario (en edición carga el cliente).
func (c *Controller) Mount(ctx context.Context) { c.Dispatch(ctx, Mounted{}) }

// ChangeField registra lo que el usuario tecleó.
func (c *Controller) ChangeField(ctx context.Context, f Field, value string) {
	c.Dispatch(ctx, FieldChanged{Field: f, Value: value})
}

// Submit valida y, si todo está bien, envía a la API.
func (c *Controller) Submit(ctx context.Context) { c.Dispatch(ctx, SubmitRequested{}) }

// Wait espera a que terminen las consultas de CEP en curso.
func (c *Controller) Wait() { c.wg.Wait() }

func (c *Controller) run(ctx context.Context, eff Effect) {
	switch e := eff.(type) {
	case FetchCustomer:
		out, err := c.store.Get(ctx, e.ID)
		if err != nil {
			c.Dispatch(ctx, LoadFailed{Err: fmt.Errorf("cargar cliente %s: %w", e.ID, err)})
			return
		}
		c.Dispatch(ctx, Loaded{Customer: *out})

	case LookupAddress:
		c.wg.Add(1)
		// La consulta sobrevive a la cancelación del evento que la originó.
		lookupCtx := context.WithoutCancel(ctx)
		go func() {
			defer c.wg.Done()
			addr, err := c.lookup.LookupPostalCode(lookupCtx, e.PostalCode)
			if err != nil {
				c.Dispatch(lookupCtx, LookupFailed{PostalCode: e.PostalCode, Err: err})
				return
			}
			c.Dispatch(lookupCtx, LookupSucceeded{PostalCode: e.PostalCode, Address: *addr})
		}()

	case Submit:
		var (
			out *dto.CustomerResponse
			err error
		)
		if e.Mode == ModeEdit {
			out, err = c.store.Update(ctx, e.ID, e.Payload.UpdateRequest())
		} else {
			out, err = c.store.Create(ctx, e.Payload.CreateRequest())
		}
		if err != nil {
			c.Dispatch(ctx, SubmitFailed{Err: err})
			return
		}
		c.Dispatch(ctx, SubmitSucceeded{Customer: *out})

	case Navigate:
		c.navigate(e.To)
	}
}

type noLookup struct{}

func (noLookup) LookupPostalCode(_ context.Context, postalCode string) (*entity.Address, error) {
	return nil, fmt.Errorf("%w: sin proveedor de CEP para %s", domain.ErrLookupFailed, postalCode)
}
