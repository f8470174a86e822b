package http_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/internal/application/form"
	"github.com/jhoicas/clientes-api/internal/application/listing"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/interfaces/apiclient"
)

// Recorre formulario, listado y borrado contra la API real servida por Fiber.
func TestE2E_FormularioYListado(t *testing.T) {
	env := newTestEnv(t, "")
	srv := httptest.NewServer(adaptor.FiberApp(env.app))
	t.Cleanup(srv.Close)

	ctx := context.Background()
	client := apiclient.New(srv.URL)

	var navigated string
	f := form.NewController(form.NewCreate(1), client, client, func(to string) { navigated = to })
	f.Mount(ctx)
	f.ChangeField(ctx, form.FieldCode, "CLI001")
	f.ChangeField(ctx, form.FieldName, "Ana Souza")
	f.ChangeField(ctx, form.FieldTaxID, "52998224725")
	f.ChangeField(ctx, form.FieldPhone, "11987654321")
	f.ChangeField(ctx, form.FieldCreditLimit, "1.500,50")
	f.ChangeField(ctx, form.FieldExpiresAt, "2030-12-31")
	f.ChangeField(ctx, form.FieldPostalCode, "01310930")
	f.Wait()

	st := f.State()
	require.Equal(t, "Avenida Paulista", st.Value(form.FieldStreet))

	f.Submit(ctx)
	require.Equal(t, form.StatusSuccess, f.State().Status, f.State().FormError)
	assert.Equal(t, form.ListPath, navigated)

	list := listing.NewController(client, 10)
	require.NoError(t, list.Refresh(ctx))
	rows := list.View().Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "01310-930", rows[0].PostalCode)
	assert.Equal(t, "529.982.247-25", rows[0].TaxID)

	list.SetFilter(listing.FieldPostalCode, "01310")
	assert.Len(t, list.View().Filtered(), 1)
	list.SetFilter(listing.FieldName, "bruno")
	assert.Empty(t, list.View().Filtered())
	list.ClearFilters()

	// Edición del mismo cliente.
	id := list.View().Records()[0].ID
	edit := form.NewController(form.NewEdit(id), client, client, nil)
	edit.Mount(ctx)
	require.Equal(t, form.StatusReady, edit.State().Status)
	assert.Equal(t, "1500.50", edit.State().Value(form.FieldCreditLimit))
	edit.ChangeField(ctx, form.FieldName, "Ana Souza Lima")
	edit.Submit(ctx)
	require.Equal(t, form.StatusSuccess, edit.State().Status, edit.State().FormError)

	require.NoError(t, list.Delete(ctx, id))
	assert.Empty(t, list.View().Records())

	err := list.Delete(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, listing.MsgDeleteFailed, list.Message())
}
