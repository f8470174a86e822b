package http_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/jhoicas/clientes-api/docs"
	apphttp "github.com/jhoicas/clientes-api/internal/interfaces/http"
)

func TestDocs_DocJSON(t *testing.T) {
	app := apphttp.NewApp(apphttp.AppOptions{Name: "test"})
	apphttp.Docs(app, "test", "")

	resp, err := app.Test(httptest.NewRequest("GET", "/docs/doc.json", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"/customers/{id}"`)
}

func TestDocs_SinArchivoNoMontaUI(t *testing.T) {
	app := apphttp.NewApp(apphttp.AppOptions{Name: "test"})
	apphttp.Docs(app, "test", "./no-existe.json")

	resp, err := app.Test(httptest.NewRequest("GET", "/docs", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 404, resp.StatusCode)
}
