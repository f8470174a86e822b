// Package viacep adaptador HTTP del directorio público de CEPs ViaCEP.
package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/clientes-api/internal/application/ports"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

var _ ports.AddressLookup = (*Client)(nil)

// DefaultBaseURL endpoint público.
const DefaultBaseURL = "https://viacep.com.br"

// Client implementa AddressLookup contra GET {base}/ws/{cep}/json/.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el adaptador. baseURL vacío usa DefaultBaseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type viaCEPResponse struct {
	CEP         string          `json:"cep"`
	Logradouro  string          `json:"logradouro"`
	Complemento string          `json:"complemento"`
	Bairro      string          `json:"bairro"`
	Localidade  string          `json:"localidade"`
	UF          string          `json:"uf"`
	Erro        json.RawMessage `json:"erro"`
}

// notFound el proveedor señala CEP inexistente con "erro": true (a veces como string).
func (r viaCEPResponse) notFound() bool {
	return strings.Trim(strings.TrimSpace(string(r.Erro)), `"`) == "true"
}

// LookupPostalCode consulta el CEP (8 dígitos).
func (c *Client) LookupPostalCode(ctx context.Context, postalCode string) (*entity.Address, error) {
	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, postalCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: crear request: %v", domain.ErrLookupFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 16*1024))
	if err != nil {
		return nil, fmt.Errorf("%w: leer respuesta: %v", domain.ErrLookupFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: ViaCEP HTTP %d", domain.ErrLookupFailed, resp.StatusCode)
	}

	var out viaCEPResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: deserializar respuesta: %v", domain.ErrLookupFailed, err)
	}
	if out.notFound() {
		return nil, domain.ErrAddressNotFound
	}

	return &entity.Address{
		PostalCode:   postalCode,
		Street:       out.Logradouro,
		Neighborhood: out.Bairro,
		City:         out.Localidade,
		State:        out.UF,
		Complement:   out.Complemento,
	}, nil
}
