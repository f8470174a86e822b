// Package apiclient cliente HTTP tipado de la API de clientes. Lo usan los controladores de
// listado y formulario; traduce los status HTTP a los errores de dominio.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/application/form"
	"github.com/jhoicas/clientes-api/internal/application/listing"
	"github.com/jhoicas/clientes-api/internal/application/ports"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

var (
	_ ports.AddressLookup = (*Client)(nil)
	_ listing.Store       = (*Client)(nil)
	_ form.Store          = (*Client)(nil)
)

// Client cliente de /customers.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configura el cliente.
type Option func(*Client)

// WithToken envía Authorization: Bearer <token> en cada petición.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient reemplaza el *http.Client (por defecto timeout de 15 s).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New construye el cliente para baseURL (p. ej. http://localhost:3001).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List GET /customers con filtros y paginación.
func (c *Client) List(ctx context.Context, filter entity.CustomerFilter, page, limit int) (*dto.CustomerListResponse, error) {
	q := url.Values{}
	set := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	set("code", filter.Code)
	set("name", filter.Name)
	set("city", filter.City)
	set("postalCode", filter.PostalCode)
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	path := "/customers"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out dto.CustomerListResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &out, recordErrors); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get GET /customers/:id
func (c *Client) Get(ctx context.Context, id entity.ID) (*dto.CustomerResponse, error) {
	var out dto.CustomerResponse
	if err := c.do(ctx, http.MethodGet, "/customers/"+id.String(), nil, &out, recordErrors); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create POST /customers
func (c *Client) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	var out dto.CustomerResponse
	if err := c.do(ctx, http.MethodPost, "/customers", in, &out, recordErrors); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update PUT /customers/:id
func (c *Client) Update(ctx context.Context, id entity.ID, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	var out dto.CustomerResponse
	if err := c.do(ctx, http.MethodPut, "/customers/"+id.String(), in, &out, recordErrors); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete DELETE /customers/:id
func (c *Client) Delete(ctx context.Context, id entity.ID) error {
	return c.do(ctx, http.MethodDelete, "/customers/"+id.String(), nil, nil, recordErrors)
}

// LookupPostalCode GET /customers/address/:postalCode. 404 -> domain.ErrAddressNotFound,
// red o 5xx -> domain.ErrLookupFailed.
func (c *Client) LookupPostalCode(ctx context.Context, postalCode string) (*entity.Address, error) {
	var out dto.AddressResponse
	if err := c.do(ctx, http.MethodGet, "/customers/address/"+url.PathEscape(postalCode), nil, &out, addressErrors); err != nil {
		return nil, err
	}
	return &entity.Address{
		PostalCode:   out.PostalCode,
		Street:       out.Street,
		Neighborhood: out.Neighborhood,
		City:         out.City,
		State:        out.State,
		Complement:   out.Complement,
	}, nil
}

// errorMapping sentinels según el recurso consultado.
type errorMapping struct {
	notFound  error
	server    error
	transport error
}

var (
	recordErrors  = errorMapping{notFound: domain.ErrNotFound, server: domain.ErrServer, transport: domain.ErrTransport}
	addressErrors = errorMapping{notFound: domain.ErrAddressNotFound, server: domain.ErrLookupFailed, transport: domain.ErrLookupFailed}
)

func (c *Client) do(ctx context.Context, method, path string, in, out any, em errorMapping) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("serializar request: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", em.transport, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return fmt.Errorf("%w: leer respuesta: %v", em.transport, err)
	}
	if resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, raw, em)
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: deserializar respuesta: %v", em.server, err)
	}
	return nil
}

func statusError(status int, raw []byte, em errorMapping) error {
	var body dto.ErrorResponse
	_ = json.Unmarshal(raw, &body)

	switch {
	case status == http.StatusBadRequest:
		if len(body.Errors) > 0 {
			return domain.NewValidationError(body.Errors)
		}
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, body.Message)
	case status == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, body.Message)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", em.notFound, body.Message)
	case status == http.StatusConflict:
		return fmt.Errorf("%w: %s", domain.ErrDuplicate, body.Message)
	default:
		return fmt.Errorf("%w: HTTP %d %s", em.server, status, body.Message)
	}
}
