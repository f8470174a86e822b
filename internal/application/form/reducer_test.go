package form

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

func readyCreate() State {
	s, _ := Reduce(NewCreate(7), Mounted{})
	return s
}

func filled() State {
	s := readyCreate()
	for f, v := range map[Field]string{
		FieldCode:        "C-001",
		FieldName:        "Ana Souza",
		FieldTaxID:       "12345678901",
		FieldPhone:       "11987654321",
		FieldPostalCode:  "01310930",
		FieldCreditLimit: "1.500,50",
		FieldExpiresAt:   "2026-12-31",
		FieldCity:        "São Paulo",
		FieldState:       "sp",
	} {
		s, _ = Reduce(s, FieldChanged{Field: f, Value: v})
	}
	return s
}

func sampleCustomer() dto.CustomerResponse {
	complement := "sala 2"
	return dto.CustomerResponse{
		ID:           42,
		UserID:       7,
		CreatedAt:    time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Code:         "C-042",
		Name:         "Comercial Paulista",
		TaxID:        "12345678000195",
		PostalCode:   1310930,
		Street:       "Avenida Paulista",
		Number:       "1000",
		Neighborhood: "Bela Vista",
		City:         "São Paulo",
		State:        "SP",
		Complement:   &complement,
		Phone:        "1133334444",
		CreditLimit:  decimal.RequireFromString("2500"),
		ExpiresAt:    "2026-06-30T00:00:00Z",
	}
}

func TestReduce_MountedAlta(t *testing.T) {
	s, effects := Reduce(NewCreate(7), Mounted{})
	assert.Equal(t, StatusReady, s.Status)
	assert.Empty(t, effects)
}

func TestReduce_MountedEdicionPideCliente(t *testing.T) {
	s, effects := Reduce(NewEdit(42), Mounted{})
	assert.Equal(t, StatusLoading, s.Status)
	assert.Equal(t, []Effect{FetchCustomer{ID: 42}}, effects)
}

func TestReduce_LoadedFormateaValores(t *testing.T) {
	s, _ := Reduce(NewEdit(42), Mounted{})
	s, effects := Reduce(s, Loaded{Customer: sampleCustomer()})

	assert.Empty(t, effects)
	assert.Equal(t, StatusReady, s.Status)
	assert.Equal(t, "01310-930", s.Value(FieldPostalCode))
	assert.Equal(t, "12.345.678/0001-95", s.Value(FieldTaxID))
	assert.Equal(t, "(11) 3333-4444", s.Value(FieldPhone))
	assert.Equal(t, "2500.00", s.Value(FieldCreditLimit))
	assert.Equal(t, "2026-06-30", s.Value(FieldExpiresAt))
	assert.Equal(t, "sala 2", s.Value(FieldComplement))
	assert.Equal(t, entity.ID(7), s.UserID)
}

func TestReduce_LoadFailed(t *testing.T) {
	s, _ := Reduce(NewEdit(42), Mounted{})
	s, _ = Reduce(s, LoadFailed{Err: domain.ErrNotFound})
	assert.Equal(t, StatusFailed, s.Status)
	assert.Equal(t, MsgLoadFailed, s.FormError)
}

func TestReduce_CampoIgnoradoMientrasCarga(t *testing.T) {
	s, _ := Reduce(NewEdit(42), Mounted{})
	next, effects := Reduce(s, FieldChanged{Field: FieldName, Value: "x"})
	assert.Empty(t, effects)
	assert.Empty(t, next.Value(FieldName))
}

func TestReduce_CEPCompletoDisparaUnaConsulta(t *testing.T) {
	s := readyCreate()

	s, effects := Reduce(s, FieldChanged{Field: FieldPostalCode, Value: "0131093"})
	assert.Empty(t, effects)
	assert.Equal(t, "01310-93", s.Value(FieldPostalCode))

	s, effects = Reduce(s, FieldChanged{Field: FieldPostalCode, Value: "01310930"})
	require.Len(t, effects, 1)
	assert.Equal(t, LookupAddress{PostalCode: "01310930"}, effects[0])
	assert.Equal(t, "01310-930", s.Value(FieldPostalCode))
	assert.Equal(t, 1, s.Lookups)
}

func TestReduce_CEPConMascaraDisparaConsulta(t *testing.T) {
	_, effects := Reduce(readyCreate(), FieldChanged{Field: FieldPostalCode, Value: "01310-930"})
	assert.Equal(t, []Effect{LookupAddress{PostalCode: "01310930"}}, effects)
}

func TestReduce_LookupSucceededCompletaDireccion(t *testing.T) {
	s := readyCreate()
	s, _ = Reduce(s, FieldChanged{Field: FieldComplement, Value: "fundos"})
	s, _ = Reduce(s, FieldChanged{Field: FieldPostalCode, Value: "01310930"})

	s, _ = Reduce(s, LookupSucceeded{PostalCode: "01310930", Address: entity.Address{
		PostalCode:   "01310-930",
		Street:       "Avenida Paulista",
		Neighborhood: "Bela Vista",
		City:         "São Paulo",
		State:        "SP",
	}})

	assert.Equal(t, "Avenida Paulista", s.Value(FieldStreet))
	assert.Equal(t, "Bela Vista", s.Value(FieldNeighborhood))
	assert.Equal(t, "São Paulo", s.Value(FieldCity))
	assert.Equal(t, "SP", s.Value(FieldState))
	assert.Equal(t, "fundos", s.Value(FieldComplement), "complemento vacío no pisa el existente")
	assert.Zero(t, s.Lookups)
	assert.Empty(t, s.Error(FieldPostalCode))
}

func TestReduce_LookupFailedSoloMarcaCEP(t *testing.T) {
	s := readyCreate()
	s, _ = Reduce(s, FieldChanged{Field: FieldCity, Value: "Campinas"})
	s, _ = Reduce(s, FieldChanged{Field: FieldPostalCode, Value: "99999999"})
	before := s.Values

	s, _ = Reduce(s, LookupFailed{PostalCode: "99999999", Err: domain.ErrAddressNotFound})

	assert.Equal(t, MsgPostalCodeNotFound, s.Error(FieldPostalCode))
	assert.Equal(t, before, s.Values)
	assert.Equal(t, StatusReady, s.Status)
}

func TestReduce_LookupFueraDeOrdenGanaLaUltimaEnLlegar(t *testing.T) {
	paulista := entity.Address{Street: "Avenida Paulista", Neighborhood: "Bela Vista", City: "São Paulo", State: "SP"}
	centro := entity.Address{Street: "Avenida Rio Branco", Neighborhood: "Centro", City: "Rio de Janeiro", State: "RJ"}

	s := readyCreate()
	s, effects := Reduce(s, FieldChanged{Field: FieldPostalCode, Value: "01310930"})
	require.Equal(t, []Effect{LookupAddress{PostalCode: "01310930"}}, effects)
	s, effects = Reduce(s, FieldChanged{Field: FieldPostalCode, Value: "20040002"})
	require.Equal(t, []Effect{LookupAddress{PostalCode: "20040002"}}, effects)
	assert.Equal(t, 2, s.Lookups)

	s, _ = Reduce(s, LookupSucceeded{PostalCode: "20040002", Address: centro})
	assert.Equal(t, 1, s.Lookups)
	assert.Equal(t, "Rio de Janeiro", s.Value(FieldCity))

	// La respuesta del primer CEP llega tarde y pisa la dirección.
	s, _ = Reduce(s, LookupSucceeded{PostalCode: "01310930", Address: paulista})
	assert.Zero(t, s.Lookups)
	assert.Equal(t, "Avenida Paulista", s.Value(FieldStreet))
	assert.Equal(t, "Bela Vista", s.Value(FieldNeighborhood))
	assert.Equal(t, "São Paulo", s.Value(FieldCity))
	assert.Equal(t, "SP", s.Value(FieldState))
	assert.Equal(t, "20040-002", s.Value(FieldPostalCode), "el campo conserva lo tecleado")
	assert.Empty(t, s.Error(FieldPostalCode))
}

func TestReduce_LookupFailedPorRed(t *testing.T) {
	for _, err := range []error{
		fmt.Errorf("%w: connection refused", domain.ErrLookupFailed),
		domain.ErrTransport,
	} {
		s, _ := Reduce(readyCreate(), FieldChanged{Field: FieldPostalCode, Value: "01310930"})
		s, _ = Reduce(s, LookupFailed{PostalCode: "01310930", Err: err})
		assert.Equal(t, MsgConnection, s.Error(FieldPostalCode), err.Error())
		assert.Zero(t, s.Lookups)
	}
}

func TestReduce_MascaraTaxIDCambiaACNPJ(t *testing.T) {
	s := readyCreate()
	s, _ = Reduce(s, FieldChanged{Field: FieldTaxID, Value: "12345678901"})
	assert.Equal(t, "123.456.789-01", s.Value(FieldTaxID))

	s, _ = Reduce(s, FieldChanged{Field: FieldTaxID, Value: s.Value(FieldTaxID) + "234"})
	assert.Equal(t, "12.345.678/9012-34", s.Value(FieldTaxID))
}

func TestReduce_TelefoneYUF(t *testing.T) {
	s := readyCreate()
	s, _ = Reduce(s, FieldChanged{Field: FieldPhone, Value: "11987654321"})
	s, _ = Reduce(s, FieldChanged{Field: FieldState, Value: "rj"})
	assert.Equal(t, "(11) 98765-4321", s.Value(FieldPhone))
	assert.Equal(t, "RJ", s.Value(FieldState))
}

func TestReduce_SubmitSinObligatorios(t *testing.T) {
	s, effects := Reduce(readyCreate(), SubmitRequested{})

	assert.Empty(t, effects, "no debe haber llamada a la red")
	assert.Equal(t, StatusReady, s.Status)
	assert.Equal(t, "Código é obrigatório", s.Error(FieldCode))
	assert.Equal(t, "Nome é obrigatório", s.Error(FieldName))
	assert.Equal(t, "CPF/CNPJ é obrigatório", s.Error(FieldTaxID))
	assert.Equal(t, "Telefone é obrigatório", s.Error(FieldPhone))
	assert.Equal(t, "CEP é obrigatório", s.Error(FieldPostalCode))
	assert.Equal(t, "Limite de crédito é obrigatório", s.Error(FieldCreditLimit))
	assert.Equal(t, "Validade é obrigatória", s.Error(FieldExpiresAt))
}

func TestReduce_SubmitCEPIncompleto(t *testing.T) {
	s, _ := Reduce(filled(), FieldChanged{Field: FieldPostalCode, Value: "0131"})
	s, effects := Reduce(s, SubmitRequested{})
	assert.Empty(t, effects)
	assert.Equal(t, MsgPostalCodeLength, s.Error(FieldPostalCode))
}

func TestReduce_SubmitLimiteNegativo(t *testing.T) {
	s, _ := Reduce(filled(), FieldChanged{Field: FieldCreditLimit, Value: "-10"})
	s, effects := Reduce(s, SubmitRequested{})
	assert.Empty(t, effects)
	assert.Equal(t, MsgCreditLimitNeg, s.Error(FieldCreditLimit))
}

func TestReduce_SubmitEnviaPayloadNormalizado(t *testing.T) {
	s, effects := Reduce(filled(), SubmitRequested{})

	require.Len(t, effects, 1)
	assert.Equal(t, StatusSubmitting, s.Status)
	sub, ok := effects[0].(Submit)
	require.True(t, ok)
	assert.Equal(t, ModeCreate, sub.Mode)
	p := sub.Payload
	assert.Equal(t, entity.ID(7), p.UserID)
	assert.Equal(t, "12345678901", p.TaxID)
	assert.Equal(t, "11987654321", p.Phone)
	assert.Equal(t, "01310930", p.PostalCode)
	assert.Equal(t, "SP", p.State)
	assert.True(t, decimal.RequireFromString("1500.50").Equal(p.CreditLimit))
	assert.Equal(t, "2026-12-31", p.ExpiresAt)
}

func TestReduce_SubmitDobleSeIgnora(t *testing.T) {
	s, _ := Reduce(filled(), SubmitRequested{})
	_, effects := Reduce(s, SubmitRequested{})
	assert.Empty(t, effects)
}

func TestReduce_SubmitSucceededNavega(t *testing.T) {
	s, _ := Reduce(filled(), SubmitRequested{})
	s, effects := Reduce(s, SubmitSucceeded{Customer: sampleCustomer()})
	assert.Equal(t, StatusSuccess, s.Status)
	assert.Equal(t, []Effect{Navigate{To: ListPath}}, effects)
}

func TestReduce_SubmitFailedConservaCampos(t *testing.T) {
	s, _ := Reduce(filled(), SubmitRequested{})
	values := s.Values

	s, effects := Reduce(s, SubmitFailed{Err: errors.New("boom")})

	assert.Empty(t, effects)
	assert.Equal(t, StatusFailed, s.Status)
	assert.Equal(t, MsgCreateFailed, s.FormError)
	assert.Equal(t, values, s.Values)

	// Puede reintentarse.
	_, effects = Reduce(s, SubmitRequested{})
	assert.Len(t, effects, 1)
}

func TestReduce_SubmitFailedEdicionYRed(t *testing.T) {
	s, _ := Reduce(NewEdit(42), Mounted{})
	s, _ = Reduce(s, Loaded{Customer: sampleCustomer()})
	s, effects := Reduce(s, SubmitRequested{})
	require.Len(t, effects, 1)
	assert.Equal(t, entity.ID(42), effects[0].(Submit).ID)

	failed, _ := Reduce(s, SubmitFailed{Err: errors.New("500")})
	assert.Equal(t, MsgUpdateFailed, failed.FormError)

	offline, _ := Reduce(s, SubmitFailed{Err: fmt.Errorf("put: %w", domain.ErrTransport)})
	assert.Equal(t, MsgConnection, offline.FormError)
}

func TestReduce_SubmitFailedMezclaErroresDelServidor(t *testing.T) {
	s, _ := Reduce(filled(), SubmitRequested{})
	s, _ = Reduce(s, SubmitFailed{Err: domain.NewValidationError(map[string]string{
		"taxId": "CPF/CNPJ inválido",
	})})
	assert.Equal(t, "CPF/CNPJ inválido", s.Error(FieldTaxID))
}

func TestReduce_NoModificaEstadoAnterior(t *testing.T) {
	s := readyCreate()
	_, _ = Reduce(s, FieldChanged{Field: FieldName, Value: "Ana"})
	assert.Empty(t, s.Value(FieldName))
}
