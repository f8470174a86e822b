package brdoc_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/pkg/brdoc"
)

func TestValidateCPF(t *testing.T) {
	assert.NoError(t, brdoc.ValidateCPF("529.982.247-25"))
	assert.Error(t, brdoc.ValidateCPF("529.982.247-26"), "dígito verificador alterado")
	assert.Error(t, brdoc.ValidateCPF("111.111.111-11"), "dígitos repetidos")
	assert.Error(t, brdoc.ValidateCPF("1234"))
}

func TestValidateCNPJ(t *testing.T) {
	assert.NoError(t, brdoc.ValidateCNPJ("11.222.333/0001-81"))
	assert.Error(t, brdoc.ValidateCNPJ("11.222.333/0001-82"))
	assert.Error(t, brdoc.ValidateCNPJ("00000000000000"))
}

func TestValidateTaxID_EligePorLongitud(t *testing.T) {
	assert.NoError(t, brdoc.ValidateTaxID("52998224725"))
	assert.NoError(t, brdoc.ValidateTaxID("11222333000181"))
	assert.Error(t, brdoc.ValidateTaxID("123456789012"))
	assert.True(t, brdoc.IsOrganization("11222333000181"))
	assert.False(t, brdoc.IsOrganization("52998224725"))
}

func TestFormatBRL(t *testing.T) {
	out := brdoc.FormatBRL(decimal.RequireFromString("1234.5"))
	assert.Contains(t, out, "R$")
	assert.Contains(t, out, "1.234,50")
}

func TestParseAmount(t *testing.T) {
	cases := map[string]string{
		"1500.50":     "1500.5",
		"1500,50":     "1500.5",
		"1.500,50":    "1500.5",
		"R$ 1.500,50": "1500.5",
		"0":           "0",
	}
	for in, want := range cases {
		got, err := brdoc.ParseAmount(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got.String(), in)
	}

	_, err := brdoc.ParseAmount("abc")
	assert.Error(t, err)
}
