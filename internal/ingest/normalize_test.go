package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFechaAllLayouts(t *testing.T) {
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	for _, s := range []string{"2024-03-15", "15/03/2024", "15-03-2024", "03/15/2024"} {
		got, ok := ParseFecha(s)
		require.True(t, ok, s)
		assert.True(t, got.Equal(want), s)
	}
}

// The day-first slash layout is tried before month-first, so an ambiguous
// value resolves day-first. Pinned on purpose: changing the order changes
// which rows validate.
func TestParseFechaAmbiguousSlash(t *testing.T) {
	got, ok := ParseFecha("03/04/2024")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC), got)

	// Month-first only wins when day-first cannot parse.
	got, ok = ParseFecha("12/25/2024")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), got)
}

func TestParseFechaInvalid(t *testing.T) {
	_, ok := ParseFecha("mañana")
	assert.False(t, ok)
}

func TestNormalizeRow(t *testing.T) {
	c, ok := NormalizeRow(Row{
		ColCliente:  "  Acme SRL  ",
		ColMonto:    "75000",
		ColVence:    "2024-03-15",
		ColTelefono: "+54 911 4444-5555",
	})
	require.True(t, ok)
	assert.Equal(t, "Acme SRL", c.Cliente)
	assert.Equal(t, 75000.0, c.Monto)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), c.Vence)
	assert.Equal(t, "+5491144445555", c.Telefono)
}

func TestNormalizeRowExcludesBadRows(t *testing.T) {
	cases := map[string]Row{
		"cliente vacío":  {ColCliente: "   ", ColMonto: "100", ColVence: "2024-01-01"},
		"monto no num":   {ColCliente: "Acme", ColMonto: "cien", ColVence: "2024-01-01"},
		"monto vacío":    {ColCliente: "Acme", ColMonto: "", ColVence: "2024-01-01"},
		"monto negativo": {ColCliente: "Acme", ColMonto: "-5", ColVence: "2024-01-01"},
		"fecha inválida": {ColCliente: "Acme", ColMonto: "100", ColVence: "pronto"},
	}
	for name, row := range cases {
		_, ok := NormalizeRow(row)
		assert.False(t, ok, name)
	}
}

func TestNormalizeRowPhoneNeverExcludes(t *testing.T) {
	c, ok := NormalizeRow(Row{
		ColCliente:  "Acme",
		ColMonto:    "100",
		ColVence:    "2024-01-01",
		ColTelefono: "nan",
	})
	require.True(t, ok)
	assert.Empty(t, c.Telefono)
}

func TestCleanTelefono(t *testing.T) {
	assert.Equal(t, "+5491144445555", CleanTelefono("+54 911 4444-5555"))
	assert.Equal(t, "", CleanTelefono("nan"))
	assert.Equal(t, "", CleanTelefono("None"))
	assert.Equal(t, "", CleanTelefono("  "))
	assert.Equal(t, "", CleanTelefono(" - "))
}
