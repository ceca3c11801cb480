package notify

import (
	"testing"

	"cobros-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatMonto(t *testing.T) {
	assert.Equal(t, "75.000", FormatMonto(75000))
	assert.Equal(t, "1.234.567", FormatMonto(1234567))
	assert.Equal(t, "500", FormatMonto(500))
	assert.Equal(t, "75.001", FormatMonto(75000.50)) // rounded, not truncated
	assert.Equal(t, "0", FormatMonto(0))
}

func TestFormatVence(t *testing.T) {
	assert.Equal(t, "05/03/2024", FormatVence(fecha("2024-03-05")))
	assert.Equal(t, "15/12/2024", FormatVence(fecha("2024-12-15")))
}

func TestRenderDefaultTemplate(t *testing.T) {
	r := NewRenderer("", "Noa Cobros")
	f := models.Factura{Cliente: "Acme SRL", Monto: 75000, Vence: fecha("2024-03-05")}

	msg := r.Render(f)
	assert.Contains(t, msg, "Acme SRL")
	assert.Contains(t, msg, "$75.000")
	assert.Contains(t, msg, "05/03/2024")
	assert.Contains(t, msg, "Noa Cobros")
}

func TestRenderCustomTemplate(t *testing.T) {
	r := NewRenderer("{cliente}|{monto}|{vence}|{firma}", "Firma")
	f := models.Factura{Cliente: "Acme", Monto: 21500, Vence: fecha("2024-01-02")}

	assert.Equal(t, "Acme|21.500|02/01/2024|Firma", r.Render(f))
}
