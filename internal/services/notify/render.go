package notify

import (
	"math"
	"strings"
	"time"

	"cobros-backend/internal/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultTemplate is the reminder sent when MSG_TEMPLATE is not configured.
const DefaultTemplate = "Hola {cliente}, le recordamos que su factura por ${monto} vence el {vence}. Por favor regularice su pago. {firma}"

// Renderer substitutes the four recognized placeholders of a configured
// template: {cliente}, {monto}, {vence}, {firma}.
type Renderer struct {
	template string
	firma    string
}

func NewRenderer(template, firma string) *Renderer {
	if template == "" {
		template = DefaultTemplate
	}
	return &Renderer{template: template, firma: firma}
}

func (r *Renderer) Render(f models.Factura) string {
	return strings.NewReplacer(
		"{cliente}", f.Cliente,
		"{monto}", FormatMonto(f.Monto),
		"{vence}", FormatVence(f.Vence),
		"{firma}", r.firma,
	).Replace(r.template)
}

var montoPrinter = message.NewPrinter(language.Spanish)

// FormatMonto renders an amount the way clients read it: rounded to a whole
// number, thousands grouped with a period (75000 -> "75.000").
func FormatMonto(monto float64) string {
	return montoPrinter.Sprintf("%d", int64(math.Round(monto)))
}

// FormatVence renders a due date as dd/mm/aaaa, zero padded.
func FormatVence(vence time.Time) string {
	return vence.Format("02/01/2006")
}
