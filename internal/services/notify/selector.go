// Package notify selects reminder candidates, renders the reminder text and
// dispatches it through the configured WhatsApp channel.
package notify

import (
	"time"

	"cobros-backend/internal/models"
)

type Modo string

const (
	ModoVencidas Modo = "vencidas"
	ModoProximas Modo = "proximas"
	ModoTodas    Modo = "todas"
)

// ParseModo maps the query value onto a mode. Anything unrecognized falls
// back to proximas, the default branch.
func ParseModo(s string) Modo {
	switch Modo(s) {
	case ModoVencidas, ModoTodas:
		return Modo(s)
	default:
		return ModoProximas
	}
}

// DefaultDias is the lookahead window applied when dias is unspecified.
const DefaultDias = 3

// Select filters the full snapshot of facturas down to reminder candidates.
// ModoVencidas trusts the stored estado snapshot; ModoProximas works from the
// due date over the inclusive window [hoy, hoy+dias]. Candidates without a
// telefono are always dropped, and insertion order is preserved.
//
// The whole table is filtered in memory per trigger. That is the documented
// ceiling of this design, fine at single-operator scale.
func Select(facturas []models.Factura, modo Modo, dias int, hoy time.Time) []models.Factura {
	hoyD := dateOnly(hoy)
	limite := hoyD.AddDate(0, 0, dias)

	var candidatos []models.Factura
	for _, f := range facturas {
		if f.Telefono == "" {
			continue
		}
		switch modo {
		case ModoVencidas:
			if f.Estado != models.EstadoVencida {
				continue
			}
		case ModoTodas:
			// everything with a phone qualifies
		default:
			v := dateOnly(f.Vence)
			if v.Before(hoyD) || v.After(limite) {
				continue
			}
		}
		candidatos = append(candidatos, f)
	}
	return candidatos
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
