package notify

import (
	"testing"
	"time"

	"cobros-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fecha(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func factura(id uint, vence string, estado, telefono string) models.Factura {
	return models.Factura{ID: id, Cliente: "Cliente", Monto: 100, Vence: fecha(vence), Estado: estado, Telefono: telefono}
}

func TestSelectProximasWindow(t *testing.T) {
	hoy := fecha("2024-01-10")
	facturas := []models.Factura{
		factura(1, "2024-01-09", models.EstadoVencida, "111"),   // before hoy
		factura(2, "2024-01-10", models.EstadoPendiente, "222"), // lower bound
		factura(3, "2024-01-12", models.EstadoPendiente, "333"),
		factura(4, "2024-01-13", models.EstadoPendiente, "444"), // upper bound
		factura(5, "2024-01-14", models.EstadoPendiente, "555"), // past window
	}

	got := Select(facturas, ModoProximas, 3, hoy)
	require.Len(t, got, 3)
	assert.Equal(t, uint(2), got[0].ID)
	assert.Equal(t, uint(3), got[1].ID)
	assert.Equal(t, uint(4), got[2].ID)
}

// ModoVencidas trusts the stored snapshot: an invoice whose due date already
// passed but whose estado was stamped pendiente at insert time is NOT
// selected.
func TestSelectVencidasUsesStoredEstado(t *testing.T) {
	hoy := fecha("2024-01-10")
	facturas := []models.Factura{
		factura(1, "2024-01-01", models.EstadoVencida, "111"),
		factura(2, "2024-01-02", models.EstadoPendiente, "222"), // stale snapshot
		factura(3, "2024-02-01", models.EstadoPendiente, "333"),
	}

	got := Select(facturas, ModoVencidas, DefaultDias, hoy)
	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].ID)
}

func TestSelectTodas(t *testing.T) {
	facturas := []models.Factura{
		factura(1, "2023-01-01", models.EstadoVencida, "111"),
		factura(2, "2030-01-01", models.EstadoPendiente, "222"),
	}
	got := Select(facturas, ModoTodas, DefaultDias, fecha("2024-01-10"))
	assert.Len(t, got, 2)
}

func TestSelectAlwaysExcludesSinTelefono(t *testing.T) {
	hoy := fecha("2024-01-10")
	facturas := []models.Factura{
		factura(1, "2024-01-10", models.EstadoPendiente, ""),
		factura(2, "2024-01-01", models.EstadoVencida, ""),
	}

	for _, modo := range []Modo{ModoProximas, ModoVencidas, ModoTodas} {
		assert.Empty(t, Select(facturas, modo, DefaultDias, hoy), string(modo))
	}
}

func TestSelectPreservesOrder(t *testing.T) {
	facturas := []models.Factura{
		factura(7, "2024-01-11", models.EstadoPendiente, "111"),
		factura(2, "2024-01-10", models.EstadoPendiente, "222"),
	}
	got := Select(facturas, ModoProximas, 3, fecha("2024-01-10"))
	require.Len(t, got, 2)
	assert.Equal(t, uint(7), got[0].ID)
}

func TestParseModo(t *testing.T) {
	assert.Equal(t, ModoVencidas, ParseModo("vencidas"))
	assert.Equal(t, ModoTodas, ParseModo("todas"))
	assert.Equal(t, ModoProximas, ParseModo("proximas"))
	assert.Equal(t, ModoProximas, ParseModo("cualquier-cosa"))
}
