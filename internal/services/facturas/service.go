package facturas

import (
	"errors"
	"io"
	"math"
	"strings"
	"time"

	"cobros-backend/internal/ingest"
	"cobros-backend/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrFechaInvalida is the strict-boundary error for direct create/update
// dates. File uploads use the permissive four-layout trial instead.
var ErrFechaInvalida = errors.New("Fecha inválida. Use aaaa-mm-dd o dd/mm/aaaa.")

var ErrMesInvalido = errors.New("Mes inválido. Use aaaa-mm.")

// Store is the persistence contract the service needs. The gorm repository
// implements it in production; tests use an in-memory fake.
type Store interface {
	List(q string) ([]models.Factura, error)
	GetByID(id uint) (*models.Factura, error)
	Create(f *models.Factura) error
	Update(id uint, fields map[string]any) (*models.Factura, error)
	Delete(id uint) error
	BulkInsert(facturas []models.Factura, batch *models.ImportBatch) error
}

type Service struct {
	store Store
	log   *logrus.Entry
}

func NewService(store Store, log *logrus.Entry) *Service {
	return &Service{store: store, log: log}
}

// DeriveEstado stamps the lifecycle state once, at insert time. Stored estado
// is a snapshot: it is not refreshed as days pass.
func DeriveEstado(vence, hoy time.Time) string {
	if dateOnly(vence).Before(dateOnly(hoy)) {
		return models.EstadoVencida
	}
	return models.EstadoPendiente
}

// ParseFechaEstricta accepts aaaa-mm-dd or dd/mm/aaaa only.
func ParseFechaEstricta(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	layout := "2006-01-02"
	if strings.Contains(s, "/") {
		layout = "02/01/2006"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, ErrFechaInvalida
	}
	return t, nil
}

func (s *Service) List(q string) ([]models.Factura, error) {
	return s.store.List(q)
}

func (s *Service) Create(cliente string, monto float64, vence time.Time, estado, telefono string) (*models.Factura, error) {
	if estado == "" {
		estado = models.EstadoPendiente
	}
	factura := &models.Factura{
		Cliente:  strings.TrimSpace(cliente),
		Monto:    monto,
		Vence:    vence,
		Estado:   estado,
		Telefono: ingest.CleanTelefono(telefono),
	}
	if err := s.store.Create(factura); err != nil {
		return nil, err
	}
	return factura, nil
}

func (s *Service) Update(id uint, fields map[string]any) (*models.Factura, error) {
	return s.store.Update(id, fields)
}

func (s *Service) Delete(id uint) error {
	return s.store.Delete(id)
}

// IngestResult is the outcome of one upload.
type IngestResult struct {
	Insertados int
	Total      int
	Data       []models.Factura
}

// IngestFile runs the whole upload pipeline: parse, normalize row by row
// (dropping the ones that fail, best effort), derive estado, insert the batch
// atomically and return the refreshed listing.
func (s *Service) IngestFile(r io.Reader, filename string, hoy time.Time) (*IngestResult, error) {
	rows, err := ingest.ReadTable(r, filename)
	if err != nil {
		return nil, err
	}

	var nuevas []models.Factura
	for _, row := range rows {
		c, ok := ingest.NormalizeRow(row)
		if !ok {
			continue
		}
		nuevas = append(nuevas, models.Factura{
			Cliente:  c.Cliente,
			Monto:    c.Monto,
			Vence:    c.Vence,
			Estado:   DeriveEstado(c.Vence, hoy),
			Telefono: c.Telefono,
		})
	}

	batch := &models.ImportBatch{
		ID:        uuid.New(),
		Filename:  filename,
		TotalRows: len(rows),
		Inserted:  len(nuevas),
	}
	if err := s.store.BulkInsert(nuevas, batch); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"batch":      batch.ID,
		"file":       filename,
		"rows":       len(rows),
		"insertados": len(nuevas),
	}).Info("archivo ingresado")

	data, err := s.store.List("")
	if err != nil {
		return nil, err
	}
	return &IngestResult{Insertados: len(nuevas), Total: len(data), Data: data}, nil
}

// Resumen aggregates one calendar month of facturas.
type Resumen struct {
	Mes           string  `json:"mes"`
	TotalFacturas int     `json:"total_facturas"`
	MontoTotal    float64 `json:"monto_total"`
	Pendientes    int     `json:"pendientes"`
	Vencidas      int     `json:"vencidas"`
	PorVencer     int     `json:"por_vencer"`
}

type Reporte struct {
	Resumen  Resumen          `json:"resumen"`
	Facturas []models.Factura `json:"facturas"`
}

// MonthlyReport summarizes the facturas due in the given aaaa-mm month
// (current month when empty). Vencidas/por vencer split on today's date over
// the stored estado, matching the listing semantics.
func (s *Service) MonthlyReport(mes string, hoy time.Time) (*Reporte, error) {
	if mes == "" {
		mes = hoy.Format("2006-01")
	}
	month, err := time.Parse("2006-01", mes)
	if err != nil {
		return nil, ErrMesInvalido
	}

	todas, err := s.store.List("")
	if err != nil {
		return nil, err
	}

	facturas := make([]models.Factura, 0)
	for _, f := range todas {
		if f.Vence.Year() == month.Year() && f.Vence.Month() == month.Month() {
			facturas = append(facturas, f)
		}
	}

	hoyD := dateOnly(hoy)
	resumen := Resumen{Mes: mes, TotalFacturas: len(facturas)}
	for _, f := range facturas {
		resumen.MontoTotal += f.Monto
		if f.Estado != models.EstadoPendiente {
			continue
		}
		resumen.Pendientes++
		if dateOnly(f.Vence).Before(hoyD) {
			resumen.Vencidas++
		} else {
			resumen.PorVencer++
		}
	}
	resumen.MontoTotal = math.Round(resumen.MontoTotal*100) / 100

	return &Reporte{Resumen: resumen, Facturas: facturas}, nil
}

// dateOnly collapses a timestamp to its calendar day in UTC so comparisons
// ignore time of day and location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
