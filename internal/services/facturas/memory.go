package facturas

import (
	"sort"
	"strings"
	"sync"
	"time"

	"cobros-backend/internal/models"
)

// MemoryStore is an in-memory Store used by tests and local experiments.
// It mirrors the ordering and partial-update semantics of the gorm
// repository.
type MemoryStore struct {
	mu       sync.Mutex
	facturas []models.Factura
	batches  []models.ImportBatch
	nextID   uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (m *MemoryStore) List(q string) ([]models.Factura, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	q = strings.ToLower(q)
	out := make([]models.Factura, 0, len(m.facturas))
	for _, f := range m.facturas {
		if q == "" || strings.Contains(strings.ToLower(f.Cliente), q) {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Vence.Equal(out[j].Vence) {
			return out[i].Vence.Before(out[j].Vence)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *MemoryStore) GetByID(id uint) (*models.Factura, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, f := range m.facturas {
		if f.ID == id {
			copia := f
			return &copia, nil
		}
	}
	return nil, models.ErrNoExiste
}

func (m *MemoryStore) Create(f *models.Factura) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.insertLocked(f)
	return nil
}

func (m *MemoryStore) Update(id uint, fields map[string]any) (*models.Factura, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.facturas {
		if m.facturas[i].ID != id {
			continue
		}
		f := &m.facturas[i]
		for col, val := range fields {
			switch col {
			case "cliente":
				f.Cliente = val.(string)
			case "monto":
				f.Monto = val.(float64)
			case "vence":
				f.Vence = val.(time.Time)
			case "estado":
				f.Estado = val.(string)
			case "telefono":
				f.Telefono = val.(string)
			}
		}
		copia := *f
		return &copia, nil
	}
	return nil, models.ErrNoExiste
}

func (m *MemoryStore) Delete(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.facturas {
		if m.facturas[i].ID == id {
			m.facturas = append(m.facturas[:i], m.facturas[i+1:]...)
			return nil
		}
	}
	return models.ErrNoExiste
}

func (m *MemoryStore) BulkInsert(facturas []models.Factura, batch *models.ImportBatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range facturas {
		m.insertLocked(&facturas[i])
	}
	batch.CreatedAt = time.Now()
	m.batches = append(m.batches, *batch)
	return nil
}

func (m *MemoryStore) Batches() []models.ImportBatch {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.ImportBatch(nil), m.batches...)
}

func (m *MemoryStore) insertLocked(f *models.Factura) {
	f.ID = m.nextID
	m.nextID++
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}
	m.facturas = append(m.facturas, *f)
}
