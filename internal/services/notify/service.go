package notify

import (
	"encoding/json"
	"time"

	"cobros-backend/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// maxResultados caps the per-candidate breakdown in the response; counters
// still cover the whole run.
const maxResultados = 100

type Store interface {
	List(q string) ([]models.Factura, error)
}

type LogStore interface {
	Create(log *models.NotificationLog) error
}

type Sender interface {
	Send(phone, mensaje string) DispatchResult
}

type Service struct {
	store    Store
	logs     LogStore
	renderer *Renderer
	sender   Sender
	log      *logrus.Entry
}

func NewService(store Store, logs LogStore, renderer *Renderer, sender Sender, log *logrus.Entry) *Service {
	return &Service{store: store, logs: logs, renderer: renderer, sender: sender, log: log}
}

// Resultado is one candidate's entry in the trigger response.
type Resultado struct {
	ID       uint            `json:"id"`
	Cliente  string          `json:"cliente"`
	Telefono string          `json:"telefono"`
	Mensaje  string          `json:"mensaje"`
	Sent     bool            `json:"sent"`
	DryRun   bool            `json:"dry_run,omitempty"`
	Resp     *DispatchResult `json:"resp,omitempty"`
}

type RunResult struct {
	TotalCandidatos int
	EnviadosOK      int
	Resultados      []Resultado
}

// Run executes one notification trigger: read the full snapshot, select
// candidates, render each message and dispatch sequentially. A failed send
// never stops the loop. In dry-run the dispatcher is bypassed entirely.
func (s *Service) Run(modo Modo, dias int, dryRun bool, hoy time.Time) (*RunResult, error) {
	todas, err := s.store.List("")
	if err != nil {
		return nil, err
	}

	candidatos := Select(todas, modo, dias, hoy)
	out := &RunResult{
		TotalCandidatos: len(candidatos),
		Resultados:      make([]Resultado, 0, min(len(candidatos), maxResultados)),
	}

	for _, f := range candidatos {
		mensaje := s.renderer.Render(f)
		res := Resultado{ID: f.ID, Cliente: f.Cliente, Telefono: f.Telefono, Mensaje: mensaje}

		if dryRun {
			res.DryRun = true
		} else {
			dr := s.sender.Send(f.Telefono, mensaje)
			res.Sent = dr.Sent
			res.Resp = &dr
			if dr.Sent {
				out.EnviadosOK++
			}
		}

		s.registrar(f, res)
		if len(out.Resultados) < maxResultados {
			out.Resultados = append(out.Resultados, res)
		}
	}

	s.log.WithFields(logrus.Fields{
		"modo":        string(modo),
		"dry_run":     dryRun,
		"candidatos":  out.TotalCandidatos,
		"enviados_ok": out.EnviadosOK,
	}).Info("notificaciones procesadas")

	return out, nil
}

func (s *Service) registrar(f models.Factura, res Resultado) {
	if s.logs == nil {
		return
	}

	detalle, _ := json.Marshal(res.Resp)
	entry := &models.NotificationLog{
		ID:        uuid.New(),
		FacturaID: f.ID,
		Telefono:  f.Telefono,
		Mensaje:   res.Mensaje,
		Enviado:   res.Sent,
		DryRun:    res.DryRun,
		Detalle:   detalle,
	}
	if err := s.logs.Create(entry); err != nil {
		s.log.WithError(err).Warn("no se pudo registrar la notificación")
	}
}
