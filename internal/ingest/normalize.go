package ingest

import (
	"strconv"
	"strings"
	"time"
)

// Accepted upload date layouts, tried in order. The day-first slash layout is
// deliberately ahead of month-first, so an ambiguous value like 03/04/2024
// parses as April 3rd.
var dateLayouts = []string{"2006-01-02", "02/01/2006", "02-01-2006", "01/02/2006"}

// Candidato is a validated upload row ready for insertion.
type Candidato struct {
	Cliente  string
	Monto    float64
	Vence    time.Time
	Telefono string
}

// NormalizeRow applies the best-effort upload policy: a row that cannot
// produce cliente, monto and vence is dropped, it never fails the batch.
// A telefono that fails to normalize just becomes absent.
func NormalizeRow(row Row) (Candidato, bool) {
	cliente := strings.TrimSpace(row[ColCliente])
	if cliente == "" {
		return Candidato{}, false
	}

	monto, err := strconv.ParseFloat(strings.TrimSpace(row[ColMonto]), 64)
	if err != nil || monto < 0 {
		return Candidato{}, false
	}

	vence, ok := ParseFecha(row[ColVence])
	if !ok {
		return Candidato{}, false
	}

	return Candidato{
		Cliente:  cliente,
		Monto:    monto,
		Vence:    vence,
		Telefono: CleanTelefono(row[ColTelefono]),
	}, true
}

// ParseFecha tries each accepted layout in order and keeps the first hit.
func ParseFecha(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CleanTelefono strips separators and collapses null-like placeholders
// ("nan", "None", empty) to absent.
func CleanTelefono(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	switch strings.ToLower(s) {
	case "", "nan", "none":
		return ""
	}
	return s
}
