package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cobros-backend/internal/ingest"
	"cobros-backend/internal/models"
	"cobros-backend/internal/services/facturas"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type FacturaHandler struct {
	service *facturas.Service
	log     *logrus.Entry
}

func NewFacturaHandler(s *facturas.Service, log *logrus.Entry) *FacturaHandler {
	return &FacturaHandler{service: s, log: log}
}

func (h *FacturaHandler) List(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	data, err := h.service.List(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}

func (h *FacturaHandler) Create(c *gin.Context) {
	var payload struct {
		Cliente  string   `json:"cliente"`
		Monto    *float64 `json:"monto"`
		Vence    string   `json:"vence"`
		Estado   string   `json:"estado"`
		Telefono string   `json:"telefono"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload inválido"})
		return
	}

	if strings.TrimSpace(payload.Cliente) == "" || payload.Monto == nil || payload.Vence == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cliente, monto, vence son obligatorios"})
		return
	}
	if *payload.Monto < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "monto inválido"})
		return
	}
	vence, err := facturas.ParseFechaEstricta(payload.Vence)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	factura, err := h.service.Create(payload.Cliente, *payload.Monto, vence, payload.Estado, payload.Telefono)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, factura)
}

func (h *FacturaHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload struct {
		Cliente  *string  `json:"cliente"`
		Monto    *float64 `json:"monto"`
		Vence    *string  `json:"vence"`
		Estado   *string  `json:"estado"`
		Telefono *string  `json:"telefono"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload inválido"})
		return
	}

	fields := map[string]any{}
	if payload.Cliente != nil {
		fields["cliente"] = strings.TrimSpace(*payload.Cliente)
	}
	if payload.Monto != nil {
		if *payload.Monto < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "monto inválido"})
			return
		}
		fields["monto"] = *payload.Monto
	}
	if payload.Vence != nil {
		vence, err := facturas.ParseFechaEstricta(*payload.Vence)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		fields["vence"] = vence
	}
	if payload.Estado != nil {
		fields["estado"] = *payload.Estado
	}
	if payload.Telefono != nil {
		fields["telefono"] = ingest.CleanTelefono(*payload.Telefono)
	}

	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nada que actualizar"})
		return
	}

	factura, err := h.service.Update(id, fields)
	if errors.Is(err, models.ErrNoExiste) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No existe"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, factura)
}

func (h *FacturaHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.service.Delete(id)
	if errors.Is(err, models.ErrNoExiste) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No existe"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Upload ingests a CSV/XLSX of facturas. File-level problems are a 400;
// bad rows inside an accepted file are silently dropped.
func (h *FacturaHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Adjunte el archivo en el campo 'file'."})
		return
	}
	defer file.Close()

	res, err := h.service.IngestFile(file, header.Filename, time.Now())
	if err != nil {
		h.log.WithError(err).WithField("file", header.Filename).Warn("upload rechazado")
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"insertados": res.Insertados,
		"total":      res.Total,
		"data":       res.Data,
	})
}

func (h *FacturaHandler) ReporteMensual(c *gin.Context) {
	reporte, err := h.service.MonthlyReport(strings.TrimSpace(c.Query("mes")), time.Now())
	if errors.Is(err, facturas.ErrMesInvalido) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reporte)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return 0, false
	}
	return uint(id), true
}
