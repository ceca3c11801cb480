package handler

import (
	"net/http"
	"strconv"
	"time"

	"cobros-backend/internal/services/notify"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type NotifyHandler struct {
	service *notify.Service
	log     *logrus.Entry
}

func NewNotifyHandler(s *notify.Service, log *logrus.Entry) *NotifyHandler {
	return &NotifyHandler{service: s, log: log}
}

// Notificar triggers one reminder run. dias is a strict boundary parameter:
// unlike upload rows, a malformed value is rejected outright.
func (h *NotifyHandler) Notificar(c *gin.Context) {
	modo := notify.ParseModo(c.DefaultQuery("modo", string(notify.ModoProximas)))

	dias, err := strconv.Atoi(c.DefaultQuery("dias", strconv.Itoa(notify.DefaultDias)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "dias inválido"})
		return
	}
	dryRun := c.Query("dry_run") == "1"

	res, err := h.service.Run(modo, dias, dryRun, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":               true,
		"total_candidatos": res.TotalCandidatos,
		"enviados_ok":      res.EnviadosOK,
		"resultados":       res.Resultados,
	})
}
