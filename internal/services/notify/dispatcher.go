package notify

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// dispatchTimeout bounds each outbound call; a hung provider stalls a single
// candidate for at most this long.
const dispatchTimeout = 15 * time.Second

// maxExcerpt caps how much of the provider response is kept for diagnostics.
const maxExcerpt = 300

// DispatchResult is the per-candidate outcome of one send attempt.
type DispatchResult struct {
	Sent       bool   `json:"sent"`
	StatusCode int    `json:"status_code,omitempty"`
	Body       string `json:"body,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Dispatcher performs a single outbound POST per candidate. No retries:
// a failure is recorded and the loop moves on.
type Dispatcher struct {
	apiURL string
	apiKey string
	client *http.Client
	log    *logrus.Entry
}

func NewDispatcher(apiURL, apiKey string, log *logrus.Entry) *Dispatcher {
	return &Dispatcher{
		apiURL: apiURL,
		apiKey: apiKey,
		client: &http.Client{Timeout: dispatchTimeout},
		log:    log,
	}
}

// Send posts one message to the provider. A missing credential is a soft
// failure, never a crash.
func (d *Dispatcher) Send(phone, mensaje string) DispatchResult {
	if d.apiKey == "" {
		return DispatchResult{Error: "WA_API_KEY no configurada"}
	}

	payload, _ := json.Marshal(map[string]string{"phone": phone, "message": mensaje})
	req, err := http.NewRequest(http.MethodPost, d.apiURL, bytes.NewReader(payload))
	if err != nil {
		return DispatchResult{Error: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+d.apiKey)

	resp, err := d.client.Do(req)
	if err != nil {
		d.log.WithError(err).Warn("envío fallido")
		return DispatchResult{Error: err.Error()}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxExcerpt))
	result := DispatchResult{
		Sent:       resp.StatusCode >= 200 && resp.StatusCode < 300,
		StatusCode: resp.StatusCode,
		Body:       string(raw),
	}
	if !result.Sent {
		d.log.WithField("status", resp.StatusCode).Warn("proveedor respondió error")
	}
	return result
}
