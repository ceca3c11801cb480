package notify

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return logrus.NewEntry(l)
}

func TestDispatcherSendOK(t *testing.T) {
	var gotAuth string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"queued"}`))
	}))
	defer srv.Close()

	d := NewDispatcher(srv.URL, "secreto", testLogger())
	res := d.Send("+5491144445555", "hola")

	assert.True(t, res.Sent)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, `{"status":"queued"}`, res.Body)
	assert.Equal(t, "Bearer secreto", gotAuth)
	assert.Equal(t, "+5491144445555", gotBody["phone"])
	assert.Equal(t, "hola", gotBody["message"])
}

func TestDispatcherSendProviderError(t *testing.T) {
	long := strings.Repeat("x", 1000)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(long))
	}))
	defer srv.Close()

	d := NewDispatcher(srv.URL, "secreto", testLogger())
	res := d.Send("123", "hola")

	assert.False(t, res.Sent)
	assert.Equal(t, http.StatusBadGateway, res.StatusCode)
	assert.Len(t, res.Body, maxExcerpt)
}

func TestDispatcherSendTransportError(t *testing.T) {
	d := NewDispatcher("http://127.0.0.1:1", "secreto", testLogger())
	res := d.Send("123", "hola")

	assert.False(t, res.Sent)
	assert.Zero(t, res.StatusCode)
	assert.NotEmpty(t, res.Error)
}

func TestDispatcherMissingCredential(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	d := NewDispatcher(srv.URL, "", testLogger())
	res := d.Send("123", "hola")

	require.False(t, res.Sent)
	assert.Contains(t, res.Error, "WA_API_KEY")
	assert.Zero(t, calls)
}
