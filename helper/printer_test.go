package helper

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendToPrinter(t *testing.T) {
	var received map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	t.Setenv("PRINT_BRIDGE_URL", srv.URL)

	err := SendToPrinter("<html><body>COMANDA</body></html>")
	require.NoError(t, err)
	assert.Equal(t, "<html><body>COMANDA</body></html>", received["htmlContent"])
}

func TestSendToPrinterBridgeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	t.Setenv("PRINT_BRIDGE_URL", srv.URL)

	err := SendToPrinter("<html></html>")
	assert.Error(t, err)
}

func TestSendToPrinterBridgeDown(t *testing.T) {
	// A closed server simulates the bridge not running on the cashier machine.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	t.Setenv("PRINT_BRIDGE_URL", srv.URL)

	err := SendToPrinter("<html></html>")
	assert.Error(t, err)
}
