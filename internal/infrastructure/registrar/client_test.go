package registrar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/chems34/IA-webgen/internal/config"
)

const checkOKAvailable = `<?xml version="1.0" encoding="utf-8"?>
<ApiResponse Status="OK">
  <CommandResponse Type="namecheap.domains.check">
    <DomainCheckResult Domain="ma-boutique.com" Available="true" />
  </CommandResponse>
</ApiResponse>`

const checkOKTaken = `<?xml version="1.0" encoding="utf-8"?>
<ApiResponse Status="OK">
  <CommandResponse Type="namecheap.domains.check">
    <DomainCheckResult Domain="taken-example.com" Available="false" />
  </CommandResponse>
</ApiResponse>`

const checkError = `<?xml version="1.0" encoding="utf-8"?>
<ApiResponse Status="ERROR">
  <Errors><Error Number="1011102">API Key is invalid</Error></Errors>
</ApiResponse>`

func newTestClient(baseURL, whoisURL string) *Client {
	return NewClient(config.RegistrarConfig{
		APIUser:  "apiuser",
		APIKey:   "apikey",
		BaseURL:  baseURL,
		WhoisURL: whoisURL,
	}, zap.NewNop())
}

func TestCheckAvailability_PrimaryAvailable(t *testing.T) {
	registrarSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "namecheap.domains.check", r.URL.Query().Get("Command"))
		assert.Equal(t, "ma-boutique.com", r.URL.Query().Get("DomainList"))
		w.Write([]byte(checkOKAvailable))
	}))
	defer registrarSrv.Close()

	c := newTestClient(registrarSrv.URL, "http://unused.invalid")

	result := c.CheckAvailability(context.Background(), "ma-boutique.com")
	assert.True(t, result.Available)
	assert.Equal(t, "ma-boutique.com", result.Domain)
	assert.Equal(t, DefaultDomainPrice, result.PriceHint)
}

func TestCheckAvailability_PrimaryTaken(t *testing.T) {
	registrarSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(checkOKTaken))
	}))
	defer registrarSrv.Close()

	c := newTestClient(registrarSrv.URL, "http://unused.invalid")

	result := c.CheckAvailability(context.Background(), "taken-example.com")
	assert.False(t, result.Available)
	assert.Zero(t, result.PriceHint)
}

func TestCheckAvailability_FallsBackToWhois(t *testing.T) {
	registrarSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(checkError))
	}))
	defer registrarSrv.Close()

	whoisCalled := false
	whoisSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		whoisCalled = true
		assert.Equal(t, "registered.com", r.URL.Query().Get("whois"))
		w.Write([]byte(`{"create_date": "2001-05-14"}`))
	}))
	defer whoisSrv.Close()

	c := newTestClient(registrarSrv.URL, whoisSrv.URL)

	result := c.CheckAvailability(context.Background(), "registered.com")
	assert.True(t, whoisCalled)
	assert.False(t, result.Available)
}

func TestCheckAvailability_WhoisNoCreateDateMeansAvailable(t *testing.T) {
	registrarSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer registrarSrv.Close()

	whoisSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer whoisSrv.Close()

	c := newTestClient(registrarSrv.URL, whoisSrv.URL)

	result := c.CheckAvailability(context.Background(), "fresh-name.com")
	assert.True(t, result.Available)
	assert.Equal(t, DefaultDomainPrice, result.PriceHint)
}

func TestCheckAvailability_FailOpenWhenEverythingFails(t *testing.T) {
	// Both endpoints unreachable: the check must still report available.
	c := newTestClient("http://127.0.0.1:1", "http://127.0.0.1:1")

	result := c.CheckAvailability(context.Background(), "anything.com")
	assert.True(t, result.Available)
	assert.Equal(t, "anything.com", result.Domain)
	assert.Equal(t, DefaultDomainPrice, result.PriceHint)
}

func TestCheckAvailability_NoCredentialsSkipsPrimary(t *testing.T) {
	primaryCalled := false
	registrarSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		primaryCalled = true
	}))
	defer registrarSrv.Close()

	whoisSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"create_date": "2010-01-01"}`))
	}))
	defer whoisSrv.Close()

	c := NewClient(config.RegistrarConfig{
		BaseURL:  registrarSrv.URL,
		WhoisURL: whoisSrv.URL,
	}, zap.NewNop())

	result := c.CheckAvailability(context.Background(), "registered.com")
	assert.False(t, primaryCalled)
	assert.False(t, result.Available)
}
