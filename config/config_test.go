package config

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	os.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	os.Setenv("DB_NAME", "test")
	conf := New()

	assert.NotEmpty(t, conf)
	assert.Equal(t, "mongodb://127.0.0.1:27017", conf.URL)
	assert.Equal(t, "test", conf.DatabaseName)
}

func TestNewDefaultsCorsOriginsToAll(t *testing.T) {
	os.Unsetenv("CORS_ORIGINS")
	conf := New()

	assert.Equal(t, []string{"*"}, conf.CorsOrigins)
}

func TestCorsOriginsSplitsAndTrims(t *testing.T) {
	origins := corsOrigins("https://a.example.com, https://b.example.com ,")

	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, origins)
}

func TestCorsOriginsEmptyListFallsBack(t *testing.T) {
	assert.Equal(t, []string{"*"}, corsOrigins(" , "))
}

func TestErrorStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorStatus("error it borked", http.StatusBadRequest, rr, errors.New("bad request"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, `{"response": "error it borked, bad request"}`, rr.Body.String())
}
