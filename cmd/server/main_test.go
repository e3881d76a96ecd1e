package main

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"investreports/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ReturnsServeErrorWithRoutesMounted(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := config.Config{
		Host: "127.0.0.1", Port: "1", Name: "nothing", User: "nobody", Password: "x",
		SSLMode: "disable", Driver: config.DriverPQ, MaxOpenConns: 2, MaxIdleConns: 1,
	}

	listenErr := errors.New("listen tcp :8080: bind: address already in use")
	var served bool
	err := run(cfg, logger, func(rg *gin.Engine) error {
		served = true

		w := httptest.NewRecorder()
		rg.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		rg.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/investors/portfolio", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		return listenErr
	})

	require.True(t, served)
	assert.ErrorIs(t, err, listenErr)
}

func TestRun_OpenFailure(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	err := run(config.Config{Driver: "nosuchdriver"}, logger, func(*gin.Engine) error {
		t.Fatal("serve must not be called")
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db open failed")
}
