package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"modelforge/internal/config"
)

func TestNew_UsesConfiguredTimeouts(t *testing.T) {
	srv := New(config.ServerConfig{
		Port:         9090,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  time.Minute,
	}, http.NewServeMux(), zap.NewNop())

	assert.Equal(t, ":9090", srv.httpServer.Addr)
	assert.Equal(t, 5*time.Second, srv.httpServer.ReadTimeout)
	assert.Equal(t, 15*time.Second, srv.httpServer.WriteTimeout)
	assert.Equal(t, time.Minute, srv.httpServer.IdleTimeout)
}

func TestNew_ZeroTimeoutsFallBack(t *testing.T) {
	srv := New(config.ServerConfig{Port: 8080}, http.NewServeMux(), zap.NewNop())

	assert.Equal(t, defaultReadTimeout, srv.httpServer.ReadTimeout)
	assert.Equal(t, defaultWriteTimeout, srv.httpServer.WriteTimeout)
	assert.Equal(t, defaultIdleTimeout, srv.httpServer.IdleTimeout)
}
