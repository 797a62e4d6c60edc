package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Error(string, ...interface{}) {}

type fakePinger struct {
	err error
}

func (f fakePinger) PingContext(context.Context) error { return f.err }

func TestHandler_Handle(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(fakePinger{}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	NewHandler(fakePinger{err: errors.New("down")}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
