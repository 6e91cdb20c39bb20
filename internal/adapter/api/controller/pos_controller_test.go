package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/hugohenrick/pdv-varejo/internal/domain/pricing"
	"github.com/hugohenrick/pdv-varejo/internal/domain/sale"
	"github.com/hugohenrick/pdv-varejo/internal/domain/section"
	"github.com/hugohenrick/pdv-varejo/pkg/notify"
)

type nopNotifier struct{}

func (nopNotifier) Notify(string, notify.Severity) {}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

func TestGetSectionReturnsPlainSection(t *testing.T) {
	gin.SetMode(gin.TestMode)

	manager := sale.NewManager(nopNotifier{})
	manager.SetSection(&section.Section{
		ID:      1,
		Name:    "Loja Centro",
		Channel: section.Channel{ID: 2, Name: "Loja Física"},
	}, pricing.Table{})

	ctrl := NewPosController(manager, nil, nil, nil, nil, nopLogger{})

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctrl.GetSection(ctx)

	assert.Equal(t, http.StatusOK, w.Code)
	// o corpo é a seção em si, sem envelope
	assert.JSONEq(t, `{"id": 1, "name": "Loja Centro", "channel": {"id": 2, "name": "Loja Física"}, "location": null}`, w.Body.String())
}

func TestGetSectionWithoutSelection(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := NewPosController(sale.NewManager(nopNotifier{}), nil, nil, nil, nil, nopLogger{})

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctrl.GetSection(ctx)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}
