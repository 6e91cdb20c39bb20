package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/pdv-varejo/internal/config"
	"github.com/hugohenrick/pdv-varejo/internal/domain/pricing"
	"github.com/hugohenrick/pdv-varejo/internal/domain/sale"
	"github.com/hugohenrick/pdv-varejo/internal/domain/section"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		BackendBaseURL: server.URL,
		BackendToken:   "token-de-teste",
		BackendTimeout: 2 * time.Second,
	}
	return NewClient(cfg, nopLogger{})
}

func TestListProductsParsesResponse(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, productsPath, r.URL.Path)
		assert.Equal(t, "Bearer token-de-teste", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "unique_id": "789100", "item_name": "Arroz", "brand": "Tio João", "rate": "10.50", "quantity": 3, "active": true},
			{"id": 2, "unique_id": "789200", "item_name": "Feijão", "rate": "5.00", "quantity": 0, "active": false}
		]`))
	}))

	products, err := c.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Arroz", products[0].ItemName)
	assert.Equal(t, "789100", products[0].UniqueID)
	assert.True(t, products[0].Rate.Equal(decimal.RequireFromString("10.50")))
	assert.False(t, products[1].Active)
}

func TestListSectionsSendsChannelQuery(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, sectionsPath, r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("channel_id"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 1, "name": "Loja Centro", "channel": {"id": 2, "name": "Loja Física"}, "location": 7}]`))
	}))

	channelID := 2
	sections, err := c.ListSections(context.Background(), &channelID)
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "Loja Centro", sections[0].Name)
	assert.Equal(t, 2, sections[0].Channel.ID)
	require.NotNil(t, sections[0].Location)
	assert.Equal(t, 7, *sections[0].Location)
}

func TestChannelManagementPaths(t *testing.T) {
	var requests []string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.Method+" "+r.URL.Path)
		w.Header().Set("Content-Type", "application/json")

		switch r.Method {
		case http.MethodPost:
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Delivery", body["name"])
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id": 4, "name": "Delivery"}`))
		case http.MethodPut:
			w.Write([]byte(`{"id": 4, "name": "Entrega"}`))
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	}))

	created, err := c.CreateChannel(context.Background(), "Delivery")
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)

	updated, err := c.UpdateChannel(context.Background(), 4, "Entrega")
	require.NoError(t, err)
	assert.Equal(t, "Entrega", updated.Name)

	require.NoError(t, c.DeleteChannel(context.Background(), 4))

	assert.Equal(t, []string{
		"POST /api/sales/channels/",
		"PUT /api/sales/channels/4/",
		"DELETE /api/sales/channels/4/",
	}, requests)
}

func TestSectionManagementPaths(t *testing.T) {
	var requests []string
	var lastBody section.SectionInput
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.Method+" "+r.URL.Path)
		w.Header().Set("Content-Type", "application/json")

		switch r.Method {
		case http.MethodPost:
			lastBody = section.SectionInput{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&lastBody))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id": 9, "name": "Balcão", "channel": {"id": 2, "name": "Loja Física"}}`))
		case http.MethodPut:
			lastBody = section.SectionInput{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&lastBody))
			w.Write([]byte(`{"id": 9, "name": "Balcão 2", "channel": {"id": 2, "name": "Loja Física"}}`))
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	}))

	loc := 7
	created, err := c.CreateSection(context.Background(), section.SectionInput{Name: "Balcão", ChannelID: 2, Location: &loc})
	require.NoError(t, err)
	assert.Equal(t, 9, created.ID)
	assert.Equal(t, 2, lastBody.ChannelID)
	require.NotNil(t, lastBody.Location)
	assert.Equal(t, 7, *lastBody.Location)

	updated, err := c.UpdateSection(context.Background(), 9, section.SectionInput{Name: "Balcão 2", ChannelID: 2})
	require.NoError(t, err)
	assert.Equal(t, "Balcão 2", updated.Name)
	assert.Nil(t, lastBody.Location)

	require.NoError(t, c.DeleteSection(context.Background(), 9))

	assert.Equal(t, []string{
		"POST /api/sales/sections/",
		"PUT /api/sales/sections/9/",
		"DELETE /api/sales/sections/9/",
	}, requests)
}

func TestListPricesRequiresSectionQuery(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, pricesPath, r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("section_id"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 10, "section": 1, "product": 5, "price": "12.90"}]`))
	}))

	entries, err := c.ListPrices(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].Product)
	assert.Equal(t, "12.90", entries[0].Price)
}

func TestBulkSetPricesBody(t *testing.T) {
	var body map[string]json.RawMessage
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, pricesBulkSetPath, r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
	}))

	err := c.BulkSetPrices(context.Background(), []int{1, 3}, []pricing.BulkItem{{Product: 5, Price: "12.90"}})
	require.NoError(t, err)
	assert.JSONEq(t, `[1, 3]`, string(body["sections"]))
	assert.JSONEq(t, `[{"product": 5, "price": "12.90"}]`, string(body["items"]))
}

func TestCreateSaleReturnsInvoice(t *testing.T) {
	var received sale.Payload
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, salesPath, r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 9, "invoice_number": "INV-042"}`))
	}))

	payload := sale.Payload{
		Section:        1,
		Channel:        2,
		PaymentMode:    sale.PaymentCash,
		TotalAmount:    decimal.RequireFromString("24.00"),
		CustomerMobile: "11999990000",
		Items: []sale.ItemPayload{
			{Product: 1, ProductName: "Arroz", Price: decimal.RequireFromString("10.00"), Quantity: 2, Total: decimal.RequireFromString("20.00")},
		},
	}

	result, err := c.CreateSale(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, "INV-042", result.InvoiceNumber)
	assert.Equal(t, 1, received.Section)
	require.Len(t, received.Items, 1)
	assert.Equal(t, 2, received.Items[0].Quantity)
}

func TestErrorStatusProducesAPIError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "seção inválida"}`))
	}))

	_, err := c.CreateSale(context.Background(), sale.Payload{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Detail(), "seção inválida")
}

func TestCreateSaleNeverResubmitsOnLostResponse(t *testing.T) {
	var posts int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&posts, 1)

		// derruba a conexão sem responder: a venda pode ter sido
		// registrada, então o terminal não pode reenviar
		hj, ok := w.(http.Hijacker)
		require.True(t, ok)
		conn, _, err := hj.Hijack()
		require.NoError(t, err)
		conn.Close()
	}))

	_, err := c.CreateSale(context.Background(), sale.Payload{CustomerMobile: "11999990000"})
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&posts))
}

func TestGetRetriesOnTooManyRequests(t *testing.T) {
	var gets int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&gets, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))

	sales, err := c.ListSales(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sales)
	assert.Equal(t, int32(2), atomic.LoadInt32(&gets))
}

func TestNoTokenSkipsAuthorizationHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	cfg := &config.Config{
		BackendBaseURL: server.URL,
		BackendTimeout: 2 * time.Second,
	}
	c := NewClient(cfg, nopLogger{})

	sales, err := c.ListSales(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sales)
}
