package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/hugohenrick/pdv-varejo/internal/config"
	"github.com/hugohenrick/pdv-varejo/pkg/logger"
)

// APIError representa uma resposta de erro do backend remoto
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("erro do backend: %s", e.Status)
	}
	return fmt.Sprintf("erro do backend: %s: %s", e.Status, e.Body)
}

// Detail retorna o detalhe reportado pelo backend, ou o status HTTP
// quando o corpo está vazio
func (e *APIError) Detail() string {
	if e.Body != "" {
		return e.Body
	}
	return e.Status
}

// Client concentra as chamadas ao backend REST remoto (catálogo,
// seções, preços, vendas e compras)
type Client struct {
	http   *resty.Client
	logger logger.Logger
}

// NewClient cria o cliente autenticado para o backend
func NewClient(cfg *config.Config, log logger.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BackendBaseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(cfg.BackendTimeout).
		SetRetryCount(1).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			// somente leituras são reenviadas: um POST de venda cuja
			// resposta se perdeu pode já ter sido registrado no backend
			if resp == nil || resp.Request == nil || resp.Request.Method != http.MethodGet {
				return false
			}
			if err != nil {
				return true
			}
			return resp.StatusCode() == http.StatusTooManyRequests
		})

	if cfg.BackendToken != "" {
		httpClient.SetAuthScheme("Bearer")
		httpClient.SetAuthToken(cfg.BackendToken)
	}

	return &Client{
		http:   httpClient,
		logger: log,
	}
}

func (c *Client) doGet(ctx context.Context, path string, query map[string]string, result interface{}) error {
	req := c.http.R().SetContext(ctx).SetResult(result)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("requisição ao backend: %w", err)
	}
	if resp.IsError() {
		return apiErrorFromResponse(resp)
	}
	return nil
}

func (c *Client) doPost(ctx context.Context, path string, body, result interface{}) error {
	req := c.http.R().SetContext(ctx).SetBody(body)
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("requisição ao backend: %w", err)
	}
	if resp.IsError() {
		return apiErrorFromResponse(resp)
	}
	return nil
}

func (c *Client) doPut(ctx context.Context, path string, body, result interface{}) error {
	req := c.http.R().SetContext(ctx).SetBody(body)
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Put(path)
	if err != nil {
		return fmt.Errorf("requisição ao backend: %w", err)
	}
	if resp.IsError() {
		return apiErrorFromResponse(resp)
	}
	return nil
}

func (c *Client) doDelete(ctx context.Context, path string) error {
	resp, err := c.http.R().SetContext(ctx).Delete(path)
	if err != nil {
		return fmt.Errorf("requisição ao backend: %w", err)
	}
	if resp.IsError() {
		return apiErrorFromResponse(resp)
	}
	return nil
}

func apiErrorFromResponse(resp *resty.Response) error {
	return &APIError{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Body:       strings.TrimSpace(resp.String()),
	}
}
