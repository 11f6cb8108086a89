package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/fakhrymubarak/operadoras-api-client/internal/config"
	"github.com/fakhrymubarak/operadoras-api-client/internal/model"
	"go.uber.org/zap"
)

// OperadoraRepository defines the interface for backend data access
type OperadoraRepository interface {
	ListOperadoras(ctx context.Context, params model.ListParams) (model.Payload, error)
	GetOperadora(ctx context.Context, cnpj string) (model.Payload, error)
	GetOperadoraDetalhes(ctx context.Context, cnpj string) (model.Payload, error)
	GetTop5(ctx context.Context) (model.Payload, error)
	GetMediaPorConta(ctx context.Context) (model.Payload, error)
	Health(ctx context.Context) (model.Payload, error)
}

// operadoraRepository implements OperadoraRepository over net/http
type operadoraRepository struct {
	baseURL    string
	httpClient *http.Client
	headers    http.Header
	logger     *zap.SugaredLogger
}

type Option func(*operadoraRepository)

// WithHTTPClient replaces http.DefaultClient. A nil client is ignored.
func WithHTTPClient(c *http.Client) Option {
	return func(r *operadoraRepository) {
		if c != nil {
			r.httpClient = c
		}
	}
}

// WithBaseURL points the repository at another backend, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(r *operadoraRepository) {
		if baseURL != "" {
			r.baseURL = baseURL
		}
	}
}

// WithHeaders sets headers sent on every request.
func WithHeaders(h http.Header) Option {
	return func(r *operadoraRepository) {
		r.headers = h.Clone()
	}
}

// JSONUTF8Headers returns the content negotiation headers of the
// encoding-aware profile.
func JSONUTF8Headers() http.Header {
	h := make(http.Header)
	h.Set("Content-Type", "application/json; charset=UTF-8")
	h.Set("Accept", "application/json; charset=UTF-8")
	return h
}

// NewOperadoraRepository creates a new operadora repository instance
func NewOperadoraRepository(opts ...Option) OperadoraRepository {
	r := &operadoraRepository{
		baseURL:    config.GetOperadorasApiUrl(),
		httpClient: http.DefaultClient,
		headers:    http.Header{},
		logger:     config.GetLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *operadoraRepository) ListOperadoras(ctx context.Context, params model.ListParams) (model.Payload, error) {
	target := r.baseURL + "/operadoras?" + params.Encode()
	return r.fetch(ctx, OpListOperadoras, MsgListOperadoras, target)
}

func (r *operadoraRepository) GetOperadora(ctx context.Context, cnpj string) (model.Payload, error) {
	target := r.baseURL + "/operadoras/" + pathSegment(cnpj)
	return r.fetch(ctx, OpGetOperadora, MsgGetOperadora, target)
}

func (r *operadoraRepository) GetOperadoraDetalhes(ctx context.Context, cnpj string) (model.Payload, error) {
	target := r.baseURL + "/operadoras/" + pathSegment(cnpj) + "/detalhes"
	return r.fetch(ctx, OpGetOperadoraDetalhes, MsgGetOperadoraDetalhes, target)
}

func (r *operadoraRepository) GetTop5(ctx context.Context) (model.Payload, error) {
	return r.fetch(ctx, OpGetTop5, MsgGetTop5, r.baseURL+"/estatisticas/top5")
}

func (r *operadoraRepository) GetMediaPorConta(ctx context.Context) (model.Payload, error) {
	return r.fetch(ctx, OpGetMediaPorConta, MsgGetMediaPorConta, r.baseURL+"/estatisticas/media-conta")
}

func (r *operadoraRepository) Health(ctx context.Context) (model.Payload, error) {
	return r.fetch(ctx, OpHealth, MsgHealth, r.baseURL+"/health")
}

// fetch issues a single GET and decodes the body. The status is checked
// before the body is read; transport and decode errors are returned as is.
func (r *operadoraRepository) fetch(ctx context.Context, op, msg, target string) (model.Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return model.Payload{}, fmt.Errorf("%s: building request: %w", op, err)
	}
	for key, values := range r.headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	r.logger.Debugw("Fetching resource", "op", op, "url", target)
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return model.Payload{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reqErr := &RequestError{Op: op, Message: msg, StatusCode: resp.StatusCode}
		r.logger.Warnw("Backend returned non-success status", "url", target, "detail", reqErr.Detail())
		return model.Payload{}, reqErr
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return model.Payload{}, err
	}
	var extra json.RawMessage
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
	case err != nil:
		return model.Payload{}, err
	default:
		return model.Payload{}, ErrTrailingData
	}
	return model.Payload{Value: value}, nil
}

// pathSegment escapes s the way encodeURIComponent does for the characters
// that matter in a path: everything outside the unreserved set, spaces as %20.
func pathSegment(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
