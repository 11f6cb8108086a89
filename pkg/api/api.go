// Package api is the consumer-facing client for the operadoras backend.
//
// The package-level functions share a default client built once from
// config.yaml (encoding-aware unless operadoras.profile is "plain"). Use New
// for an explicit profile, transport or backend.
package api

import (
	"context"
	"net/http"
	"sync"

	"github.com/fakhrymubarak/operadoras-api-client/internal/config"
	"github.com/fakhrymubarak/operadoras-api-client/internal/model"
	"github.com/fakhrymubarak/operadoras-api-client/internal/repository"
	"github.com/fakhrymubarak/operadoras-api-client/internal/service"
)

type (
	Payload            = model.Payload
	Operadora          = model.Operadora
	OperadoraPage      = model.OperadoraPage
	OperadoraDetalhada = model.OperadoraDetalhada
	DespesaHistorico   = model.DespesaHistorico
	Top5               = model.Top5
	MediaPorConta      = model.MediaPorConta
	EstatisticaConta   = model.EstatisticaConta
	HealthStatus       = model.HealthStatus
	RequestError       = repository.RequestError
	Profile            = service.Profile
)

const (
	ProfileEncodingAware = service.ProfileEncodingAware
	ProfilePlain         = service.ProfilePlain
)

var ErrRequestFailed = repository.ErrRequestFailed

// Client is safe for concurrent use.
type Client struct {
	svc *service.OperadoraService
}

type options struct {
	profile    Profile
	httpClient *http.Client
	baseURL    string
}

type Option func(*options)

func WithProfile(p Profile) Option {
	return func(o *options) { o.profile = p }
}

func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithBaseURL overrides the configured backend endpoint.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// New builds a client. Without options it uses the configured profile and
// endpoint over http.DefaultClient.
func New(opts ...Option) *Client {
	o := options{profile: Profile(config.GetProfile())}
	for _, opt := range opts {
		opt(&o)
	}
	repoOpts := append(service.RepositoryOptions(o.profile),
		repository.WithHTTPClient(o.httpClient),
		repository.WithBaseURL(o.baseURL),
	)
	repo := repository.NewOperadoraRepository(repoOpts...)
	return &Client{svc: service.NewOperadoraService(o.profile, repo)}
}

func (c *Client) Profile() Profile {
	return c.svc.Profile
}

// GetOperadoras lists operators. page and limit below 1 default to 1 and 20;
// an empty q lists without filtering.
func (c *Client) GetOperadoras(ctx context.Context, page, limit int, q string) (Payload, error) {
	return c.svc.GetOperadoras(ctx, page, limit, q)
}

// GetOperadora fetches one operator by CNPJ.
func (c *Client) GetOperadora(ctx context.Context, cnpj string) (Payload, error) {
	return c.svc.GetOperadora(ctx, cnpj)
}

func (c *Client) GetOperadoraDetalhes(ctx context.Context, cnpj string) (Payload, error) {
	return c.svc.GetOperadoraDetalhes(ctx, cnpj)
}

func (c *Client) GetTop5(ctx context.Context) (Payload, error) {
	return c.svc.GetTop5(ctx)
}

func (c *Client) GetMediaPorConta(ctx context.Context) (Payload, error) {
	return c.svc.GetMediaPorConta(ctx)
}

func (c *Client) Health(ctx context.Context) (Payload, error) {
	return c.svc.Health(ctx)
}

var (
	defaultClient *Client
	defaultOnce   sync.Once
)

// Default returns the shared package-level client.
func Default() *Client {
	defaultOnce.Do(func() {
		defaultClient = New()
	})
	return defaultClient
}

func GetOperadoras(ctx context.Context, page, limit int, q string) (Payload, error) {
	return Default().GetOperadoras(ctx, page, limit, q)
}

func GetOperadora(ctx context.Context, cnpj string) (Payload, error) {
	return Default().GetOperadora(ctx, cnpj)
}

func GetOperadoraDetalhes(ctx context.Context, cnpj string) (Payload, error) {
	return Default().GetOperadoraDetalhes(ctx, cnpj)
}

func GetTop5(ctx context.Context) (Payload, error) {
	return Default().GetTop5(ctx)
}

func GetMediaPorConta(ctx context.Context) (Payload, error) {
	return Default().GetMediaPorConta(ctx)
}

func Health(ctx context.Context) (Payload, error) {
	return Default().Health(ctx)
}
