package service

import (
	"context"

	"github.com/fakhrymubarak/operadoras-api-client/internal/config"
	"github.com/fakhrymubarak/operadoras-api-client/internal/model"
	"github.com/fakhrymubarak/operadoras-api-client/internal/mojibake"
	"github.com/fakhrymubarak/operadoras-api-client/internal/repository"
)

// Profile selects between the encoding-aware client and the plain one.
type Profile string

const (
	// ProfileEncodingAware negotiates UTF-8 JSON and repairs mojibake in
	// every string of the response.
	ProfileEncodingAware Profile = config.ProfileEncodingAware
	// ProfilePlain sends no custom headers and returns the body as decoded.
	ProfilePlain Profile = config.ProfilePlain
)

// OperadoraServiceInterface defines the interface for the operadora service
type OperadoraServiceInterface interface {
	GetOperadoras(ctx context.Context, page, limit int, q string) (model.Payload, error)
	GetOperadora(ctx context.Context, cnpj string) (model.Payload, error)
	GetOperadoraDetalhes(ctx context.Context, cnpj string) (model.Payload, error)
	GetTop5(ctx context.Context) (model.Payload, error)
	GetMediaPorConta(ctx context.Context) (model.Payload, error)
	Health(ctx context.Context) (model.Payload, error)
}

type OperadoraService struct {
	Profile       Profile
	OperadoraRepo repository.OperadoraRepository
}

// NewOperadoraService binds repo to profile. When repo is omitted or nil a
// repository is built for the profile from configuration.
func NewOperadoraService(profile Profile, repo ...repository.OperadoraRepository) *OperadoraService {
	if profile != ProfilePlain {
		profile = ProfileEncodingAware
	}
	var r repository.OperadoraRepository
	if len(repo) > 0 && repo[0] != nil {
		r = repo[0]
	} else {
		r = repository.NewOperadoraRepository(RepositoryOptions(profile)...)
	}
	return &OperadoraService{
		Profile:       profile,
		OperadoraRepo: r,
	}
}

// RepositoryOptions returns the repository options a profile implies.
func RepositoryOptions(profile Profile) []repository.Option {
	if profile == ProfilePlain {
		return nil
	}
	return []repository.Option{repository.WithHeaders(repository.JSONUTF8Headers())}
}

func (s *OperadoraService) GetOperadoras(ctx context.Context, page, limit int, q string) (model.Payload, error) {
	return s.finish(s.OperadoraRepo.ListOperadoras(ctx, model.ListParams{Page: page, Limit: limit, Query: q}))
}

func (s *OperadoraService) GetOperadora(ctx context.Context, cnpj string) (model.Payload, error) {
	return s.finish(s.OperadoraRepo.GetOperadora(ctx, cnpj))
}

func (s *OperadoraService) GetOperadoraDetalhes(ctx context.Context, cnpj string) (model.Payload, error) {
	return s.finish(s.OperadoraRepo.GetOperadoraDetalhes(ctx, cnpj))
}

func (s *OperadoraService) GetTop5(ctx context.Context) (model.Payload, error) {
	return s.finish(s.OperadoraRepo.GetTop5(ctx))
}

func (s *OperadoraService) GetMediaPorConta(ctx context.Context) (model.Payload, error) {
	return s.finish(s.OperadoraRepo.GetMediaPorConta(ctx))
}

func (s *OperadoraService) Health(ctx context.Context) (model.Payload, error) {
	return s.finish(s.OperadoraRepo.Health(ctx))
}

func (s *OperadoraService) finish(p model.Payload, err error) (model.Payload, error) {
	if err != nil {
		return model.Payload{}, err
	}
	if s.Profile == ProfilePlain {
		return p, nil
	}
	return model.Payload{Value: mojibake.Normalize(p.Value)}, nil
}
