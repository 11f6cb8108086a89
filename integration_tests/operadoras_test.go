package integrationtest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fakhrymubarak/operadoras-api-client/internal/config"
	"github.com/fakhrymubarak/operadoras-api-client/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type OperadorasAPITestSuite struct {
	suite.Suite
	httpServer *httptest.Server
	backend    *mockBackend
	client     *api.Client
	plain      *api.Client
}

func (suite *OperadorasAPITestSuite) SetupSuite() {
	suite.httpServer, suite.backend = runMockBackend()

	// Point the configured endpoint at the mock backend
	config.SetForTest("operadoras.api_url", suite.httpServer.URL+"/api/")
	config.ReloadConfigForTest()

	suite.client = api.New()
	suite.plain = api.New(api.WithProfile(api.ProfilePlain))
}

func (suite *OperadorasAPITestSuite) TearDownSuite() {
	config.SetForTest("operadoras.api_url", config.DefaultApiUrl)
	if suite.httpServer != nil {
		suite.httpServer.Close()
	}
}

func (suite *OperadorasAPITestSuite) SetupTest() {
	suite.backend.setFailure(0)
}

func TestOperadorasAPITestSuite(t *testing.T) {
	suite.Run(t, new(OperadorasAPITestSuite))
}

func (suite *OperadorasAPITestSuite) TestListOperadoras() {
	tests := []struct {
		name      string
		page      int
		limit     int
		q         string
		wantQuery string
		wantLen   int
	}{
		{name: "Success - first page", page: 1, limit: 20, wantQuery: "page=1&limit=20", wantLen: 1},
		{name: "Success - search by name", page: 1, limit: 10, q: "operadora", wantQuery: "page=1&limit=10&q=operadora", wantLen: 1},
		{name: "Success - search without match", page: 3, limit: 5, q: "nada", wantQuery: "page=3&limit=5&q=nada", wantLen: 0},
		{name: "Success - defaults", wantQuery: "page=1&limit=20", wantLen: 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			p, err := suite.client.GetOperadoras(context.Background(), tt.page, tt.limit, tt.q)
			assert.NoError(t, err)

			req := suite.backend.lastRequest()
			assert.Equal(t, "/api/operadoras", req.URL.Path)
			assert.Equal(t, tt.wantQuery, req.URL.RawQuery)

			var page api.OperadoraPage
			assert.NoError(t, p.Decode(&page))
			assert.Len(t, page.Data, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, "OPERADORA São Paulo", page.Data[0].RazaoSocial)
				assert.Equal(t, "SAÚDE SP", page.Data[0].NomeFantasia)
			}
		})
	}
}

func (suite *OperadorasAPITestSuite) TestGetOperadora() {
	p, err := suite.client.GetOperadora(context.Background(), knownCnpj)
	suite.NoError(err)

	var op api.Operadora
	suite.NoError(p.Decode(&op))
	suite.Equal(knownCnpj, op.Cnpj)
	suite.Equal("OPERADORA São Paulo", op.RazaoSocial)
	suite.Equal("application/json; charset=UTF-8", suite.backend.lastRequest().Header.Get("Accept"))

	_, err = suite.client.GetOperadora(context.Background(), "99999999999999")
	var reqErr *api.RequestError
	suite.True(errors.As(err, &reqErr))
	suite.Equal("error fetching operator", err.Error())
	suite.Equal(http.StatusNotFound, reqErr.StatusCode)
}

func (suite *OperadorasAPITestSuite) TestGetOperadoraDetalhes() {
	p, err := suite.client.GetOperadoraDetalhes(context.Background(), knownCnpj)
	suite.NoError(err)

	var d api.OperadoraDetalhada
	suite.NoError(p.Decode(&d))
	suite.Equal("São Paulo", d.Cidade)
	suite.Len(d.HistoricoDespesas, 1)
	suite.Equal("1500.75", d.HistoricoDespesas[0].Valor.String())
	suite.Equal("/api/operadoras/"+knownCnpj+"/detalhes", suite.backend.lastRequest().URL.Path)

	_, err = suite.client.GetOperadoraDetalhes(context.Background(), "1")
	suite.Equal("error fetching operator details", err.Error())
}

func (suite *OperadorasAPITestSuite) TestStatistics() {
	p, err := suite.client.GetTop5(context.Background())
	suite.NoError(err)
	var top api.Top5
	suite.NoError(p.Decode(&top))
	suite.Equal("Top 5 Operadoras - Maiores Despesas", top.Title)
	suite.Len(top.Data, 1)

	p, err = suite.client.GetMediaPorConta(context.Background())
	suite.NoError(err)
	var media api.MediaPorConta
	suite.NoError(p.Decode(&media))
	suite.Equal("Média de Gastos por Código de Conta", media.Title)
	suite.Equal("2500.10", media.Data[0].MediaGastos.String())
	suite.Equal(7, media.Data[0].NumOperadoras)
}

func (suite *OperadorasAPITestSuite) TestPlainProfileLeavesPayloadRaw() {
	ctx := context.Background()

	p, err := suite.plain.GetOperadoras(ctx, 1, 20, "")
	suite.NoError(err)
	var page api.OperadoraPage
	suite.NoError(p.Decode(&page))
	suite.Equal("OPERADORA "+garbledSao, page.Data[0].RazaoSocial)
	suite.Empty(suite.backend.lastRequest().Header.Get("Accept"))
	suite.Empty(suite.backend.lastRequest().Header.Get("Content-Type"))

	p, err = suite.plain.GetTop5(ctx)
	suite.NoError(err)
	var top api.Top5
	suite.NoError(p.Decode(&top))
	suite.Equal("OPERADORA "+garbledSao, top.Data[0].RazaoSocial)

	p, err = suite.plain.GetMediaPorConta(ctx)
	suite.NoError(err)
	var media api.MediaPorConta
	suite.NoError(p.Decode(&media))
	suite.Equal("MÃ©dia de Gastos por CÃ³digo de Conta", media.Title)
}

func (suite *OperadorasAPITestSuite) TestBackendFailures() {
	ctx := context.Background()
	calls := []struct {
		message string
		call    func() (api.Payload, error)
	}{
		{"error fetching operators", func() (api.Payload, error) { return suite.client.GetOperadoras(ctx, 1, 20, "") }},
		{"error fetching operator", func() (api.Payload, error) { return suite.client.GetOperadora(ctx, knownCnpj) }},
		{"error fetching operator details", func() (api.Payload, error) { return suite.client.GetOperadoraDetalhes(ctx, knownCnpj) }},
		{"error fetching statistics", func() (api.Payload, error) { return suite.client.GetTop5(ctx) }},
		{"error fetching average by account", func() (api.Payload, error) { return suite.client.GetMediaPorConta(ctx) }},
		{"error checking API health", func() (api.Payload, error) { return suite.client.Health(ctx) }},
	}

	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError} {
		suite.backend.setFailure(status)
		for _, c := range calls {
			before := suite.backend.requestCount()
			_, err := c.call()

			var reqErr *api.RequestError
			suite.Require().True(errors.As(err, &reqErr), "expected RequestError, got %v", err)
			suite.Equal(c.message, err.Error())
			suite.Equal(status, reqErr.StatusCode)
			suite.ErrorIs(err, api.ErrRequestFailed)
			suite.Equal(before+1, suite.backend.requestCount(), "expected exactly one request, no retries")
		}
	}
}

func (suite *OperadorasAPITestSuite) TestHealth() {
	p, err := suite.client.Health(context.Background())
	suite.NoError(err)
	var h api.HealthStatus
	suite.NoError(p.Decode(&h))
	suite.Equal("UP", h.Status)
}

func (suite *OperadorasAPITestSuite) TestConnectionRefused() {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := api.New(api.WithBaseURL(url + "/api"))
	_, err := c.GetTop5(context.Background())
	suite.Error(err)
	var reqErr *api.RequestError
	suite.False(errors.As(err, &reqErr))
}
