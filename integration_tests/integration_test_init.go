package integrationtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// mockBackend emulates the operadoras REST API. Strings are served
// double-encoded so the encoding-aware client has something to repair.
type mockBackend struct {
	mu       sync.Mutex
	requests []*http.Request
	failWith int
}

const (
	knownCnpj  = "12345678000190"
	garbledSao = "SÃ£o Paulo"
)

func (b *mockBackend) record(r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = append(b.requests, r.Clone(r.Context()))
}

func (b *mockBackend) lastRequest() *http.Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.requests) == 0 {
		return nil
	}
	return b.requests[len(b.requests)-1]
}

func (b *mockBackend) requestCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

func (b *mockBackend) setFailure(status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failWith = status
}

func (b *mockBackend) failure() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.failWith
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (b *mockBackend) handler() http.Handler {
	mux := http.NewServeMux()
	operadora := map[string]any{
		"registroAns":  "326305",
		"cnpj":         knownCnpj,
		"razaoSocial":  "OPERADORA " + garbledSao,
		"nomeFantasia": "SAÃ\u009aDE SP",
		"uf":           "SP",
	}

	mux.HandleFunc("GET /api/operadoras", func(w http.ResponseWriter, r *http.Request) {
		data := []any{operadora}
		if q := r.URL.Query().Get("q"); q != "" && !strings.Contains("operadora "+knownCnpj, strings.ToLower(q)) {
			data = []any{}
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"data":       data,
			"total":      len(data),
			"page":       json.Number(r.URL.Query().Get("page")),
			"limit":      json.Number(r.URL.Query().Get("limit")),
			"totalPages": 1,
		})
	})
	mux.HandleFunc("GET /api/operadoras/{cnpj}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("cnpj") != knownCnpj {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, operadora)
	})
	mux.HandleFunc("GET /api/operadoras/{cnpj}/detalhes", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("cnpj") != knownCnpj {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"registroAns": "326305",
			"cnpj":        knownCnpj,
			"razaoSocial": "OPERADORA " + garbledSao,
			"cidade":      garbledSao,
			"historicoDespesas": []any{
				map[string]any{"ano": "2024", "trimestre": "1", "valor": json.Number("1500.75"), "codigoConta": "411"},
			},
		})
	})
	mux.HandleFunc("GET /api/estatisticas/top5", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"data":  []any{operadora},
			"title": "Top 5 Operadoras - Maiores Despesas",
		})
	})
	mux.HandleFunc("GET /api/estatisticas/media-conta", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"data": []any{
				map[string]any{"codigoConta": "411", "mediaGastos": json.Number("2500.10"), "numOperadoras": 7},
			},
			"title": "MÃ©dia de Gastos por CÃ³digo de Conta",
		})
	})
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "UP", "message": "API rodando"})
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.record(r)
		if status := b.failure(); status != 0 {
			http.Error(w, "<html>backend down</html>", status)
			return
		}
		mux.ServeHTTP(w, r)
	})
}

func runMockBackend() (*httptest.Server, *mockBackend) {
	b := &mockBackend{}
	return httptest.NewServer(b.handler()), b
}
