package model

import "encoding/json"

type Operadora struct {
	RegistroAns   *string      `json:"registroAns"`
	Cnpj          string       `json:"cnpj"`
	RazaoSocial   string       `json:"razaoSocial"`
	NomeFantasia  string       `json:"nomeFantasia"`
	Modalidade    *string      `json:"modalidade"`
	Uf            *string      `json:"uf"`
	TotalDespesas *json.Number `json:"totalDespesas"`
}

// OperadoraPage is the body of GET /operadoras.
type OperadoraPage struct {
	Data       []Operadora `json:"data"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"totalPages"`
}

type DespesaHistorico struct {
	Ano         string      `json:"ano"`
	Trimestre   string      `json:"trimestre"`
	Valor       json.Number `json:"valor"`
	CodigoConta string      `json:"codigoConta"`
}

// OperadoraDetalhada is the body of GET /operadoras/{cnpj}/detalhes.
type OperadoraDetalhada struct {
	RegistroAns       string             `json:"registroAns"`
	Cnpj              string             `json:"cnpj"`
	RazaoSocial       string             `json:"razaoSocial"`
	NomeFantasia      string             `json:"nomeFantasia"`
	Modalidade        string             `json:"modalidade"`
	Uf                string             `json:"uf"`
	Cidade            string             `json:"cidade"`
	Email             string             `json:"email"`
	Telefone          string             `json:"telefone"`
	HistoricoDespesas []DespesaHistorico `json:"historicoDespesas"`
}
