package model

import "encoding/json"

// Top5 is the body of GET /estatisticas/top5.
type Top5 struct {
	Data  []Operadora `json:"data"`
	Title string      `json:"title"`
}

type EstatisticaConta struct {
	CodigoConta   string      `json:"codigoConta"`
	MediaGastos   json.Number `json:"mediaGastos"`
	NumOperadoras int         `json:"numOperadoras"`
}

// MediaPorConta is the body of GET /estatisticas/media-conta.
type MediaPorConta struct {
	Data  []EstatisticaConta `json:"data"`
	Title string             `json:"title"`
}

type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
