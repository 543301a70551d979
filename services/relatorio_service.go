package services

import (
	"errors"
	"time"

	"github.com/Bruno-Signori/v0-site-estacionamento/entity"
	"github.com/Bruno-Signori/v0-site-estacionamento/repository"
)

var ErrDataInvalida = errors.New("data inválida, use AAAA-MM-DD")

type RelatorioService struct {
	Repo *repository.PedidoRepository
}

func NewRelatorioService(repo *repository.PedidoRepository) *RelatorioService {
	return &RelatorioService{Repo: repo}
}

// ResumoDia é o fechamento do dia: quantos pedidos fecharam, quantos foram
// cancelados e quanto entrou (soma só dos fechados).
type ResumoDia struct {
	Data         string          `json:"data"`
	Fechados     int             `json:"fechados"`
	Cancelados   int             `json:"cancelados"`
	TotalFechado int64           `json:"totalFechado"`
	Pedidos      []entity.Pedido `json:"pedidos"`
}

// Resumo expande a data pro intervalo 00:00:00–23:59:59.999 e consulta os
// pedidos encerrados abertos naquele dia.
func (s *RelatorioService) Resumo(data string) (*ResumoDia, error) {
	dia, err := time.ParseInLocation("2006-01-02", data, time.Local)
	if err != nil {
		return nil, ErrDataInvalida
	}

	inicio := dia
	fim := dia.Add(24*time.Hour - time.Millisecond)

	pedidos, err := s.Repo.ListFechados(inicio, fim)
	if err != nil {
		return nil, err
	}

	out := &ResumoDia{Data: data, Pedidos: pedidos}
	for _, p := range pedidos {
		switch p.Status {
		case entity.StatusFechado:
			out.Fechados++
			out.TotalFechado += p.Total
		case entity.StatusCancelado:
			out.Cancelados++
		}
	}
	return out, nil
}
