package handler

import (
	"github.com/meetpoint/meetpoint-client/internal/api/store"
)

// --- Store record → HTTP response ---

func toCustomerResponse(c store.Customer) customerResponse {
	return customerResponse{
		ID:       c.ID,
		Nome:     c.Nome,
		Email:    c.Email,
		Telefone: c.Telefone,
		CPF:      c.CPF,
	}
}

// toEstablishmentResponse renders an establishment with its server-computed
// rating aggregate.
func toEstablishmentResponse(e store.Establishment, categoria string, avg float64, count int) establishmentResponse {
	return establishmentResponse{
		ID:            e.ID,
		Nome:          e.Nome,
		Email:         e.Email,
		Endereco:      e.Endereco,
		Descricao:     e.Descricao,
		Telefone:      e.Telefone,
		CNPJ:          e.CNPJ,
		TipoID:        e.TipoID,
		Categoria:     categoria,
		Imagem:        e.Imagem,
		AverageRating: avg,
		NumRatings:    count,
	}
}

func toRatingResponse(r store.Rating) ratingResponse {
	return ratingResponse{
		ID:                r.ID,
		EstabelecimentoID: r.EstabelecimentoID,
		ClienteID:         r.ClienteID,
		Nota:              r.Nota,
		Comentario:        r.Comentario,
		Data:              r.Data,
	}
}

func toCategoryResponse(c store.Category) categoryResponse {
	return categoryResponse{ID: c.ID, Nome: c.Nome, Descricao: c.Descricao}
}
