package gateway

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/meetpoint/meetpoint-client/internal/core/domain"
)

// The backend serves two field-naming conventions for the same entities
// (legacy English keys vs the Portuguese contract). Each payload struct below
// declares both key sets and its toDomain adapter applies the policy in one
// place per field: prefer the first populated key, fall back to the other,
// else a defined default. A missing optional field never fails decoding.

// flexID decodes a JSON string or number into a string identifier.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// --- Account payloads ---

type userPayload struct {
	ID     flexID `json:"id"`
	Nome   string `json:"nome"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

func (p userPayload) toDomain(kind domain.AccountKind) domain.User {
	u := domain.User{
		ID:     string(p.ID),
		Name:   firstNonEmpty(p.Nome, p.Name),
		Email:  p.Email,
		Avatar: p.Avatar,
		Kind:   kind,
	}
	if kind == domain.AccountBusiness {
		u.BusinessID = u.ID
	}
	return u
}

type customerAuthResponse struct {
	Cliente userPayload `json:"cliente"`
	Token   string      `json:"token"`
}

type businessAuthResponse struct {
	Estabelecimento userPayload `json:"estabelecimento"`
	Token           string      `json:"token"`
}

// --- Establishment payloads ---

type establishmentPayload struct {
	ID            flexID  `json:"id"`
	Nome          string  `json:"nome"`
	Name          string  `json:"name"`
	Endereco      string  `json:"endereco"`
	Address       string  `json:"address"`
	Categoria     string  `json:"categoria"`
	Category      string  `json:"category"`
	ImageURL      string  `json:"imageUrl"`
	Imagem        string  `json:"imagem"`
	AverageRating float64 `json:"averageRating"`
	NumRatings    int     `json:"numRatings"`
	OwnerID       flexID  `json:"ownerId"`
}

func (p establishmentPayload) toDomain() domain.Establishment {
	name := firstNonEmpty(p.Nome, p.Name)
	if name == "" {
		name = domain.DefaultEstablishmentName
	}
	address := firstNonEmpty(p.Endereco, p.Address)
	if address == "" {
		address = domain.DefaultAddress
	}
	return domain.Establishment{
		ID:            string(p.ID),
		Name:          name,
		Address:       address,
		Category:      firstNonEmpty(p.Categoria, p.Category),
		ImageURL:      firstNonEmpty(p.ImageURL, p.Imagem),
		AverageRating: p.AverageRating,
		NumRatings:    p.NumRatings,
		OwnerID:       string(p.OwnerID),
	}
}

// --- Rating payloads ---

type ratingPayload struct {
	ID                flexID   `json:"id"`
	EstabelecimentoID flexID   `json:"estabelecimento_id"`
	EstablishmentID   flexID   `json:"establishmentId"`
	ClienteID         flexID   `json:"cliente_id"`
	UserID            flexID   `json:"userId"`
	Nota              *float64 `json:"nota"`
	Rating            *float64 `json:"rating"`
	Comentario        string   `json:"comentario"`
	Comment           string   `json:"comment"`
	Data              string   `json:"data"`
	Date              string   `json:"date"`
}

func (p ratingPayload) toDomain() domain.Rating {
	score := 0.0
	if p.Nota != nil {
		score = *p.Nota
	} else if p.Rating != nil {
		score = *p.Rating
	}
	date := firstNonEmpty(p.Data, p.Date)
	if date == "" {
		date = domain.DefaultRatingDate
	}
	return domain.Rating{
		ID:              string(p.ID),
		EstablishmentID: firstNonEmpty(string(p.EstabelecimentoID), string(p.EstablishmentID)),
		CustomerID:      firstNonEmpty(string(p.ClienteID), string(p.UserID)),
		Score:           score,
		Comment:         firstNonEmpty(p.Comentario, p.Comment),
		Date:            date,
	}
}

// --- Category payloads ---

type categoryPayload struct {
	ID        int    `json:"id"`
	Nome      string `json:"nome"`
	Name      string `json:"name"`
	Descricao string `json:"descricao"`
}

func (p categoryPayload) toDomain() domain.Category {
	return domain.Category{
		ID:          p.ID,
		Name:        firstNonEmpty(p.Nome, p.Name),
		Description: p.Descricao,
	}
}

func strInt(n int) string {
	return strconv.Itoa(n)
}
