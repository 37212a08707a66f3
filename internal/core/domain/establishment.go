package domain

// Display fallbacks applied when a payload carries neither naming convention
// for a field. Portuguese, matching the deployed backend's locale.
const (
	DefaultEstablishmentName = "Estabelecimento"
	DefaultAddress           = "Endereço não informado"
	DefaultRatingDate        = "Data não informada"
)

// Establishment is the reviewed business entity (restaurant, café, …).
// Consumed read-only by callers; the aggregate fields are server-computed.
type Establishment struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Category      string  `json:"category,omitempty"`
	ImageURL      string  `json:"image_url,omitempty"`
	AverageRating float64 `json:"average_rating"`
	NumRatings    int     `json:"num_ratings"`
	OwnerID       string  `json:"owner_id,omitempty"`
}

// Rating is a customer's star score (1–5) plus optional comment attached to
// one establishment.
type Rating struct {
	ID              string  `json:"id"`
	EstablishmentID string  `json:"establishment_id"`
	CustomerID      string  `json:"customer_id"`
	Score           float64 `json:"score"`
	Comment         string  `json:"comment,omitempty"`
	Date            string  `json:"date"`
}

// Category is an establishment type as served by GET /tipos.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
