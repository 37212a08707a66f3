// Package store holds the development server's in-memory state. It stands in
// for the production backend's database so the client can be exercised with
// zero infrastructure; all methods are safe for concurrent use and return
// copies, never internal pointers.
package store

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound      = errors.New("cliente não encontrado")
	ErrEstablishmentNotFound = errors.New("estabelecimento não encontrado")
	ErrRatingNotFound        = errors.New("avaliação não encontrada")
	ErrCategoryNotFound      = errors.New("tipo não encontrado")
	ErrEmailTaken            = errors.New("email já cadastrado")
	ErrCPFTaken              = errors.New("cpf já cadastrado")
	ErrCNPJTaken             = errors.New("cnpj já cadastrado")
	ErrInvalidCredentials    = errors.New("email ou senha incorretos")
)

type Customer struct {
	ID        string
	Nome      string
	Email     string
	SenhaHash string
	Telefone  string
	CPF       string
}

type Establishment struct {
	ID        string
	Nome      string
	Email     string
	SenhaHash string
	Telefone  string
	CNPJ      string
	Endereco  string
	Descricao string
	Imagem    string
	TipoID    int
}

type Rating struct {
	ID                string
	EstabelecimentoID string
	ClienteID         string
	Nota              int
	Comentario        string
	Data              string
}

type Category struct {
	ID        int
	Nome      string
	Descricao string
}

// CustomerUpdate carries partial customer changes; empty fields are unchanged.
type CustomerUpdate struct {
	Nome     string
	Email    string
	Telefone string
	CPF      string
}

// EstablishmentUpdate carries partial establishment changes; empty fields are
// unchanged.
type EstablishmentUpdate struct {
	Nome      string
	Endereco  string
	Descricao string
	Telefone  string
	Imagem    string
}

// Memory is the root of all dev server state.
type Memory struct {
	mu             sync.RWMutex
	customers      map[string]*Customer
	establishments map[string]*Establishment
	ratings        map[string]*Rating
	categories     []Category
	now            func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		customers:      make(map[string]*Customer),
		establishments: make(map[string]*Establishment),
		ratings:        make(map[string]*Rating),
		categories: []Category{
			{ID: 1, Nome: "Restaurante", Descricao: "Restaurantes em geral"},
			{ID: 2, Nome: "Café", Descricao: "Cafeterias"},
			{ID: 3, Nome: "Bar", Descricao: "Bares e pubs"},
			{ID: 4, Nome: "Lanchonete", Descricao: "Lanches rápidos"},
			{ID: 5, Nome: "Padaria", Descricao: "Padarias e confeitarias"},
			{ID: 6, Nome: "Pizzaria", Descricao: "Pizzarias"},
		},
		now: time.Now,
	}
}

// --- Customers ---

func (m *Memory) CreateCustomer(c Customer) (Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.customers {
		if strings.EqualFold(existing.Email, c.Email) {
			return Customer{}, ErrEmailTaken
		}
		if c.CPF != "" && existing.CPF == c.CPF {
			return Customer{}, ErrCPFTaken
		}
	}

	c.ID = uuid.NewString()
	stored := c
	m.customers[c.ID] = &stored
	return c, nil
}

func (m *Memory) CustomerByEmail(email string) (Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, c := range m.customers {
		if strings.EqualFold(c.Email, email) {
			return *c, nil
		}
	}
	return Customer{}, ErrCustomerNotFound
}

func (m *Memory) CustomerByID(id string) (Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.customers[id]
	if !ok {
		return Customer{}, ErrCustomerNotFound
	}
	return *c, nil
}

func (m *Memory) UpdateCustomer(id string, upd CustomerUpdate) (Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.customers[id]
	if !ok {
		return Customer{}, ErrCustomerNotFound
	}
	if upd.Nome != "" {
		c.Nome = upd.Nome
	}
	if upd.Email != "" {
		c.Email = upd.Email
	}
	if upd.Telefone != "" {
		c.Telefone = upd.Telefone
	}
	if upd.CPF != "" {
		c.CPF = upd.CPF
	}
	return *c, nil
}

// --- Establishments ---

func (m *Memory) CreateEstablishment(e Establishment) (Establishment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.establishments {
		if strings.EqualFold(existing.Email, e.Email) {
			return Establishment{}, ErrEmailTaken
		}
		if e.CNPJ != "" && existing.CNPJ == e.CNPJ {
			return Establishment{}, ErrCNPJTaken
		}
	}

	e.ID = uuid.NewString()
	stored := e
	m.establishments[e.ID] = &stored
	return e, nil
}

func (m *Memory) EstablishmentByEmail(email string) (Establishment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, e := range m.establishments {
		if strings.EqualFold(e.Email, email) {
			return *e, nil
		}
	}
	return Establishment{}, ErrEstablishmentNotFound
}

func (m *Memory) EstablishmentByID(id string) (Establishment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.establishments[id]
	if !ok {
		return Establishment{}, ErrEstablishmentNotFound
	}
	return *e, nil
}

// Establishments lists establishments filtered by a name substring and by
// category name ("Todos" and "" both mean no filter), sorted by name.
func (m *Memory) Establishments(search, tipo string) []Establishment {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var tipoID int
	if tipo != "" && !strings.EqualFold(tipo, "Todos") {
		for _, c := range m.categories {
			if strings.EqualFold(c.Nome, tipo) {
				tipoID = c.ID
				break
			}
		}
	}

	out := make([]Establishment, 0, len(m.establishments))
	for _, e := range m.establishments {
		if search != "" && !strings.Contains(strings.ToLower(e.Nome), strings.ToLower(search)) {
			continue
		}
		if tipoID != 0 && e.TipoID != tipoID {
			continue
		}
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out
}

func (m *Memory) UpdateEstablishment(id string, upd EstablishmentUpdate) (Establishment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.establishments[id]
	if !ok {
		return Establishment{}, ErrEstablishmentNotFound
	}
	if upd.Nome != "" {
		e.Nome = upd.Nome
	}
	if upd.Endereco != "" {
		e.Endereco = upd.Endereco
	}
	if upd.Descricao != "" {
		e.Descricao = upd.Descricao
	}
	if upd.Telefone != "" {
		e.Telefone = upd.Telefone
	}
	if upd.Imagem != "" {
		e.Imagem = upd.Imagem
	}
	return *e, nil
}

// --- Ratings ---

func (m *Memory) CreateRating(r Rating) (Rating, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.establishments[r.EstabelecimentoID]; !ok {
		return Rating{}, ErrEstablishmentNotFound
	}

	r.ID = uuid.NewString()
	r.Data = m.now().Format("2006-01-02")
	stored := r
	m.ratings[r.ID] = &stored
	return r, nil
}

func (m *Memory) RatingsByEstablishment(establishmentID string) []Rating {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Rating, 0)
	for _, r := range m.ratings {
		if r.EstabelecimentoID == establishmentID {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Data > out[j].Data })
	return out
}

func (m *Memory) RatingsByCustomer(customerID string) []Rating {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Rating, 0)
	for _, r := range m.ratings {
		if r.ClienteID == customerID {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Data > out[j].Data })
	return out
}

func (m *Memory) UpdateRating(id string, nota int, comentario string) (Rating, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.ratings[id]
	if !ok {
		return Rating{}, ErrRatingNotFound
	}
	r.Nota = nota
	if comentario != "" {
		r.Comentario = comentario
	}
	return *r, nil
}

func (m *Memory) DeleteRating(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.ratings[id]; !ok {
		return ErrRatingNotFound
	}
	delete(m.ratings, id)
	return nil
}

// Aggregate returns the average score and count for one establishment.
func (m *Memory) Aggregate(establishmentID string) (avg float64, count int) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sum := 0
	for _, r := range m.ratings {
		if r.EstabelecimentoID == establishmentID {
			sum += r.Nota
			count++
		}
	}
	if count == 0 {
		return 0, 0
	}
	return float64(sum) / float64(count), count
}

// --- Categories ---

func (m *Memory) Categories() []Category {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Category, len(m.categories))
	copy(out, m.categories)
	return out
}

func (m *Memory) CategoryByID(id int) (Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, c := range m.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return Category{}, ErrCategoryNotFound
}

func (m *Memory) CategoryName(id int) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, c := range m.categories {
		if c.ID == id {
			return c.Nome
		}
	}
	return ""
}
