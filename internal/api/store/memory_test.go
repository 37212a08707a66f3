package store

import (
	"errors"
	"testing"
	"time"
)

func seedEstablishment(t *testing.T, m *Memory, nome string, tipoID int) Establishment {
	t.Helper()
	e, err := m.CreateEstablishment(Establishment{
		Nome:   nome,
		Email:  nome + "@example.com",
		CNPJ:   nome + "-cnpj",
		TipoID: tipoID,
	})
	if err != nil {
		t.Fatalf("seed establishment %q: %v", nome, err)
	}
	return e
}

func TestCreateCustomer_Uniqueness(t *testing.T) {
	m := NewMemory()

	if _, err := m.CreateCustomer(Customer{Nome: "Ana", Email: "ana@example.com", CPF: "111"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err := m.CreateCustomer(Customer{Nome: "Outra", Email: "ANA@example.com"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected email conflict (case-insensitive), got %v", err)
	}

	_, err = m.CreateCustomer(Customer{Nome: "Outra", Email: "outra@example.com", CPF: "111"})
	if !errors.Is(err, ErrCPFTaken) {
		t.Fatalf("expected cpf conflict, got %v", err)
	}
}

func TestCreateEstablishment_Uniqueness(t *testing.T) {
	m := NewMemory()
	seedEstablishment(t, m, "bar-a", 3)

	_, err := m.CreateEstablishment(Establishment{Nome: "Outro", Email: "bar-a@example.com", CNPJ: "x"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected email conflict, got %v", err)
	}

	_, err = m.CreateEstablishment(Establishment{Nome: "Outro", Email: "outro@example.com", CNPJ: "bar-a-cnpj"})
	if !errors.Is(err, ErrCNPJTaken) {
		t.Fatalf("expected cnpj conflict, got %v", err)
	}
}

func TestEstablishments_Filters(t *testing.T) {
	m := NewMemory()
	seedEstablishment(t, m, "Bar do Zé", 3)
	seedEstablishment(t, m, "Café Azul", 2)
	seedEstablishment(t, m, "Café Verde", 2)

	if got := len(m.Establishments("", "")); got != 3 {
		t.Fatalf("expected all 3, got %d", got)
	}
	if got := len(m.Establishments("", "Todos")); got != 3 {
		t.Fatalf("expected Todos to mean no filter, got %d", got)
	}
	if got := len(m.Establishments("", "café")); got != 2 {
		t.Fatalf("expected 2 cafés (case-insensitive tipo), got %d", got)
	}
	if got := len(m.Establishments("azul", "")); got != 1 {
		t.Fatalf("expected 1 match by name substring, got %d", got)
	}

	// Sorted by name.
	all := m.Establishments("", "")
	if all[0].Nome != "Bar do Zé" || all[2].Nome != "Café Verde" {
		t.Fatalf("expected name-sorted listing, got %q .. %q", all[0].Nome, all[2].Nome)
	}
}

func TestRatings_Aggregate(t *testing.T) {
	m := NewMemory()
	m.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }
	e := seedEstablishment(t, m, "Padaria Sol", 5)

	if _, err := m.CreateRating(Rating{EstabelecimentoID: "missing", ClienteID: "c1", Nota: 5}); !errors.Is(err, ErrEstablishmentNotFound) {
		t.Fatalf("expected establishment check, got %v", err)
	}

	r1, err := m.CreateRating(Rating{EstabelecimentoID: e.ID, ClienteID: "c1", Nota: 5})
	if err != nil {
		t.Fatalf("create rating failed: %v", err)
	}
	if r1.Data != "2026-08-01" {
		t.Fatalf("expected stamped date, got %q", r1.Data)
	}
	if _, err := m.CreateRating(Rating{EstabelecimentoID: e.ID, ClienteID: "c2", Nota: 2}); err != nil {
		t.Fatalf("create rating failed: %v", err)
	}

	avg, count := m.Aggregate(e.ID)
	if count != 2 || avg != 3.5 {
		t.Fatalf("expected avg 3.5 over 2 ratings, got %v over %d", avg, count)
	}

	if _, err := m.UpdateRating(r1.ID, 1, ""); err != nil {
		t.Fatalf("update rating failed: %v", err)
	}
	avg, _ = m.Aggregate(e.ID)
	if avg != 1.5 {
		t.Fatalf("expected avg 1.5 after update, got %v", avg)
	}

	if err := m.DeleteRating(r1.ID); err != nil {
		t.Fatalf("delete rating failed: %v", err)
	}
	if err := m.DeleteRating(r1.ID); !errors.Is(err, ErrRatingNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
	if _, count := m.Aggregate(e.ID); count != 1 {
		t.Fatalf("expected one rating left, got %d", count)
	}
}

func TestCategories_Seeded(t *testing.T) {
	m := NewMemory()

	if got := len(m.Categories()); got != 6 {
		t.Fatalf("expected 6 seeded categories, got %d", got)
	}

	c, err := m.CategoryByID(3)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if c.Nome != "Bar" {
		t.Fatalf("expected Bar, got %q", c.Nome)
	}

	if _, err := m.CategoryByID(99); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if name := m.CategoryName(99); name != "" {
		t.Fatalf("expected empty name for unknown tipo, got %q", name)
	}
}

func TestUpdateCustomer_PartialFields(t *testing.T) {
	m := NewMemory()
	c, err := m.CreateCustomer(Customer{Nome: "Ana", Email: "ana@example.com", Telefone: "111"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	upd, err := m.UpdateCustomer(c.ID, CustomerUpdate{Nome: "Ana Maria"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if upd.Nome != "Ana Maria" {
		t.Fatalf("expected updated nome, got %q", upd.Nome)
	}
	if upd.Email != "ana@example.com" || upd.Telefone != "111" {
		t.Fatalf("empty fields must be untouched: %+v", upd)
	}

	if _, err := m.UpdateCustomer("missing", CustomerUpdate{}); !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
