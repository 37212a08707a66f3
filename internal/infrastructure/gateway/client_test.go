package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/meetpoint/meetpoint-client/internal/core/domain"
	"github.com/meetpoint/meetpoint-client/internal/core/ports"
	"github.com/meetpoint/meetpoint-client/internal/infrastructure/tokenstore"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *tokenstore.Memory) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	tokens := tokenstore.NewMemory()
	return New(server.URL, tokens, zerolog.Nop()), tokens
}

func apiErrorFrom(t *testing.T, err error) *domain.APIError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	apiErr, ok := domain.AsAPIError(err)
	if !ok {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	return apiErr
}

func TestClient_ConflictRefinement(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"email", `{"message":"Email already exists"}`, domain.MsgEmailTaken},
		{"cpf", `{"message":"CPF existente"}`, domain.MsgCPFTaken},
		{"cnpj", `{"message":"cnpj duplicado"}`, domain.MsgCNPJTaken},
		{"generic", `{"message":"registro duplicado"}`, domain.MsgDuplicateData},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusConflict)
				_, _ = w.Write([]byte(tc.body))
			}))

			_, err := client.RegisterCustomer(context.Background(), ports.CustomerRegistrationInput{
				Name: "Ana", Email: "ana@example.com", Password: "secret1",
			})

			apiErr := apiErrorFrom(t, err)
			if apiErr.Status != http.StatusConflict {
				t.Fatalf("expected 409, got %d", apiErr.Status)
			}
			if apiErr.Message != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, apiErr.Message)
			}
		})
	}
}

func TestClient_EmptyServerErrorBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.Categories(context.Background())

	apiErr := apiErrorFrom(t, err)
	if apiErr.Status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", apiErr.Status)
	}
	if apiErr.Message != domain.MsgServerError {
		t.Fatalf("expected generic server message, got %q", apiErr.Message)
	}
}

func TestClient_UnauthorizedMapping(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token expired"}`))
	}))

	_, err := client.LoginCustomer(context.Background(), "ana@example.com", "wrong")

	apiErr := apiErrorFrom(t, err)
	if apiErr.Message != domain.MsgWrongCredential {
		t.Fatalf("expected credentials message, got %q", apiErr.Message)
	}
}

func TestClient_BadRequestKeepsServerMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"nome é obrigatório"}`))
	}))

	_, err := client.Categories(context.Background())

	apiErr := apiErrorFrom(t, err)
	if apiErr.Message != "nome é obrigatório" {
		t.Fatalf("expected server-specific message, got %q", apiErr.Message)
	}
}

func TestClient_BadRequestDefaultMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))

	_, err := client.Categories(context.Background())

	apiErr := apiErrorFrom(t, err)
	if apiErr.Message != domain.MsgInvalidData {
		t.Fatalf("expected generic invalid-data message, got %q", apiErr.Message)
	}
}

func TestClient_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close() // nothing is listening any more

	client := New(url, tokenstore.NewMemory(), zerolog.Nop())
	_, err := client.Categories(context.Background())

	apiErr := apiErrorFrom(t, err)
	if apiErr.Status != 0 {
		t.Fatalf("expected status 0 for network failure, got %d", apiErr.Status)
	}
	if apiErr.Message != domain.MsgConnectionError {
		t.Fatalf("expected connection message, got %q", apiErr.Message)
	}
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	client, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))

	_ = tokens.Save("tok123")
	if _, err := client.Categories(context.Background()); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestClient_AnonymousWithoutToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))

	if _, err := client.Categories(context.Background()); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no auth header, got %q", gotAuth)
	}
}

func TestClient_LoginPersistsToken(t *testing.T) {
	client, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/clientes/login" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"cliente":{"id":"c1","nome":"Ana","email":"ana@example.com"},"token":"abc"}`))
	}))

	res, err := client.LoginCustomer(context.Background(), "ana@example.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.User.Name != "Ana" || res.User.Kind != domain.AccountCustomer {
		t.Fatalf("unexpected user projection: %+v", res.User)
	}

	stored, _ := tokens.Token()
	if stored != "abc" {
		t.Fatalf("expected token persisted, got %q", stored)
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Categories(ctx)
	apiErr := apiErrorFrom(t, err)
	if apiErr.Status != 0 {
		t.Fatalf("expected status 0 for cancelled request, got %d", apiErr.Status)
	}
}
