package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/meetpoint/meetpoint-client/internal/core/domain"
	"github.com/meetpoint/meetpoint-client/internal/core/ports"
	"github.com/meetpoint/meetpoint-client/internal/core/service"
	"github.com/meetpoint/meetpoint-client/internal/infrastructure/gateway"
)

type app struct {
	gateway *gateway.Client
	session *service.Session
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	kind := fs.String("kind", "customer", "account kind: customer or business")
	_ = fs.Parse(args)

	form := loginForm{Email: *email, Password: *password}
	if err := form.check(); err != nil {
		return err
	}

	if err := a.session.Login(ctx, *email, *password, parseKind(*kind)); err != nil {
		return err
	}

	user := a.session.CurrentUser()
	fmt.Printf("Bem-vindo, %s! (id: %s, conta: %s)\n", user.Name, user.ID, user.Kind)
	return nil
}

func (a *app) registerCustomer(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register-customer", flag.ExitOnError)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "password (min. 6 characters)")
	phone := fs.String("phone", "", "phone (optional)")
	cpf := fs.String("cpf", "", "CPF (optional)")
	_ = fs.Parse(args)

	form := customerRegisterForm{Name: *name, Email: *email, Password: *password}
	if err := form.check(); err != nil {
		return err
	}

	err := a.session.Register(ctx, ports.RegistrationInput{
		Kind:     domain.AccountCustomer,
		Name:     *name,
		Email:    *email,
		Password: *password,
		Phone:    *phone,
		CPF:      *cpf,
	})
	if err != nil {
		return err
	}

	user := a.session.CurrentUser()
	fmt.Printf("Conta criada com sucesso! (id: %s)\n", user.ID)
	return nil
}

func (a *app) registerBusiness(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register-business", flag.ExitOnError)
	name := fs.String("name", "", "business name")
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "password (min. 6 characters)")
	phone := fs.String("phone", "", "phone (optional)")
	cnpj := fs.String("cnpj", "", "CNPJ")
	address := fs.String("address", "", "street address")
	description := fs.String("description", "", "description (optional)")
	category := fs.String("category", "", "category name, e.g. Restaurante")
	_ = fs.Parse(args)

	form := businessRegisterForm{
		Name:     *name,
		Email:    *email,
		Password: *password,
		CNPJ:     *cnpj,
		Address:  *address,
		Category: *category,
	}
	if err := form.check(); err != nil {
		return err
	}

	err := a.session.Register(ctx, ports.RegistrationInput{
		Kind:        domain.AccountBusiness,
		Name:        *name,
		Email:       *email,
		Password:    *password,
		Phone:       *phone,
		CNPJ:        *cnpj,
		Address:     *address,
		Description: *description,
		Category:    *category,
	})
	if err != nil {
		return err
	}

	user := a.session.CurrentUser()
	fmt.Printf("Estabelecimento cadastrado com sucesso! (id: %s)\n", user.BusinessID)
	return nil
}

func (a *app) logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Sessão encerrada.")
	return nil
}

func (a *app) establishments(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("establishments", flag.ExitOnError)
	search := fs.String("search", "", "filter by name")
	tipo := fs.String("tipo", "", "filter by category name")
	page := fs.Int("page", 0, "page number")
	limit := fs.Int("limit", 0, "page size")
	_ = fs.Parse(args)

	list, err := a.gateway.Establishments(ctx, ports.EstablishmentQuery{
		Search: *search,
		Tipo:   *tipo,
		Page:   *page,
		Limit:  *limit,
	})
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Println("Nenhum estabelecimento encontrado.")
		return nil
	}
	for _, e := range list {
		fmt.Printf("%s  %-30s  %.1f (%d)  %s\n", e.ID, e.Name, e.AverageRating, e.NumRatings, e.Address)
	}
	return nil
}

func (a *app) establishment(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("establishment", flag.ExitOnError)
	id := fs.String("id", "", "establishment id")
	_ = fs.Parse(args)
	if *id == "" {
		return fmt.Errorf("informe -id")
	}

	e, err := a.gateway.EstablishmentByID(ctx, *id)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", e.Name)
	if e.Category != "" {
		fmt.Printf("Categoria: %s\n", e.Category)
	}
	fmt.Printf("Endereço:  %s\n", e.Address)
	fmt.Printf("Avaliação: %.1f (%d %s)\n", e.AverageRating, e.NumRatings, plural(e.NumRatings, "avaliação", "avaliações"))
	return nil
}

func (a *app) ratings(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("ratings", flag.ExitOnError)
	establishmentID := fs.String("establishment", "", "establishment id")
	_ = fs.Parse(args)
	if *establishmentID == "" {
		return fmt.Errorf("informe -establishment")
	}

	list, err := a.gateway.RatingsByEstablishment(ctx, *establishmentID)
	if err != nil {
		return err
	}
	printRatings(list)
	return nil
}

func (a *app) myRatings(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("my-ratings", flag.ExitOnError)
	customerID := fs.String("customer", "", "customer id (as printed by login)")
	_ = fs.Parse(args)
	if *customerID == "" {
		return fmt.Errorf("informe -customer")
	}

	list, err := a.gateway.RatingsByCustomer(ctx, *customerID)
	if err != nil {
		return err
	}
	printRatings(list)
	return nil
}

func (a *app) rate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("rate", flag.ExitOnError)
	establishmentID := fs.String("establishment", "", "establishment id")
	customerID := fs.String("customer", "", "customer id (as printed by login)")
	score := fs.Int("score", 0, "stars, 1 to 5")
	comment := fs.String("comment", "", "comment (optional)")
	_ = fs.Parse(args)

	form := ratingForm{EstablishmentID: *establishmentID, CustomerID: *customerID, Score: *score}
	if err := form.check(); err != nil {
		return err
	}

	created, err := a.gateway.CreateRating(ctx, ports.RatingInput{
		EstablishmentID: *establishmentID,
		CustomerID:      *customerID,
		Score:           *score,
		Comment:         *comment,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Avaliação registrada: %s (%s)\n", stars(int(created.Score)), created.Date)
	return nil
}

func (a *app) categories(ctx context.Context) error {
	list, err := a.gateway.Categories(ctx)
	if err != nil {
		return err
	}
	for _, c := range list {
		fmt.Printf("%2d  %-15s %s\n", c.ID, c.Name, c.Description)
	}
	return nil
}

func (a *app) profile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	id := fs.String("id", "", "customer id")
	_ = fs.Parse(args)
	if *id == "" {
		return fmt.Errorf("informe -id")
	}

	user, err := a.gateway.CustomerByID(ctx, *id)
	if err != nil {
		return err
	}
	fmt.Printf("Nome:  %s\nEmail: %s\n", user.Name, user.Email)
	return nil
}

func (a *app) updateProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update-profile", flag.ExitOnError)
	id := fs.String("id", "", "customer id")
	name := fs.String("name", "", "new name")
	email := fs.String("email", "", "new email")
	phone := fs.String("phone", "", "new phone")
	cpf := fs.String("cpf", "", "new CPF")
	_ = fs.Parse(args)
	if *id == "" {
		return fmt.Errorf("informe -id")
	}

	user, err := a.gateway.UpdateCustomer(ctx, *id, ports.CustomerUpdateInput{
		Name:  *name,
		Email: *email,
		Phone: *phone,
		CPF:   *cpf,
	})
	if err != nil {
		return err
	}

	// Keep the in-memory session consistent with what the server accepted.
	a.session.UpdateUser(ports.UserPatch{Name: &user.Name, Email: &user.Email})

	fmt.Println("Perfil atualizado com sucesso.")
	return nil
}

func parseKind(s string) domain.AccountKind {
	if strings.EqualFold(strings.TrimSpace(s), "business") {
		return domain.AccountBusiness
	}
	return domain.AccountCustomer
}

func printRatings(list []domain.Rating) {
	if len(list) == 0 {
		fmt.Println("Nenhuma avaliação encontrada.")
		return
	}
	for _, r := range list {
		fmt.Printf("%s  %s  %s\n", stars(int(r.Score)), r.Date, r.Comment)
	}
}

func stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
