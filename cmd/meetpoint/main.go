// Command meetpoint is the terminal front-end for the MeetPoint rating
// service: customers browse establishments and submit ratings, business
// owners inspect the reviews they received.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/meetpoint/meetpoint-client/internal/core/service"
	"github.com/meetpoint/meetpoint-client/internal/infrastructure/config"
	"github.com/meetpoint/meetpoint-client/internal/infrastructure/gateway"
	"github.com/meetpoint/meetpoint-client/internal/infrastructure/tokenstore"
	"github.com/meetpoint/meetpoint-client/pkg/logger"
)

const usage = `meetpoint — MeetPoint terminal client

Usage:
  meetpoint <command> [flags]

Commands:
  login              authenticate (customer or business)
  register-customer  create a customer account
  register-business  create a business account
  logout             destroy the stored credential
  establishments     list establishments
  establishment      show one establishment
  ratings            list ratings for an establishment
  my-ratings         list ratings submitted by a customer
  rate               submit a rating
  categories         list establishment categories
  profile            show a customer profile
  update-profile     update a customer profile on the server

Environment:
  MEETPOINT_API_URL     API base URL (default http://localhost:3000/api)
  MEETPOINT_TOKEN_PATH  bearer token location (default OS config dir)
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.LoadClient()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	tokens, err := tokenstore.NewFile(cfg.TokenPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "erro:", err)
		os.Exit(1)
	}

	app := &app{
		gateway: gateway.New(cfg.APIBaseURL, tokens, log),
	}
	app.session = service.NewSession(app.gateway, log)

	if err := app.run(context.Background(), os.Args[1], os.Args[2:]); err != nil {
		// Session failures carry a user-facing message; prefer it.
		if msg := app.session.LastError(); msg != "" {
			fmt.Fprintln(os.Stderr, "erro:", msg)
		} else {
			fmt.Fprintln(os.Stderr, "erro:", err)
		}
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.login(ctx, args)
	case "register-customer":
		return a.registerCustomer(ctx, args)
	case "register-business":
		return a.registerBusiness(ctx, args)
	case "logout":
		return a.logout(ctx)
	case "establishments":
		return a.establishments(ctx, args)
	case "establishment":
		return a.establishment(ctx, args)
	case "ratings":
		return a.ratings(ctx, args)
	case "my-ratings":
		return a.myRatings(ctx, args)
	case "rate":
		return a.rate(ctx, args)
	case "categories":
		return a.categories(ctx)
	case "profile":
		return a.profile(ctx, args)
	case "update-profile":
		return a.updateProfile(ctx, args)
	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("comando desconhecido: %s", command)
	}
}
