package main

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Form validation happens before any request is issued, mirroring what the
// mobile screens do; the gateway still defends at its own boundary.

var validate = validator.New()

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func (f loginForm) check() error {
	return checkForm(f, map[string]string{
		"Email":    "Por favor, informe um email válido",
		"Password": "Por favor, informe sua senha",
	})
}

type customerRegisterForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func (f customerRegisterForm) check() error {
	return checkForm(f, map[string]string{
		"Name":     "Por favor, informe seu nome",
		"Email":    "Por favor, informe um email válido",
		"Password": "A senha deve ter no mínimo 6 caracteres",
	})
}

type businessRegisterForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	CNPJ     string `validate:"required"`
	Address  string `validate:"required"`
	Category string `validate:"required"`
}

func (f businessRegisterForm) check() error {
	return checkForm(f, map[string]string{
		"Name":     "Por favor, informe o nome do estabelecimento",
		"Email":    "Por favor, informe um email válido",
		"Password": "A senha deve ter no mínimo 6 caracteres",
		"CNPJ":     "Por favor, informe o CNPJ",
		"Address":  "Por favor, informe o endereço",
		"Category": "Por favor, selecione uma categoria",
	})
}

type ratingForm struct {
	EstablishmentID string `validate:"required"`
	CustomerID      string `validate:"required"`
	Score           int    `validate:"required,min=1,max=5"`
}

func (f ratingForm) check() error {
	return checkForm(f, map[string]string{
		"EstablishmentID": "Informe o estabelecimento (-establishment)",
		"CustomerID":      "Informe o cliente (-customer)",
		"Score":           "A nota deve ser de 1 a 5 estrelas",
	})
}

// checkForm runs validator over the form and translates the first failure
// into its field-specific message.
func checkForm(form any, messages map[string]string) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		if msg, ok := messages[ve[0].Field()]; ok {
			return errors.New(msg)
		}
		return fmt.Errorf("%s inválido", ve[0].Field())
	}
	return err
}
