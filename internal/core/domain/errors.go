package domain

import "errors"

// User-facing messages, Portuguese per the deployed backend. These exact
// strings are displayed by every front-end, so they must not drift.
const (
	MsgInvalidData     = "Dados inválidos. Verifique as informações e tente novamente."
	MsgWrongCredential = "Email ou senha incorretos."
	MsgNotFound        = "Recurso não encontrado."
	MsgEmailTaken      = "Este email já está cadastrado. Tente fazer login ou use outro email."
	MsgCPFTaken        = "Este CPF já está cadastrado. Verifique os dados ou tente fazer login."
	MsgCNPJTaken       = "Este CNPJ já está cadastrado. Verifique os dados ou tente fazer login."
	MsgDuplicateData   = "Dados já cadastrados no sistema. Verifique as informações."
	MsgServerError     = "Erro interno do servidor. Tente novamente mais tarde."
	MsgConnectionError = "Erro de conexão. Verifique sua internet e tente novamente."
	MsgUnexpectedError = "Erro inesperado. Tente novamente."
	MsgLoginFailed     = "Erro ao fazer login. Tente novamente."
	MsgRegisterFailed  = "Erro ao criar conta. Tente novamente."
)

// APIError is the typed failure produced by the gateway for every request
// that does not complete with a 2xx response. Status is the HTTP status code,
// or 0 when the request never completed (network failure, cancelled context,
// undecodable success body).
type APIError struct {
	Status  int
	Message string
	Details map[string]any
}

func (e *APIError) Error() string {
	return e.Message
}

// AsAPIError unwraps err into an *APIError when one is present in its chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// UserMessage extracts the displayable message from err, falling back to the
// given generic message when err is not an APIError.
func UserMessage(err error, fallback string) string {
	if apiErr, ok := AsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
