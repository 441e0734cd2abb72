package services

import "errors"

// Sentinel errors raised by the services. Controllers translate them into
// HTTP status codes at the boundary.
var (
	// ErrInvalidCredentials covers unknown email, deactivated account and
	// wrong password alike, so login responses never reveal which one failed.
	ErrInvalidCredentials = errors.New("credenciais inválidas")

	ErrEmailTaken         = errors.New("email já registrado")
	ErrWrongPassword      = errors.New("senha atual incorreta")
	ErrMissingToken       = errors.New("token não fornecido")
	ErrInvalidToken       = errors.New("token inválido")
	ErrExpiredToken       = errors.New("token expirado")
	ErrAccountDeactivated = errors.New("conta desativada")
	ErrTaskNotFound       = errors.New("tarefa não encontrada")
	ErrInvalidTaskID      = errors.New("id da tarefa inválido")
	ErrInvalidDueDate     = errors.New("data de vencimento deve ser no futuro")
)

// FieldError is one validation violation, tied to the offending field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every violation found in a request so clients
// see them all at once.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return "dados inválidos"
}

// validationError builds a *ValidationError, or nil when there are no
// violations.
func validationError(fields []FieldError) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
