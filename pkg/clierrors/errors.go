package clierrors

import (
	"errors"
	"fmt"
)

// Códigos de erro da CLI
const (
	// Erros de uso (entrada inválida na linha de comando)
	ErrMissingAPIKey = "USG_001" // Chave de API ausente
	ErrInvalidFlag   = "USG_002" // Flag inválida ou desconhecida

	// Erros de validação
	ErrInvalidDate = "VAL_001" // Data em formato inválido

	// Erros de serviço externo (API da Axon)
	ErrAPIResponse       = "EXT_001" // Resposta não-2xx da API
	ErrNetwork           = "EXT_002" // Falha de conexão ou timeout
	ErrMalformedResponse = "EXT_003" // Corpo JSON em formato inesperado

	// Erros de E/S
	ErrOutputWrite = "IO_001" // Falha ao gravar o arquivo de saída
)

// Mapeamento de códigos de erro para código de saída do processo
var exitCodeMap = map[string]int{
	ErrMissingAPIKey:     2,
	ErrInvalidFlag:       2,
	ErrInvalidDate:       1,
	ErrAPIResponse:       1,
	ErrNetwork:           1,
	ErrMalformedResponse: 1,
	ErrOutputWrite:       1,
}

// CLIError representa um erro padronizado da CLI
type CLIError struct {
	Code    string // Código de erro para diagnóstico
	Message string // Mensagem descritiva para o usuário
	Cause   error  // Erro original (opcional)
}

func (e *CLIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *CLIError) Unwrap() error {
	return e.Cause
}

// ExitCode retorna o código de saída do processo para o erro
func (e *CLIError) ExitCode() int {
	if code, exists := exitCodeMap[e.Code]; exists {
		return code
	}
	return 1
}

// New cria um erro de CLI com código e mensagem formatada
func New(code string, format string, args ...any) *CLIError {
	return &CLIError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap envolve um erro existente em um erro de CLI
// Útil para quando você quer preservar a causa original
func Wrap(err error, code string, format string, args ...any) *CLIError {
	return &CLIError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   err,
	}
}

// ExitCodeFor resolve o código de saída para qualquer erro.
// Erros que não são CLIError recebem o código genérico 1.
func ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.ExitCode()
	}

	return 1
}

// IsCode verifica se o erro (ou alguma de suas causas) carrega o código informado
func IsCode(err error, code string) bool {
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code == code
	}
	return false
}
