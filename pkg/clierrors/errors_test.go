package clierrors

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCLIError_ExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "Nil retorna zero",
			err:      nil,
			expected: 0,
		},
		{
			name:     "Erro de uso retorna 2",
			err:      New(ErrMissingAPIKey, "chave ausente"),
			expected: 2,
		},
		{
			name:     "Erro de API retorna 1",
			err:      New(ErrAPIResponse, "HTTP 500"),
			expected: 1,
		},
		{
			name:     "Erro genérico retorna 1",
			err:      errors.New("qualquer coisa"),
			expected: 1,
		},
		{
			name:     "Erro de CLI embrulhado preserva o código de saída",
			err:      errors.Wrap(New(ErrInvalidFlag, "flag desconhecida"), "contexto"),
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCodeFor(tt.err))
		})
	}
}

func TestCLIError_Mensagem(t *testing.T) {
	err := Wrap(errors.New("connection refused"), ErrNetwork, "falha de conexão")

	assert.Contains(t, err.Error(), ErrNetwork)
	assert.Contains(t, err.Error(), "falha de conexão")
	assert.Contains(t, err.Error(), "connection refused")
	assert.True(t, IsCode(err, ErrNetwork))
	assert.False(t, IsCode(err, ErrAPIResponse))
}
