package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/axon-report-cli/pkg/clierrors"
)

func TestResolveDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(t *testing.T, date *time.Time, err error)
	}{
		{
			name:  "Data válida no formato YYYY-MM-DD",
			input: "2025-12-24",
			validate: func(t *testing.T, date *time.Time, err error) {
				require.NoError(t, err)
				require.NotNil(t, date)
				assert.Equal(t, 2025, date.Year())
				assert.Equal(t, time.December, date.Month())
				assert.Equal(t, 24, date.Day())
			},
		},
		{
			name:  "Literal now resolve para a data corrente",
			input: "now",
			validate: func(t *testing.T, date *time.Time, err error) {
				require.NoError(t, err)
				require.NotNil(t, date)

				now := time.Now()
				assert.Equal(t, now.Year(), date.Year())
				assert.Equal(t, now.Month(), date.Month())
				assert.Equal(t, now.Day(), date.Day())
			},
		},
		{
			name:  "Formato inválido falha nomeando o valor",
			input: "24/12/2025",
			validate: func(t *testing.T, date *time.Time, err error) {
				require.Error(t, err)
				assert.Nil(t, date)
				assert.True(t, clierrors.IsCode(err, clierrors.ErrInvalidDate))
				assert.Contains(t, err.Error(), "24/12/2025")
			},
		},
		{
			name:  "String vazia falha",
			input: "",
			validate: func(t *testing.T, date *time.Time, err error) {
				require.Error(t, err)
				assert.True(t, clierrors.IsCode(err, clierrors.ErrInvalidDate))
			},
		},
		{
			name:  "Data incompleta falha",
			input: "2025-12",
			validate: func(t *testing.T, date *time.Time, err error) {
				require.Error(t, err)
				assert.True(t, clierrors.IsCode(err, clierrors.ErrInvalidDate))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ResolveDate(tt.input)
			tt.validate(t, date, err)
		})
	}
}

func TestResolveDate_Idempotente(t *testing.T) {
	// Duas resoluções de "now" no mesmo instante retornam a mesma data
	first, err := ResolveDate("now")
	require.NoError(t, err)

	second, err := ResolveDate("now")
	require.NoError(t, err)

	assert.True(t, first.Equal(*second))
}
