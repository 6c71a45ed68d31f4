package validation_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consoletracker/console-catalog/internal/pkg/validation"
)

type sampleConfig struct {
	Name string `validate:"required"`
	Port int    `validate:"min=1,max=65535"`
	Mode string `validate:"omitempty,oneof=json text"`
}

func TestGet_Singleton(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	const routines = 50
	results := make([]any, routines)

	wg.Add(routines)
	for i := 0; i < routines; i++ {
		go func(idx int) {
			defer wg.Done()
			results[idx] = validation.Get()
		}(i)
	}
	wg.Wait()

	for i := 1; i < routines; i++ {
		assert.Same(t, results[0], results[i])
	}
}

func TestStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   sampleConfig
		wantErr bool
		wantMsg string
	}{
		{
			name:  "valid",
			input: sampleConfig{Name: "catalog", Port: 8080},
		},
		{
			name:    "missing required",
			input:   sampleConfig{Port: 8080},
			wantErr: true,
			wantMsg: "Name is required",
		},
		{
			name:    "port out of range",
			input:   sampleConfig{Name: "catalog", Port: 70000},
			wantErr: true,
			wantMsg: "Port must be at most 65535",
		},
		{
			name:    "invalid enum",
			input:   sampleConfig{Name: "catalog", Port: 8080, Mode: "xml"},
			wantErr: true,
			wantMsg: "Mode must be one of: json, text",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validation.Struct(tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, validation.FormatError(err))
		})
	}
}

func TestFormatError_NilAndPlain(t *testing.T) {
	t.Parallel()

	assert.Empty(t, validation.FormatError(nil))
	assert.Equal(t, "assert.AnError general error for testing", validation.FormatError(assert.AnError))
}
