package cronx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		spec    string
		wantErr bool
	}{
		{name: "six fields with seconds", spec: "0 0 6 * * *"},
		{name: "step expression", spec: "0 */15 * * * *"},
		{name: "descriptor daily", spec: "@daily"},
		{name: "descriptor every", spec: "@every 1h30m"},
		{name: "five fields rejected", spec: "0 6 * * *", wantErr: true},
		{name: "garbage rejected", spec: "soon", wantErr: true},
		{name: "empty rejected", spec: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	c := New()
	assert.NotNil(t, c)

	// The returned scheduler must accept the same spec Validate accepts.
	_, err := c.AddFunc("0 0 6 * * *", func() {})
	assert.NoError(t, err)
}
