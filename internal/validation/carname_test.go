package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCarName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "valid name",
			input: "Golf 8",
			want:  "Golf 8",
		},
		{
			name:  "trims surrounding whitespace",
			input: "  Peugeot 208 \t\n",
			want:  "Peugeot 208",
		},
		{
			name:  "keeps inner whitespace",
			input: "Renault  Clio",
			want:  "Renault  Clio",
		},
		{
			name:  "non-latin name",
			input: "سيارة",
			want:  "سيارة",
		},
		{
			name:    "invalid - empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "invalid - spaces only",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "invalid - tabs and newlines",
			input:   "\t\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeCarName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrEmptyCarName)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
