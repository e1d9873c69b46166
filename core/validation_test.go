package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCountMatrix(t *testing.T) {
	tests := []struct {
		name    string
		counts  CountMatrix
		wantErr error
	}{
		{
			name:    "valid matrix",
			counts:  CountMatrix{{1, 0}, {0, 2}},
			wantErr: nil,
		},
		{
			name:    "empty matrix",
			counts:  CountMatrix{},
			wantErr: nil,
		},
		{
			name:    "nil matrix",
			counts:  nil,
			wantErr: nil,
		},
		{
			name:    "zero sum row is not a shape error",
			counts:  CountMatrix{{0, 0}},
			wantErr: nil,
		},
		{
			name:    "ragged rows",
			counts:  CountMatrix{{1, 0}, {1}},
			wantErr: ErrRaggedMatrix,
		},
		{
			name:    "negative count",
			counts:  CountMatrix{{1, -1}},
			wantErr: ErrNegativeCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCountMatrix(tt.counts)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
