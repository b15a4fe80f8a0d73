package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
)

func TestNewShipmentID(t *testing.T) {
	tests := []struct {
		name       string
		generation kernel.Generation
		sequence   int64
		wantErr    bool
		want       string
	}{
		{
			name:       "first identifier of current generation",
			generation: kernel.GenerationCurrent,
			sequence:   1,
			want:       "AF2-000001",
		},
		{
			name:       "zero padded mid-range sequence",
			generation: kernel.GenerationCurrent,
			sequence:   123,
			want:       "AF2-000123",
		},
		{
			name:       "legacy generation prefix",
			generation: kernel.GenerationLegacy,
			sequence:   42,
			want:       "AF1-000042",
		},
		{
			name:       "sequence wider than six digits is not truncated",
			generation: kernel.GenerationCurrent,
			sequence:   1234567,
			want:       "AF2-1234567",
		},
		{
			name:       "zero sequence is invalid",
			generation: kernel.GenerationCurrent,
			sequence:   0,
			wantErr:    true,
		},
		{
			name:       "negative sequence is invalid",
			generation: kernel.GenerationCurrent,
			sequence:   -5,
			wantErr:    true,
		},
		{
			name:       "unknown generation is invalid",
			generation: kernel.UnknownGeneration,
			sequence:   1,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := kernel.NewShipmentID(tt.generation, tt.sequence)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Zero(t, id)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, id.String())
				assert.Equal(t, tt.generation, id.Generation())
				assert.Equal(t, tt.sequence, id.Sequence())
				assert.NoError(t, id.Validate())
			}
		})
	}
}

func TestParseShipmentID(t *testing.T) {
	t.Run("round trips the canonical form", func(t *testing.T) {
		id, err := kernel.ParseShipmentID("AF2-000123")
		require.NoError(t, err)

		assert.Equal(t, kernel.GenerationCurrent, id.Generation())
		assert.Equal(t, int64(123), id.Sequence())
		assert.Equal(t, "AF2-000123", id.String())
	})

	t.Run("rejects unknown prefix", func(t *testing.T) {
		_, err := kernel.ParseShipmentID("ZZ9-000123")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects missing separator", func(t *testing.T) {
		_, err := kernel.ParseShipmentID("AF2000123")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects non-numeric sequence", func(t *testing.T) {
		_, err := kernel.ParseShipmentID("AF2-abc")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestShipmentIDIsEqual(t *testing.T) {
	a, err := kernel.NewShipmentID(kernel.GenerationCurrent, 7)
	require.NoError(t, err)
	b, err := kernel.NewShipmentID(kernel.GenerationCurrent, 7)
	require.NoError(t, err)
	c, err := kernel.NewShipmentID(kernel.GenerationLegacy, 7)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestShipmentIDValidate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var id kernel.ShipmentID
		require.ErrorIs(t, id.Validate(), errs.ErrValueIsRequired)
	})
}
