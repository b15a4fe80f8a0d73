package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
)

type stubSequenceSource struct {
	next int64
	err  error

	calls []kernel.Generation
}

func (s *stubSequenceSource) Next(_ context.Context, generation kernel.Generation) (int64, error) {
	s.calls = append(s.calls, generation)
	return s.next, s.err
}

func Test_IdentityAllocator_Allocate(t *testing.T) {
	source := &stubSequenceSource{next: 123}

	identity, err := NewIdentityAllocator().Allocate(context.Background(), source, kernel.GenerationCurrent)
	require.NoError(t, err)

	assert.Equal(t, "AF2-000123", identity.ShipmentID.String())
	assert.NoError(t, identity.TrackingCode.Validate())
	assert.Equal(t, []kernel.Generation{kernel.GenerationCurrent}, source.calls)
}

func Test_IdentityAllocator_Allocate_CounterFailure(t *testing.T) {
	source := &stubSequenceSource{err: errors.New("deadlock detected")}

	_, err := NewIdentityAllocator().Allocate(context.Background(), source, kernel.GenerationCurrent)

	assert.ErrorIs(t, err, errs.ErrAllocationFailed)
	assert.ErrorContains(t, err, "deadlock detected")
}

func Test_IdentityAllocator_Allocate_InvalidGeneration(t *testing.T) {
	source := &stubSequenceSource{next: 1}

	_, err := NewIdentityAllocator().Allocate(context.Background(), source, kernel.Generation(0))

	assert.Error(t, err)
	assert.Empty(t, source.calls)
}

func Test_IdentityAllocator_Allocate_DistinctTrackingCodes(t *testing.T) {
	source := &stubSequenceSource{next: 1}
	allocator := NewIdentityAllocator()

	seen := make(map[string]struct{})
	for range 50 {
		identity, err := allocator.Allocate(context.Background(), source, kernel.GenerationCurrent)
		require.NoError(t, err)
		seen[identity.TrackingCode.String()] = struct{}{}
	}

	// Random 7-character codes over a 32-symbol alphabet; 50 draws colliding
	// would point at a broken generator.
	assert.Greater(t, len(seen), 45)
}
