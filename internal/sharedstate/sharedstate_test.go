package sharedstate_test

import (
	"context"
	"testing"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/consts"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/sharedstate"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetAndRead(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := sharedstate.NewMemory(consts.DefaultSuite)

	_, ok, err := s.Float(ctx, consts.BenchmarkPriceKey)
	require.NoError(t, err)
	require.False(t, ok, "empty store must report missing key")

	require.NoError(t, s.SetFloat(ctx, consts.BenchmarkPriceKey, 91234.5))
	require.NoError(t, s.SetFloat(ctx, consts.BenchmarkPriceKey, 91500))

	v, ok, err := s.Float(ctx, consts.BenchmarkPriceKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 91500.0, v)
}

func TestMemory_SuitesAreIsolated(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a := sharedstate.NewMemory("group.a")
	b := sharedstate.NewMemory("group.b")

	require.NoError(t, a.SetFloat(ctx, "k", 1))
	_, ok, err := b.Float(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)
}
