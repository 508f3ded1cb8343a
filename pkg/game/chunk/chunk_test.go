package chunk

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cavegen/pkg/engine/world"
)

func sample() *world.Cave {
	c := world.NewCave(6, 8)
	c.Name = "town"
	c.FillRectangle(0, 0, 5, 7, world.FeatPerm, world.SquareNone)
	c.FillRectangle(1, 1, 4, 6, world.FeatFloor, world.SquareGlow)
	c.SetFeat(2, 3, world.FeatShop4)
	c.On(2, 3, world.SquareRoom)
	return c
}

func sameGrids(t *testing.T, want, got *world.Cave) {
	t.Helper()
	require.Equal(t, want.Height, got.Height)
	require.Equal(t, want.Width, got.Width)
	want.ForEach(func(y, x int) {
		assert.Equal(t, want.Feat(y, x), got.Feat(y, x), "feat at %d,%d", y, x)
		assert.Equal(t, want.Info(y, x), got.Info(y, x), "info at %d,%d", y, x)
	})
}

func TestWriteRegion(t *testing.T) {
	c := sample()
	c.SetObjectIdx(2, 3, 7)

	sub, err := Write(c, 1, 2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, sub.Height)
	assert.Equal(t, 4, sub.Width)
	assert.Equal(t, world.FeatShop4, sub.Feat(1, 1))
	assert.True(t, sub.Has(1, 1, world.SquareRoom|world.SquareGlow))
	assert.Zero(t, sub.ObjectIdx(1, 1), "occupancy is not copied")

	_, err = Write(c, 4, 4, 3, 5)
	assert.Error(t, err)
}

func TestCopyReplacesFlags(t *testing.T) {
	src := sample()
	dst := world.NewCave(10, 12)
	dst.FillRectangle(0, 0, 9, 11, world.FeatGranite, world.SquareVault)

	require.NoError(t, Copy(dst, src, 2, 3))
	assert.Equal(t, world.FeatShop4, dst.Feat(4, 6))
	assert.False(t, dst.Has(3, 4, world.SquareVault))
	assert.True(t, dst.Has(0, 0, world.SquareVault), "grids outside the chunk are untouched")

	assert.Error(t, Copy(dst, src, 5, 5))
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	assert.False(t, s.Has("town"))
	_, err := s.Load("town")
	assert.True(t, errors.Is(err, ErrNotFound))

	c := sample()
	require.NoError(t, s.Save("town", c))
	c.SetFeat(1, 1, world.FeatRubble)

	got, err := s.Load("town")
	require.NoError(t, err)
	assert.Equal(t, world.FeatFloor, got.Feat(1, 1), "saved chunk is a snapshot")
	sameGrids(t, sample(), got)
}

func TestBoltStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chunks.db")
	s, err := OpenBolt(path)
	require.NoError(t, err)

	c := sample()
	c.Depth = 0
	require.NoError(t, s.Save("town", c))
	assert.True(t, s.Has("town"))
	require.NoError(t, s.Close())

	s, err = OpenBolt(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Load("town")
	require.NoError(t, err)
	assert.Equal(t, "town", got.Name)
	sameGrids(t, c, got)

	_, err = s.Load("missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}
