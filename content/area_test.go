package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutableAreaPutMutatesExistingHandleInPlace(t *testing.T) {
	area := NewMutableArea()
	handle := area.PutContent("/a.txt", []byte("v1"))

	area.PutContent("/a.txt", []byte("v2"))

	assert.Equal(t, []byte("v2"), handle.Bytes, "earlier handle must observe the later put")
	assert.Equal(t, 1, len(area.SnapshotAsList()))
}

func TestMutableAreaPutAppendsNewPath(t *testing.T) {
	area := NewMutableArea()
	area.PutContent("/a.txt", []byte("1"))
	area.PutContent("/b.txt", []byte("2"))
	assert.Len(t, area.SnapshotAsList(), 2)
}

func TestMutableAreaRemoveAndHasContent(t *testing.T) {
	area := NewMutableArea()
	area.PutContent("/a.txt", []byte("1"))
	assert.True(t, area.HasContent("/a.txt"))

	area.RemoveContent("/a.txt")
	assert.False(t, area.HasContent("/a.txt"))
}

func TestMutableAreaClear(t *testing.T) {
	area := NewMutableArea()
	area.PutContent("/a.txt", []byte("1"))
	area.Clear()
	assert.Empty(t, area.SnapshotAsList())
}

func TestCommittedAreaFreezeRejectsMutation(t *testing.T) {
	area := NewCommittedArea()
	_, err := area.PutContent("/a.txt", []byte("1"))
	require.NoError(t, err)

	area.Freeze()

	_, err = area.PutContent("/b.txt", []byte("2"))
	assert.ErrorIs(t, err, ErrImmutableContentModified)

	err = area.RemoveContent("/a.txt")
	assert.ErrorIs(t, err, ErrImmutableContentModified)
}

func TestCommittedAreaClearUnfreezes(t *testing.T) {
	area := NewCommittedArea()
	area.Freeze()
	area.Clear()

	_, err := area.PutContent("/a.txt", []byte("1"))
	assert.NoError(t, err)
	assert.False(t, area.Frozen())
}

func TestCommittedAreaPutReplacesWithFreshImmutableWrapper(t *testing.T) {
	area := NewCommittedArea()
	first, err := area.PutContent("/a.txt", []byte("1"))
	require.NoError(t, err)

	second, err := area.PutContent("/a.txt", []byte("2"))
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, []byte("1"), first.Bytes, "old handle is untouched, unlike MutableArea")
}

func TestContentSetPanicsOnImmutable(t *testing.T) {
	c := NewImmutable("/a.txt", []byte("1"))
	assert.Panics(t, func() { c.Set("/a.txt", []byte("2")) })
}
