package locator

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goXRPLwasm/sfield"
)

func TestPackFieldPath(t *testing.T) {
	l := New()

	require.True(t, l.Pack(sfield.Memos))
	require.True(t, l.PackIndex(0))
	require.True(t, l.Pack(sfield.MemoData.Code()))

	require.Equal(t, 12, l.Len())

	b := l.Bytes()
	assert.Equal(t, uint32(sfield.Memos), binary.LittleEndian.Uint32(b[0:4]))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(b[4:8]))
	assert.Equal(t, uint32(sfield.MemoData.Code()), binary.LittleEndian.Uint32(b[8:12]))
}

func TestNewWithSlot(t *testing.T) {
	l := NewWithSlot(7)

	require.True(t, l.Pack(sfield.SignerEntries))
	require.True(t, l.PackIndex(2))

	require.Equal(t, 9, l.Len())
	b := l.Bytes()
	assert.Equal(t, byte(7), b[0])
	assert.Equal(t, uint32(sfield.SignerEntries), binary.LittleEndian.Uint32(b[1:5]))
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(b[5:9]))
}

func TestRepackLast(t *testing.T) {
	l := New()
	require.True(t, l.Pack(sfield.Memos))
	require.True(t, l.PackIndex(0))

	require.True(t, l.RepackLastIndex(3))
	require.Equal(t, 8, l.Len())
	assert.Equal(t, uint32(3), binary.LittleEndian.Uint32(l.Bytes()[4:8]))

	require.True(t, l.RepackLast(sfield.MemoType.Code()))
	require.Equal(t, 8, l.Len())
	assert.Equal(t, uint32(sfield.MemoType.Code()), binary.LittleEndian.Uint32(l.Bytes()[4:8]))
}

func TestRepackLastEmpty(t *testing.T) {
	l := New()
	assert.False(t, l.RepackLastIndex(0))

	// A bare slot prefix is not a packed step either.
	ls := NewWithSlot(1)
	assert.False(t, ls.RepackLast(sfield.Memos))
}

func TestPackOverflow(t *testing.T) {
	l := New()
	for i := 0; i < BufferSize/4; i++ {
		require.True(t, l.PackIndex(int32(i)))
	}
	assert.False(t, l.Pack(sfield.Memos))
	assert.Equal(t, BufferSize, l.Len())

	// With a slot prefix only 15 full steps fit.
	ls := NewWithSlot(0)
	for i := 0; i < 15; i++ {
		require.True(t, ls.PackIndex(int32(i)))
	}
	assert.False(t, ls.PackIndex(15))
	assert.Equal(t, 61, ls.Len())
}

func TestIsEmpty(t *testing.T) {
	l := New()
	assert.True(t, l.IsEmpty())
	l.PackIndex(0)
	assert.False(t, l.IsEmpty())
}
