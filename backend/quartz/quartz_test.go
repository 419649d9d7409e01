package quartz

import (
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"

	"github.com/Alia5/VISE/key"
)

func TestFlagsAfter(t *testing.T) {
	shift := uint16(key.Darwin.Resolve(key.Shift))
	cmd := uint16(key.Darwin.Resolve(key.Meta))
	a := uint16(key.Darwin.Resolve(key.A))

	f := flagsAfter(0, shift, true)
	assert.Equal(t, uint64(0x20000), f)
	f = flagsAfter(f, cmd, true)
	assert.Equal(t, uint64(0x120000), f)
	assert.Equal(t, f, flagsAfter(f, a, true), "plain keys keep the mask")
	f = flagsAfter(f, shift, false)
	assert.Equal(t, uint64(0x100000), f)
}

func TestCatalogModifiersHaveFlags(t *testing.T) {
	for _, k := range []key.Key{key.Shift, key.Control, key.Alt, key.Meta} {
		_, ok := modifierFlags[uint16(key.Darwin.Resolve(k))]
		assert.True(t, ok, k.String())
	}
}

func TestScrollChunks(t *testing.T) {
	assert.Equal(t, []int32{-3}, scrollChunks(3))
	assert.Equal(t, []int32{5}, scrollChunks(-5))
	assert.Empty(t, scrollChunks(0))
}

func TestChunkUnits(t *testing.T) {
	units := utf16.Encode([]rune("0123456789012345678😀xy"))
	// 19 ASCII units, then a surrogate pair straddling the 20 unit limit.
	chunks := chunkUnits(units)
	assert.Len(t, chunks, 2)
	assert.Len(t, chunks[0], 19)
	assert.Equal(t, "😀xy", string(utf16.Decode(chunks[1])))

	assert.Empty(t, chunkUnits(nil))
	assert.Len(t, chunkUnits(make([]uint16, 40)), 2)
}
