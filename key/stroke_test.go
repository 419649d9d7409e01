package key_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alia5/VISE/key"
)

func TestStrokeFor(t *testing.T) {
	tests := []struct {
		r    rune
		want key.Stroke
		ok   bool
	}{
		{r: 'a', want: key.Stroke{Key: key.A}, ok: true},
		{r: 'A', want: key.Stroke{Key: key.A, Shift: true}, ok: true},
		{r: '0', want: key.Stroke{Key: key.Num0}, ok: true},
		{r: ')', want: key.Stroke{Key: key.Num0, Shift: true}, ok: true},
		{r: '?', want: key.Stroke{Key: key.Slash, Shift: true}, ok: true},
		{r: '\n', want: key.Stroke{Key: key.Return}, ok: true},
		{r: ' ', want: key.Stroke{Key: key.Space}, ok: true},
		{r: 'é', ok: false},
		{r: '€', ok: false},
	}
	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			got, ok := key.StrokeFor(tt.r)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStrokesCoverPrintableASCII(t *testing.T) {
	for r := rune(0x20); r < 0x7f; r++ {
		_, ok := key.StrokeFor(r)
		assert.True(t, ok, "%q", r)
	}
}

func TestStrokes(t *testing.T) {
	got, bad := key.Strokes("Hi!")
	assert.Equal(t, -1, bad)
	assert.Equal(t, []key.Stroke{
		{Key: key.H, Shift: true},
		{Key: key.I},
		{Key: key.Num1, Shift: true},
	}, got)

	got, bad = key.Strokes("ok ÿes")
	assert.Nil(t, got)
	assert.Equal(t, 3, bad)
}
