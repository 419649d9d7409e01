package key_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/VISE/key"
)

// Integer identities are part of the wire contract and must never change.
func TestKeyIdentities(t *testing.T) {
	golden := []struct {
		key key.Key
		id  uint16
	}{
		{key.Num0, 0}, {key.Num9, 9},
		{key.A, 10}, {key.M, 22}, {key.Z, 35},
		{key.Add, 36}, {key.Subtract, 37}, {key.Multiply, 38}, {key.Divide, 39},
		{key.OEM2, 40}, {key.Tab, 41}, {key.CapsLock, 42}, {key.Shift, 43},
		{key.Control, 44}, {key.Alt, 45}, {key.Space, 46}, {key.Backspace, 47},
		{key.Return, 48}, {key.Escape, 49}, {key.UpArrow, 50}, {key.DownArrow, 51},
		{key.LeftArrow, 52}, {key.RightArrow, 53}, {key.Meta, 54},
		{key.F1, 55}, {key.F12, 66}, {key.Home, 67}, {key.Insert, 72},
		{key.Minus, 73}, {key.Slash, 83},
	}
	for _, g := range golden {
		assert.Equal(t, g.id, uint16(g.key), g.key.String())
	}
	assert.Equal(t, 84, key.Count())

	assert.Equal(t, uint8(0), uint8(key.Left))
	assert.Equal(t, uint8(1), uint8(key.Middle))
	assert.Equal(t, uint8(2), uint8(key.Right))
	assert.Equal(t, uint8(0), uint8(key.Down))
	assert.Equal(t, uint8(1), uint8(key.Up))
}

func TestKeyValid(t *testing.T) {
	assert.True(t, key.Meta.Valid())
	assert.True(t, key.Slash.Valid())
	assert.False(t, key.Key(84).Valid())
	assert.Equal(t, "Key(300)", key.Key(300).String())
	assert.Len(t, key.All(), key.Count())
	for i, k := range key.All() {
		assert.Equal(t, key.Key(i), k)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    key.Key
		wantErr bool
	}{
		{name: "canonical", in: "Return", want: key.Return},
		{name: "case-insensitive", in: "rIgHtArRoW", want: key.RightArrow},
		{name: "digit", in: "7", want: key.Num7},
		{name: "letter", in: "q", want: key.Q},
		{name: "alias ctrl", in: "ctrl", want: key.Control},
		{name: "alias enter", in: "Enter", want: key.Return},
		{name: "alias cmd", in: "cmd", want: key.Meta},
		{name: "alias symbol", in: "[", want: key.LeftBracket},
		{name: "identity", in: "#48", want: key.Return},
		{name: "identity out of range", in: "#84", wantErr: true},
		{name: "identity garbage", in: "#x", wantErr: true},
		{name: "unknown", in: "hyper", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := key.Parse(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAll(t *testing.T) {
	keys, err := key.ParseAll([]string{"ctrl", "shift", "t"})
	require.NoError(t, err)
	assert.Equal(t, []key.Key{key.Control, key.Shift, key.T}, keys)

	_, err = key.ParseAll([]string{"ctrl", "nope"})
	assert.ErrorContains(t, err, `"nope"`)
}

func TestNamesRoundTrip(t *testing.T) {
	for _, k := range key.All() {
		got, err := key.Parse(k.String())
		require.NoError(t, err, k.String())
		assert.Equal(t, k, got)
	}
}

func TestKeyJSON(t *testing.T) {
	b, err := json.Marshal([]key.Toggle{{Key: key.Shift, Down: true}, {Key: key.A}})
	require.NoError(t, err)
	assert.Equal(t, `[{"key":"Shift","down":true},{"key":"A","down":false}]`, string(b))

	var toggles []key.Toggle
	require.NoError(t, json.Unmarshal([]byte(`[{"key":"ctrl","down":true},{"key":"#10"}]`), &toggles))
	assert.Equal(t, []key.Toggle{{Key: key.Control, Down: true}, {Key: key.A}}, toggles)

	_, err = json.Marshal(key.Key(999))
	assert.Error(t, err)
}

func TestParseButtonAndDirection(t *testing.T) {
	b, err := key.ParseButton("Middle")
	require.NoError(t, err)
	assert.Equal(t, key.Middle, b)
	b, err = key.ParseButton("2")
	require.NoError(t, err)
	assert.Equal(t, key.Right, b)
	_, err = key.ParseButton("back")
	assert.Error(t, err)
	assert.False(t, key.Button(3).Valid())

	d, err := key.ParseDirection("UP")
	require.NoError(t, err)
	assert.Equal(t, key.Up, d)
	_, err = key.ParseDirection("sideways")
	assert.Error(t, err)
	assert.Equal(t, "Direction(7)", key.Direction(7).String())
}

func TestParseToggle(t *testing.T) {
	tests := []struct {
		in      string
		want    key.Toggle
		wantErr bool
	}{
		{in: "shift", want: key.Toggle{Key: key.Shift, Down: true}},
		{in: "shift:down", want: key.Toggle{Key: key.Shift, Down: true}},
		{in: "a:up", want: key.Toggle{Key: key.A}},
		{in: "a:release", want: key.Toggle{Key: key.A}},
		{in: "a:sideways", wantErr: true},
		{in: ":up", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := key.ParseToggle(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
