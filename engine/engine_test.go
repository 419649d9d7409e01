package engine_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/VISE/backend"
	"github.com/Alia5/VISE/engine"
	th "github.com/Alia5/VISE/internal/testing"
	"github.com/Alia5/VISE/key"
)

var (
	codeA     = key.Evdev.Resolve(key.A)
	codeB     = key.Evdev.Resolve(key.B)
	codeShift = key.Evdev.Resolve(key.Shift)
	codeCtrl  = key.Evdev.Resolve(key.Control)
)

func newEngine(t *testing.T) (*engine.Engine, *th.RecordingBackend) {
	t.Helper()
	rb := th.NewRecordingBackend(key.PlatformEvdev)
	e, err := engine.New(rb)
	require.NoError(t, err)
	return e, rb
}

func newLiveEngine(t *testing.T) (*engine.Engine, *th.LiveBackend) {
	t.Helper()
	lb := th.NewLiveBackend(key.PlatformEvdev)
	e, err := engine.New(lb)
	require.NoError(t, err)
	return e, lb
}

func TestNew(t *testing.T) {
	_, err := engine.New(nil)
	var ce *engine.ConstructionError
	require.ErrorAs(t, err, &ce)

	rb := th.NewRecordingBackend(key.Platform("amiga"))
	_, err = engine.New(rb)
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "amiga", ce.Backend)
	assert.Equal(t, 1, rb.Closed)

	e, _ := newEngine(t)
	assert.Equal(t, key.PlatformEvdev, e.Platform())
	assert.Equal(t, backend.CapabilitySet{}, e.Capabilities())
}

func TestPressThenReleaseHeld(t *testing.T) {
	e, rb := newEngine(t)

	require.NoError(t, e.PressKeys([]key.Key{key.A}))
	held, err := e.HeldKeys()
	require.NoError(t, err)
	assert.Equal(t, []key.Code{codeA}, held)

	require.NoError(t, e.ReleaseKeys([]key.Key{key.A}))
	held, err = e.HeldKeys()
	require.NoError(t, err)
	assert.Empty(t, held)

	assert.Equal(t, []th.Call{
		th.KeyCall(codeA, backend.Press),
		th.KeyCall(codeA, backend.Release),
	}, rb.Calls)
}

func TestPressKeysOrderAndHeldSorted(t *testing.T) {
	e, rb := newEngine(t)

	require.NoError(t, e.PressKeys([]key.Key{key.Shift, key.B, key.A, key.A}))
	assert.Equal(t, []th.Call{
		th.KeyCall(codeShift, backend.Press),
		th.KeyCall(codeB, backend.Press),
		th.KeyCall(codeA, backend.Press),
		th.KeyCall(codeA, backend.Press),
	}, rb.Calls)

	held, err := e.HeldKeys()
	require.NoError(t, err)
	// evdev: KEY_A 30, KEY_LEFTSHIFT 42, KEY_B 48
	assert.Equal(t, []key.Code{codeA, codeShift, codeB}, held)
}

func TestPressKeysNoRollback(t *testing.T) {
	e, rb := newEngine(t)
	boom := errors.New("device gone")
	rb.FailOnCall(2, boom)

	err := e.PressKeys([]key.Key{key.A, key.B, key.Control})
	var be *engine.BackendError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "device gone", be.Cause)
	assert.ErrorIs(t, err, boom)

	held, err := e.HeldKeys()
	require.NoError(t, err)
	assert.Equal(t, []key.Code{codeA}, held)
	assert.Len(t, rb.Calls, 1, "stops at first failure")
}

func TestReleaseFailureKeepsHeld(t *testing.T) {
	e, rb := newEngine(t)
	require.NoError(t, e.PressKeys([]key.Key{key.A, key.B}))
	rb.FailOnCall(2, errors.New("nope"))

	require.Error(t, e.ReleaseKeys([]key.Key{key.A, key.B}))
	held, _ := e.HeldKeys()
	assert.Equal(t, []key.Code{codeB}, held)
}

func TestInvalidKeysRejectedUpFront(t *testing.T) {
	e, rb := newEngine(t)

	err := e.PressKeys([]key.Key{key.A, key.Key(999)})
	assert.ErrorIs(t, err, engine.ErrInvalidArgument)
	assert.Empty(t, rb.Calls)

	err = e.PressThenReleaseKeys([]key.Toggle{{Key: key.A}, {Key: key.Key(999)}})
	assert.ErrorIs(t, err, engine.ErrInvalidArgument)
	err = e.ToggleKeys([]key.Toggle{{Key: key.Key(999), Down: true}})
	assert.ErrorIs(t, err, engine.ErrInvalidArgument)
	assert.Empty(t, rb.Calls)
}

func TestPressThenReleaseKeysTwoPasses(t *testing.T) {
	e, rb := newEngine(t)

	require.NoError(t, e.PressThenReleaseKeys([]key.Toggle{
		{Key: key.A, Down: true},
		{Key: key.B, Down: false},
	}))
	assert.Equal(t, []th.Call{
		th.KeyCall(codeA, backend.Press),
		th.KeyCall(codeB, backend.Press),
		th.KeyCall(codeA, backend.Release),
		th.KeyCall(codeB, backend.Release),
	}, rb.Calls)

	held, _ := e.HeldKeys()
	assert.Empty(t, held)
}

func TestPressThenReleaseKeysChord(t *testing.T) {
	e, rb := newEngine(t)
	toggles := []key.Toggle{{Key: key.Control, Down: true}, {Key: key.A, Down: true}}

	require.NoError(t, e.PressThenReleaseKeys(toggles))
	assert.Equal(t, []string{
		"key 0x1d press",
		"key 0x1e press",
		"key 0x1d release",
		"key 0x1e release",
	}, rb.Ops())
	assert.Equal(t, codeCtrl, key.Code(0x1d))
}

func TestToggleKeysFollowsFlag(t *testing.T) {
	e, rb := newEngine(t)

	require.NoError(t, e.ToggleKeys([]key.Toggle{
		{Key: key.A, Down: true},
		{Key: key.B, Down: true},
		{Key: key.A, Down: false},
	}))
	assert.Equal(t, []th.Call{
		th.KeyCall(codeA, backend.Press),
		th.KeyCall(codeB, backend.Press),
		th.KeyCall(codeA, backend.Release),
	}, rb.Calls)
	held, _ := e.HeldKeys()
	assert.Equal(t, []key.Code{codeB}, held)
}

func TestClickButton(t *testing.T) {
	e, rb := newEngine(t)

	require.NoError(t, e.ClickButton(key.Left))
	assert.Equal(t, []th.Call{
		th.ButtonCall(key.Left, backend.Press),
		th.ButtonCall(key.Left, backend.Release),
	}, rb.Calls)
	held, _ := e.HeldKeys()
	assert.Empty(t, held)

	assert.ErrorIs(t, e.ClickButton(key.Button(7)), engine.ErrInvalidArgument)
}

func TestSetButtonStateIsPassthrough(t *testing.T) {
	e, rb := newEngine(t)

	require.NoError(t, e.SetButtonState(key.Right, true))
	require.NoError(t, e.SetButtonState(key.Right, true))
	require.NoError(t, e.SetButtonState(key.Middle, false))
	assert.Equal(t, []string{"button right press", "button right press", "button middle release"}, rb.Ops())

	held, _ := e.HeldKeys()
	assert.Empty(t, held, "button state is not a held key")
}

func TestScroll(t *testing.T) {
	tests := []struct {
		name   string
		dir    key.Direction
		amount int
		want   int
	}{
		{"down", key.Down, 5, 5},
		{"up", key.Up, 5, -5},
		{"zero", key.Down, 0, 0},
		{"negative down passes through", key.Down, -3, -3},
		{"negative up passes through", key.Up, -3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, rb := newEngine(t)
			require.NoError(t, e.Scroll(tt.dir, tt.amount))
			require.Len(t, rb.Calls, 1)
			assert.Equal(t, tt.want, rb.Calls[0].Length)
			assert.Equal(t, backend.Vertical, rb.Calls[0].Axis)
		})
	}

	e, rb := newEngine(t)
	assert.ErrorIs(t, e.Scroll(key.Direction(4), 1), engine.ErrInvalidArgument)
	assert.ErrorIs(t, e.Scroll(key.Up, math.MinInt), engine.ErrInvalidArgument)
	assert.Empty(t, rb.Calls)

	require.NoError(t, e.Scroll(key.Down, math.MinInt))
	assert.Equal(t, math.MinInt, rb.Calls[0].Length)
}

func TestTypeTextEmptyIsNoop(t *testing.T) {
	e, rb := newEngine(t)
	require.NoError(t, e.TypeText(""))
	assert.Empty(t, rb.Calls)

	le, lb := newLiveEngine(t)
	require.NoError(t, le.TypeText(""))
	assert.Empty(t, lb.Calls)
}

func TestTypeTextStrokes(t *testing.T) {
	e, rb := newEngine(t)

	require.NoError(t, e.TypeText("aB"))
	assert.Equal(t, []th.Call{
		th.KeyCall(codeA, backend.Press),
		th.KeyCall(codeA, backend.Release),
		th.KeyCall(codeShift, backend.Press),
		th.KeyCall(codeB, backend.Press),
		th.KeyCall(codeB, backend.Release),
		th.KeyCall(codeShift, backend.Release),
	}, rb.Calls)
	held, _ := e.HeldKeys()
	assert.Empty(t, held)
}

func TestTypeTextKeepsHeldShift(t *testing.T) {
	e, rb := newEngine(t)
	require.NoError(t, e.PressKeys([]key.Key{key.Shift}))
	rb.Calls = nil

	require.NoError(t, e.TypeText("Ab"))
	assert.Equal(t, []th.Call{
		th.KeyCall(codeA, backend.Press),
		th.KeyCall(codeA, backend.Release),
		th.KeyCall(codeShift, backend.Release),
		th.KeyCall(codeB, backend.Press),
		th.KeyCall(codeB, backend.Release),
		th.KeyCall(codeShift, backend.Press),
	}, rb.Calls)

	held, err := e.HeldKeys()
	require.NoError(t, err)
	assert.Equal(t, []key.Code{codeShift}, held)
}

func TestTypeTextFailureWhileShiftLifted(t *testing.T) {
	e, rb := newEngine(t)
	require.NoError(t, e.PressKeys([]key.Key{key.Shift}))
	rb.FailOnCall(2, errors.New("write /dev/uinput: broken pipe"))

	var be *engine.BackendError
	require.ErrorAs(t, e.TypeText("a"), &be)

	// Shift was released on the device before the failure.
	held, err := e.HeldKeys()
	require.NoError(t, err)
	assert.Empty(t, held)
}

func TestTypeTextUntypeableFailsBeforeOutput(t *testing.T) {
	e, rb := newEngine(t)

	err := e.TypeText("abc→d")
	assert.ErrorIs(t, err, backend.ErrUnsupported)
	var ue *backend.UnsupportedError
	require.ErrorAs(t, err, &ue)
	assert.Contains(t, ue.Detail, "'→'")
	assert.Empty(t, rb.Calls)
}

func TestTypeTextDirect(t *testing.T) {
	e, lb := newLiveEngine(t)

	require.NoError(t, e.TypeText("héllo 😀"))
	require.Len(t, lb.Calls, 1)
	assert.Equal(t, th.Call{Op: "text", Text: "héllo 😀"}, lb.Calls[0])
}

func TestTypeTextInvalidUTF8(t *testing.T) {
	e, lb := newLiveEngine(t)
	assert.ErrorIs(t, e.TypeText("a\xffb"), engine.ErrInvalidArgument)
	assert.Empty(t, lb.Calls)
}

func TestTypeTextBackendFailure(t *testing.T) {
	e, rb := newEngine(t)
	rb.FailOnCall(3, errors.New("write /dev/uinput: broken pipe"))

	err := e.TypeText("abc")
	var be *engine.BackendError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "write /dev/uinput: broken pipe", be.Cause)
	assert.Equal(t, "type text: write /dev/uinput: broken pipe", err.Error())
	assert.Len(t, rb.Calls, 2, "partial output is kept")
}

func TestPointerUnsupported(t *testing.T) {
	e, rb := newEngine(t)

	_, err := e.PointerPosition()
	assert.ErrorIs(t, err, backend.ErrUnsupported)
	assert.ErrorIs(t, e.SetPointerPosition(1, 2), backend.ErrUnsupported)
	assert.Empty(t, rb.Calls)
}

func TestPointerLive(t *testing.T) {
	e, lb := newLiveEngine(t)

	require.NoError(t, e.SetPointerPosition(-20, 70000))
	p, err := e.PointerPosition()
	require.NoError(t, err)
	assert.Equal(t, engine.Point{X: -20, Y: 70000}, p)
	assert.Equal(t, []string{"move -20,70000"}, lb.Ops())
}

func TestHeldKeysPrefersLiveQuery(t *testing.T) {
	e, lb := newLiveEngine(t)

	lb.SetHeld(codeCtrl, true)
	require.NoError(t, e.PressKeys([]key.Key{key.A}))
	held, err := e.HeldKeys()
	require.NoError(t, err)
	assert.Equal(t, []key.Code{codeCtrl, codeA}, held)

	lb.SetHeld(codeA, false)
	held, err = e.HeldKeys()
	require.NoError(t, err)
	assert.Equal(t, []key.Code{codeCtrl}, held)

	lb.HeldErr = errors.New("query denied")
	_, err = e.HeldKeys()
	var be *engine.BackendError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "held keys", be.Op)
}

func TestUnsupportedFromBackendIsNotWrapped(t *testing.T) {
	e, rb := newEngine(t)
	rb.Fail = func(th.Call) error {
		return backend.Unsupported("button middle", key.PlatformEvdev, "")
	}

	err := e.ClickButton(key.Middle)
	var ue *backend.UnsupportedError
	require.ErrorAs(t, err, &ue)
	var be *engine.BackendError
	assert.False(t, errors.As(err, &be))
}

func TestClose(t *testing.T) {
	e, rb := newEngine(t)
	require.NoError(t, e.PressKeys([]key.Key{key.A}))

	require.NoError(t, e.Close())
	require.NoError(t, e.Close())
	assert.Equal(t, 1, rb.Closed)
	assert.Len(t, rb.Calls, 1, "held keys are not released on close")

	assert.ErrorIs(t, e.PressKeys([]key.Key{key.A}), engine.ErrClosed)
	assert.ErrorIs(t, e.ClickButton(key.Left), engine.ErrClosed)
	assert.ErrorIs(t, e.Scroll(key.Down, 1), engine.ErrClosed)
	assert.ErrorIs(t, e.TypeText("x"), engine.ErrClosed)
	_, err := e.HeldKeys()
	assert.ErrorIs(t, err, engine.ErrClosed)
}

func TestResolveRoundTripThroughEngine(t *testing.T) {
	for _, k := range key.All() {
		e, rb := newEngine(t)
		require.NoError(t, e.PressKeys([]key.Key{k}))
		code := rb.Calls[0].Code
		assert.Equal(t, key.Evdev.Resolve(k), code)
		if m := key.Evdev.Mapping(k); !m.Approximate {
			got, ok := key.Evdev.Decode(code)
			assert.True(t, ok)
			assert.Equal(t, k, got)
		}
	}
}
