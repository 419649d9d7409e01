// Package hid injects input by emitting USB HID keyboard and mouse reports.
//
// Reports go to any io.Writer: a Linux USB gadget node (/dev/hidgN) with the
// report or boot encoding, or a VIIPER device stream with the stream
// encoding. The backend keeps the report state itself, so it can always tell
// which keys it holds. State changes only after the report carrying them has
// been written.
package hid

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Alia5/VISE/backend"
	"github.com/Alia5/VISE/internal/log"
	"github.com/Alia5/VISE/key"
)

// Encoding selects how report state is serialised.
type Encoding string

const (
	// EncodingReport writes fixed-size N-key rollover reports: a 34-byte
	// keyboard report and a 9-byte mouse report, without report IDs. The
	// gadget's report descriptors must declare exactly these layouts.
	EncodingReport Encoding = "report"
	// EncodingBoot writes boot protocol reports (8-byte keyboard, 4-byte
	// mouse with wheel) for gadgets using the standard boot descriptors.
	// More than six held non-modifier keys produce a rollover error report;
	// there is no horizontal wheel.
	EncodingBoot Encoding = "boot"
	// EncodingStream writes the VIIPER device stream format.
	EncodingStream Encoding = "stream"
)

// Backend implements backend.Backend and backend.HeldReporter.
type Backend struct {
	keyboard io.Writer
	mouse    io.Writer
	closers  []io.Closer
	closed   bool

	encoding  Encoding
	logger    *slog.Logger
	rawLogger log.RawLogger

	kbd KeyboardState
	ms  MouseState
}

type Option func(*Backend)

func WithEncoding(e Encoding) Option { return func(b *Backend) { b.encoding = e } }

func WithLogger(l *slog.Logger) Option { return func(b *Backend) { b.logger = l } }

// WithRawLogger records every report written.
func WithRawLogger(r log.RawLogger) Option { return func(b *Backend) { b.rawLogger = r } }

// New returns a backend writing keyboard reports to keyboard and mouse
// reports to mouse. Either may be nil, not both. Writers that are also
// io.Closers are closed by Close.
func New(keyboard, mouse io.Writer, opts ...Option) (*Backend, error) {
	if keyboard == nil && mouse == nil {
		return nil, errors.New("hid: neither keyboard nor mouse output configured")
	}
	b := &Backend{
		keyboard:  keyboard,
		mouse:     mouse,
		encoding:  EncodingReport,
		logger:    slog.Default(),
		rawLogger: log.NewRaw(nil),
	}
	for _, o := range opts {
		o(b)
	}
	switch b.encoding {
	case EncodingReport, EncodingBoot, EncodingStream:
	default:
		return nil, fmt.Errorf("hid: unknown encoding %q", b.encoding)
	}
	for _, w := range []io.Writer{keyboard, mouse} {
		if c, ok := w.(io.Closer); ok {
			b.closers = append(b.closers, c)
		}
	}
	return b, nil
}

func (b *Backend) Platform() key.Platform { return key.PlatformHID }

func (b *Backend) Key(code key.Code, dir backend.Direction) error {
	if b.keyboard == nil {
		return backend.Unsupported("key", key.PlatformHID, "no keyboard output configured")
	}
	if code > 0xFF {
		return fmt.Errorf("hid: usage %#x out of range", uint32(code))
	}
	next := b.kbd
	next.Set(uint8(code), dir == backend.Press)
	if err := b.writeKeyboard(next); err != nil {
		return err
	}
	b.kbd = next
	return nil
}

func (b *Backend) Button(btn key.Button, dir backend.Direction) error {
	if b.mouse == nil {
		return backend.Unsupported("button", key.PlatformHID, "no mouse output configured")
	}
	var mask uint8
	switch btn {
	case key.Left:
		mask = BtnLeft
	case key.Middle:
		mask = BtnMiddle
	case key.Right:
		mask = BtnRight
	default:
		return fmt.Errorf("hid: unknown button %d", uint8(btn))
	}
	next := b.ms
	if dir == backend.Press {
		next.Buttons |= mask
	} else {
		next.Buttons &^= mask
	}
	if err := b.writeMouse(next); err != nil {
		return err
	}
	b.ms = next
	return nil
}

// Scroll emits one report per report-sized chunk of detents. The HID wheel
// counts positive away from the user, so vertical lengths are negated.
// Wheel deltas are never part of the kept state.
func (b *Backend) Scroll(length int, axis backend.Axis) error {
	if b.mouse == nil {
		return backend.Unsupported("scroll", key.PlatformHID, "no mouse output configured")
	}
	limit := 32767
	if b.encoding == EncodingBoot {
		if axis == backend.Horizontal {
			return backend.Unsupported("horizontal scroll", key.PlatformHID, "boot mouse reports have no pan axis")
		}
		limit = 127
	}
	sign := 1
	if axis == backend.Vertical {
		sign = -1
	}
	for length != 0 {
		chunk := max(min(length, limit), -limit)
		length -= chunk
		next := b.ms
		if axis == backend.Vertical {
			next.Wheel = int16(sign * chunk)
		} else {
			next.Pan = int16(sign * chunk)
		}
		if err := b.writeMouse(next); err != nil {
			return err
		}
	}
	return nil
}

// Held reports the usages held by this backend's keyboard report.
func (b *Backend) Held() ([]key.Code, error) {
	usages := b.kbd.Held()
	codes := make([]key.Code, len(usages))
	for i, u := range usages {
		codes[i] = key.Code(u)
	}
	return codes, nil
}

// Close closes the outputs. The held state is not released first; callers
// that care release their keys before closing.
func (b *Backend) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	var errs []error
	for _, c := range b.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

func (b *Backend) writeKeyboard(st KeyboardState) error {
	var data []byte
	switch b.encoding {
	case EncodingStream:
		data, _ = st.MarshalBinary()
	case EncodingBoot:
		data = st.BootReport()
	default:
		data = st.BuildReport()
	}
	return b.write(b.keyboard, "keyboard", data)
}

func (b *Backend) writeMouse(st MouseState) error {
	var data []byte
	switch b.encoding {
	case EncodingStream:
		data, _ = st.MarshalBinary()
	case EncodingBoot:
		data = st.BootReport()
	default:
		data = st.BuildReport()
	}
	return b.write(b.mouse, "mouse", data)
}

func (b *Backend) write(w io.Writer, dev string, data []byte) error {
	if b.closed {
		return errors.New("hid: backend closed")
	}
	b.rawLogger.Log(false, data)
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("hid: write %s report: %w", dev, err)
	}
	b.logger.Log(context.Background(), log.LevelTrace, "hid report", "device", dev, "bytes", len(data))
	return nil
}
