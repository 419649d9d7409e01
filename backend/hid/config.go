package hid

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/Alia5/VISE/internal/log"
)

// Config selects the outputs of the hid backend.
type Config struct {
	Keyboard       string        `help:"Keyboard HID gadget node for the report encoding (e.g. /dev/hidg0)" env:"VISE_HID_KEYBOARD"`
	Mouse          string        `help:"Mouse HID gadget node for the report encoding (e.g. /dev/hidg1)" env:"VISE_HID_MOUSE"`
	Encoding       Encoding      `help:"Report encoding: report (34-byte NKRO gadget), boot (8-byte boot keyboard gadget) or stream (VIIPER device stream)" default:"report" enum:"report,boot,stream" env:"VISE_HID_ENCODING"`
	StreamAddr     string        `help:"VIIPER API address for the stream encoding" default:"localhost:3242" env:"VISE_HID_STREAM_ADDR"`
	KeyboardDevice string        `help:"VIIPER keyboard device as busId/devId" env:"VISE_HID_KEYBOARD_DEVICE"`
	MouseDevice    string        `help:"VIIPER mouse device as busId/devId" env:"VISE_HID_MOUSE_DEVICE"`
	DialTimeout    time.Duration `help:"Stream dial timeout" default:"3s" env:"VISE_HID_DIAL_TIMEOUT"`
}

// Open opens the outputs named by cfg and returns a backend over them.
func Open(ctx context.Context, cfg Config, logger *slog.Logger, rawLogger log.RawLogger) (*Backend, error) {
	var kbd, ms io.WriteCloser
	var err error
	switch cfg.Encoding {
	case EncodingStream:
		kbd, err = openStream(ctx, cfg, cfg.KeyboardDevice)
		if err == nil {
			ms, err = openStream(ctx, cfg, cfg.MouseDevice)
		}
	case EncodingReport, EncodingBoot, "":
		if cfg.Encoding == "" {
			cfg.Encoding = EncodingReport
		}
		kbd, err = openNode(cfg.Keyboard)
		if err == nil {
			ms, err = openNode(cfg.Mouse)
		}
	default:
		err = fmt.Errorf("unknown encoding %q", cfg.Encoding)
	}
	if err != nil {
		closeAll(kbd, ms)
		return nil, fmt.Errorf("hid: %w", err)
	}

	b, err := New(writerOrNil(kbd), writerOrNil(ms),
		WithEncoding(cfg.Encoding), WithLogger(logger), WithRawLogger(rawLogger))
	if err != nil {
		closeAll(kbd, ms)
		return nil, err
	}
	logger.Debug("hid backend ready", "encoding", cfg.Encoding, "keyboard", kbd != nil, "mouse", ms != nil)
	return b, nil
}

func openNode(path string) (io.WriteCloser, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func openStream(ctx context.Context, cfg Config, device string) (io.WriteCloser, error) {
	if device == "" {
		return nil, nil
	}
	busID, devID, err := ParseDevice(device)
	if err != nil {
		return nil, err
	}
	conn, err := DialStream(ctx, cfg.StreamAddr, busID, devID, cfg.DialTimeout)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// writerOrNil keeps a nil io.WriteCloser from becoming a non-nil io.Writer.
func writerOrNil(w io.WriteCloser) io.Writer {
	if w == nil {
		return nil
	}
	return w
}

func closeAll(cs ...io.WriteCloser) {
	for _, c := range cs {
		if c != nil {
			_ = c.Close()
		}
	}
}

