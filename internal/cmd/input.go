package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Alia5/VISE/internal/log"
	"github.com/Alia5/VISE/key"
)

type Held struct {
	Target `embed:""`
}

func (c *Held) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	return c.with(logger, rawLogger, func(d driver, cat *key.Catalog) error {
		codes, err := d.HeldKeys()
		if err != nil {
			return err
		}
		printHeld(codes, cat)
		return nil
	})
}

type Position struct {
	Target `embed:""`
}

func (c *Position) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	return c.with(logger, rawLogger, func(d driver, _ *key.Catalog) error {
		p, err := d.PointerPosition()
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%d %d\n", p.X, p.Y)
		return nil
	})
}

type Move struct {
	Target `embed:""`
	X      int `arg:"" help:"Screen X coordinate"`
	Y      int `arg:"" help:"Screen Y coordinate"`
}

func (c *Move) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	return c.with(logger, rawLogger, func(d driver, _ *key.Catalog) error {
		return d.SetPointerPosition(c.X, c.Y)
	})
}

type Click struct {
	Target `embed:""`
	Button string `arg:"" optional:"" default:"left" help:"left, middle or right"`
}

func (c *Click) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	b, err := key.ParseButton(c.Button)
	if err != nil {
		return err
	}
	return c.with(logger, rawLogger, func(d driver, _ *key.Catalog) error {
		return d.ClickButton(b)
	})
}

// Button holds a button down, or releases it with --up.
type Button struct {
	Target `embed:""`
	Button string `arg:"" help:"left, middle or right"`
	Up     bool   `help:"Release instead of press"`
}

func (c *Button) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	b, err := key.ParseButton(c.Button)
	if err != nil {
		return err
	}
	return c.with(logger, rawLogger, func(d driver, _ *key.Catalog) error {
		return d.SetButtonState(b, !c.Up)
	})
}

type Scroll struct {
	Target    `embed:""`
	Direction string `arg:"" enum:"up,down" help:"up or down"`
	Amount    int    `arg:"" optional:"" default:"1" help:"Wheel detents"`
}

func (c *Scroll) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	dir, err := key.ParseDirection(c.Direction)
	if err != nil {
		return err
	}
	return c.with(logger, rawLogger, func(d driver, _ *key.Catalog) error {
		return d.Scroll(dir, c.Amount)
	})
}

// Type injects text. The arguments are joined with single spaces; a lone
// "-" reads the text from stdin instead.
type Type struct {
	Target `embed:""`
	Text   []string `arg:"" help:"Text to type, or - for stdin"`
}

func (c *Type) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	text := strings.Join(c.Text, " ")
	if text == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(b)
	}
	return c.with(logger, rawLogger, func(d driver, _ *key.Catalog) error {
		return d.TypeText(text)
	})
}

type Press struct {
	Target `embed:""`
	Keys   []string `arg:"" help:"Key names, e.g. ctrl shift a"`
}

func (c *Press) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	keys, err := key.ParseAll(c.Keys)
	if err != nil {
		return err
	}
	return c.with(logger, rawLogger, func(d driver, _ *key.Catalog) error {
		return d.PressKeys(keys)
	})
}

type Release struct {
	Target `embed:""`
	Keys   []string `arg:"" help:"Key names"`
}

func (c *Release) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	keys, err := key.ParseAll(c.Keys)
	if err != nil {
		return err
	}
	return c.with(logger, rawLogger, func(d driver, _ *key.Catalog) error {
		return d.ReleaseKeys(keys)
	})
}

// Chord presses every key in order, then releases them in the same order.
type Chord struct {
	Target `embed:""`
	Keys   []string `arg:"" help:"Key names, e.g. ctrl alt delete"`
}

func (c *Chord) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	toggles, err := parseToggles(c.Keys)
	if err != nil {
		return err
	}
	return c.with(logger, rawLogger, func(d driver, _ *key.Catalog) error {
		return d.PressThenReleaseKeys(toggles)
	})
}

type Toggle struct {
	Target `embed:""`
	Keys   []string `arg:"" help:"name, name:down or name:up per key"`
}

func (c *Toggle) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	toggles, err := parseToggles(c.Keys)
	if err != nil {
		return err
	}
	return c.with(logger, rawLogger, func(d driver, cat *key.Catalog) error {
		if err := d.ToggleKeys(toggles); err != nil {
			return err
		}
		codes, err := d.HeldKeys()
		if err != nil {
			return err
		}
		printHeld(codes, cat)
		return nil
	})
}

func parseToggles(args []string) ([]key.Toggle, error) {
	out := make([]key.Toggle, 0, len(args))
	for _, a := range args {
		t, err := key.ParseToggle(a)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
