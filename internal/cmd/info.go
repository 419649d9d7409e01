package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/Alia5/VISE/backend"
	"github.com/Alia5/VISE/backend/platform"
	"github.com/Alia5/VISE/engine"
	"github.com/Alia5/VISE/internal/log"
	"github.com/Alia5/VISE/internal/version"
	"github.com/Alia5/VISE/key"
)

// Capabilities reports which optional operations the backend supports.
type Capabilities struct {
	Target `embed:""`
}

func (c *Capabilities) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	var (
		p    key.Platform
		caps backend.CapabilitySet
	)
	if c.Remote != "" {
		cl, err := c.client()
		if err != nil {
			return err
		}
		res, err := cl.Capabilities()
		if err != nil {
			return err
		}
		p, caps = res.Platform, res.Capabilities
	} else {
		e, err := engine.Open(context.Background(), c.Platform, engine.WithLogger(logger), engine.WithRawLogger(rawLogger))
		if err != nil {
			return err
		}
		defer e.Close()
		p, caps = e.Platform(), e.Capabilities()
	}
	fmt.Fprintf(stdout, "platform:     %s\ncapabilities: %s\n", p, caps)
	return nil
}

// Ping checks that a VISE server is reachable and the password is accepted.
type Ping struct {
	Target `embed:""`
}

func (c *Ping) Run(logger *slog.Logger) error {
	if c.Remote == "" {
		return errors.New("ping needs --remote")
	}
	cl, err := c.client()
	if err != nil {
		return err
	}
	res, err := cl.Ping()
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s %s on %s\n", res.Server, res.Version, res.Platform)
	return nil
}

// Keys prints the key catalog of a platform.
type Keys struct {
	Platform string `help:"Catalog to print: evdev, x11, windows, darwin or hid" default:"evdev"`
}

func (c *Keys) Run() error {
	p, err := key.ParsePlatform(c.Platform)
	if err != nil {
		return fmt.Errorf("%w (have %s)", err, joinPlatforms(key.Platforms()))
	}
	cat, _ := key.Lookup(p)
	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKEY\tCODE\tNOTE")
	for _, k := range key.All() {
		m := cat.Mapping(k)
		note := ""
		if m.Approximate {
			note = "approximate: " + m.Note
		}
		fmt.Fprintf(w, "%d\t%s\t%#x\t%s\n", uint16(k), k, uint32(m.Code), note)
	}
	return w.Flush()
}

// Backends lists the backends this build can open.
type Backends struct{}

func (c *Backends) Run() error {
	fmt.Fprintln(stdout, strings.Join(platform.Available(), "\n"))
	return nil
}

// Version prints the build version.
type Version struct{}

func (c *Version) Run() error {
	_, err := fmt.Fprintln(stdout, version.String())
	return err
}

func joinPlatforms(ps []key.Platform) string {
	s := make([]string, len(ps))
	for i, p := range ps {
		s[i] = string(p)
	}
	return strings.Join(s, ", ")
}
