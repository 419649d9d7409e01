// Package config holds the root kong command line of the vise binary.
package config

import (
	"github.com/Alia5/VISE/internal/cmd"
	"github.com/Alia5/VISE/internal/log"
)

type CLI struct {
	Log    log.Config `embed:"" prefix:"log."`
	Config string     `help:"Path to a JSON, YAML or TOML config file" type:"path" env:"VISE_CONFIG"`

	Serve cmd.Serve `cmd:"" help:"Run the input engine behind the VISE API server"`

	Held     cmd.Held     `cmd:"" help:"List the keys currently held"`
	Position cmd.Position `cmd:"" help:"Print the pointer position"`
	Move     cmd.Move     `cmd:"" help:"Move the pointer to absolute screen coordinates"`
	Click    cmd.Click    `cmd:"" help:"Click a pointer button"`
	Button   cmd.Button   `cmd:"" help:"Press or release a pointer button"`
	Scroll   cmd.Scroll   `cmd:"" help:"Scroll the vertical wheel"`
	Type     cmd.Type     `cmd:"" help:"Type text"`
	Press    cmd.Press    `cmd:"" help:"Press keys and keep them held"`
	Release  cmd.Release  `cmd:"" help:"Release keys"`
	Chord    cmd.Chord    `cmd:"" help:"Press keys in order, then release them"`
	Toggle   cmd.Toggle   `cmd:"" help:"Set each key to down or up"`

	Capabilities cmd.Capabilities `cmd:"" help:"Show the active backend and its optional capabilities"`
	Ping         cmd.Ping         `cmd:"" help:"Check a remote VISE server"`
	Keys         cmd.Keys         `cmd:"" help:"Print a key catalog"`
	Backends     cmd.Backends     `cmd:"" help:"List the backends available in this build"`
	Version      cmd.Version      `cmd:"" help:"Print the version"`

	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
	Service   cmd.Service       `cmd:"" help:"Manage the system service"`
}
