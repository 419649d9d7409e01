package api

import "time"

// ServerConfig configures the API listener.
type ServerConfig struct {
	Addr              string        `help:"API server listen address" default:"localhost:3243" env:"VISE_API_ADDR"`
	RequireLocalAuth  bool          `help:"Require the password from loopback clients too" default:"false" env:"VISE_API_REQUIRE_LOCAL_AUTH"`
	NoAuth            bool          `help:"Disable the password entirely" default:"false" env:"VISE_API_NO_AUTH"`
	ConnectionTimeout time.Duration `help:"Per-request read/write deadline" default:"10s" env:"VISE_API_CONNECTION_TIMEOUT"`
	Password          string        `kong:"-"`
}
