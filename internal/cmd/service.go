package cmd

import "log/slog"

// Service manages the system service that runs "vise serve".
type Service struct {
	Install   ServiceInstall   `cmd:"" help:"Install and start the service"`
	Uninstall ServiceUninstall `cmd:"" help:"Stop and remove the service"`
}

type ServiceInstall struct{}

func (c *ServiceInstall) Run(logger *slog.Logger) error { return install(logger) }

type ServiceUninstall struct{}

func (c *ServiceUninstall) Run(logger *slog.Logger) error { return uninstall(logger) }
