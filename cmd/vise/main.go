package main

import (
	"os"

	"github.com/Alia5/VISE/internal/config"
	"github.com/Alia5/VISE/internal/configpaths"
	"github.com/Alia5/VISE/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {
	paths := configpaths.ConfigCandidatePaths(configpaths.FindUserConfig(os.Args[1:]))

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("vise"),
		kong.Description("Virtual Input Synthesis Engine"),
		kong.UsageOnError(),
		// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, paths.JSON...),
		kong.Configuration(kongyaml.Loader, paths.YAML...),
		kong.Configuration(kongtoml.Loader, paths.TOML...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	rawLogger, rawFile := log.SetupRawLogger(cli.Log, logger)
	if rawFile != nil {
		closeFiles = append(closeFiles, rawFile)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	ctx.Bind(logger)
	ctx.BindTo(rawLogger, (*log.RawLogger)(nil))

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
