package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/Alia5/VISE/backend/platform"
	"github.com/Alia5/VISE/engine"
	"github.com/Alia5/VISE/internal/configpaths"
	"github.com/Alia5/VISE/internal/log"
	"github.com/Alia5/VISE/internal/server/api"
	"github.com/Alia5/VISE/internal/server/api/auth"
	"github.com/Alia5/VISE/internal/server/api/handler"
	"github.com/Alia5/VISE/internal/util"
	"github.com/Alia5/VISE/internal/version"
)

const keyFileName = "vise.key.txt"

type Serve struct {
	Platform        platform.Config  `embed:""`
	ApiServerConfig api.ServerConfig `embed:"" prefix:"api."`
	KeyFile         string           `help:"API password file; generated on first start (defaults to vise.key.txt in the config dir)" env:"VISE_KEY_FILE"`
}

// Run is called by Kong when the serve command is executed.
func (s *Serve) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.StartServer(ctx, logger, rawLogger)
}

// StartServer serves the API until ctx is done.
func (s *Serve) StartServer(ctx context.Context, logger *slog.Logger, rawLogger log.RawLogger) error {
	if s.ApiServerConfig.Addr == "" {
		return errors.New("API server address must be set (default localhost:3243)")
	}
	if s.ApiServerConfig.NoAuth {
		logger.Warn("API authentication is disabled; anyone who can reach the server can inject input")
	} else {
		pwd, err := s.loadPassword(logger)
		if err != nil {
			return err
		}
		s.ApiServerConfig.Password = pwd
	}

	e, err := engine.Open(ctx, s.Platform, engine.WithLogger(logger), engine.WithRawLogger(rawLogger))
	if err != nil {
		return err
	}
	defer func() {
		if err := e.Close(); err != nil {
			logger.Error("failed to close engine", "error", err)
		}
	}()
	logger.Info("Input engine ready", "platform", e.Platform(), "capabilities", e.Capabilities().String())

	apiSrv, err := api.New(s.ApiServerConfig, logger)
	if err != nil {
		return err
	}
	handler.RegisterAll(apiSrv.Router(), e, version.String())

	if err := apiSrv.Start(); err != nil {
		logger.Error("failed to start API server", "error", err)
		if util.IsRunFromGUI() {
			fmt.Println("Press any key to exit...")
			b := make([]byte, 1)
			_, _ = os.Stdin.Read(b)
		}
		return err
	}
	logger.Info("VISE API server listening", "addr", apiSrv.Addr())

	if util.IsRunFromGUI() {
		go func() {
			time.Sleep(250 * time.Millisecond)
			util.HideConsoleWindow()
		}()
	}

	<-ctx.Done()
	apiSrv.Close()
	return nil
}

// loadPassword reads the key file, creating it with a fresh password when
// it does not exist yet.
func (s *Serve) loadPassword(logger *slog.Logger) (string, error) {
	keyFilePath := s.KeyFile
	if keyFilePath == "" {
		dir, err := configpaths.DefaultConfigDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve key file path: %w", err)
		}
		keyFilePath = filepath.Join(dir, keyFileName)
	}
	if pwd, err := os.ReadFile(keyFilePath); err == nil {
		if p := strings.TrimSpace(string(pwd)); p != "" {
			return p, nil
		}
		return "", fmt.Errorf("key file %s is empty", keyFilePath)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("failed to read key file: %w", err)
	}

	newPwd, err := auth.GenerateKey()
	if err != nil {
		return "", fmt.Errorf("failed to generate new API password: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(keyFilePath), 0o700); err != nil {
		return "", fmt.Errorf("failed to create config dir for key file: %w", err)
	}
	if err := os.WriteFile(keyFilePath, []byte(newPwd), 0o600); err != nil {
		return "", fmt.Errorf("failed to write new API password to file: %w", err)
	}
	logger.Info("Generated API server password", "path", keyFilePath)
	logger.Info("-------------------------------------")
	logger.Info("Your VISE API server password is:")
	logger.Info("-------------------------------------")
	logger.Info(newPwd)
	logger.Info("-------------------------------------")
	logger.Info("You can change this password at any time by editing the file")
	return newPwd, nil
}
