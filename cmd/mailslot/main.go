package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/NeuralTrust/MailSlot/pkg/config"
	"github.com/NeuralTrust/MailSlot/pkg/dependency_container"
	infraLogger "github.com/NeuralTrust/MailSlot/pkg/infra/logger"
	"github.com/NeuralTrust/MailSlot/pkg/infra/netutil"
	"github.com/NeuralTrust/MailSlot/pkg/server"
	"github.com/NeuralTrust/MailSlot/pkg/server/router"
	"github.com/NeuralTrust/MailSlot/pkg/version"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "mailslot",
		Short:         "Single-slot email drop box over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd, configPath)
		},
	}

	root.Flags().StringVar(&configPath, "config", "", "directory containing config.yaml")
	root.Flags().Int("port", 3001, "port to listen on")
	root.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetInfo().String())
		},
	}
}

func serve(cmd *cobra.Command, configPath string) error {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		logrus.Debug("no .env file found, using system environment variables")
	}

	if err := config.Load(configPath, cmd.Flags()); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := config.GetConfig()

	logger, fileWriter, err := infraLogger.NewLogger(cfg.Log, os.Stdout)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		if err := fileWriter.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "failed to flush log file:", err)
		}
	}()

	if err := checkPorts(logger, cfg); err != nil {
		return err
	}

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:    cfg,
		Logger: logger,
	})
	if err != nil {
		logger.WithError(err).Error("failed to build dependencies")
		return err
	}

	servers := []server.Server{
		server.NewEmailServer(server.EmailServerDI{
			Config: cfg,
			Logger: logger,
			Routers: []router.ServerRouter{
				router.NewEmailRouter(container.MiddlewareTransport, container.HandlerTransport),
			},
			ResponseHeaders: container.MiddlewareTransport.HeaderSetters(),
		}),
	}
	if cfg.Metrics.Enabled {
		servers = append(servers, server.NewOpsServer(server.OpsServerDI{
			Config: cfg,
			Logger: logger,
			Routers: []router.ServerRouter{
				router.NewOpsRouter(container.HandlerTransport),
			},
		}))
	} else {
		logger.Info("prometheus metrics are disabled by configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.WithFields(logrus.Fields{
		"version":         version.Version,
		"allowed_origins": cfg.CORS.AllowedOrigins,
	}).Info("Starting MailSlot")

	if err := server.RunAll(ctx, logger, servers...); err != nil {
		return err
	}

	logger.Info("Server stopped by user")
	return nil
}

func checkPorts(logger *logrus.Logger, cfg *config.Config) error {
	ports := []int{cfg.Server.Port}
	if cfg.Metrics.Enabled {
		ports = append(ports, cfg.Metrics.Port)
	}

	for _, port := range ports {
		err := netutil.CheckPortAvailable(cfg.Server.Host, port)
		if errors.Is(err, netutil.ErrPortInUse) {
			logger.Errorf("Port %d is already in use. Please free the port or choose another.", port)
			return err
		}
		if err != nil {
			logger.WithError(err).Errorf("failed to check port %d", port)
			return err
		}
	}
	return nil
}
