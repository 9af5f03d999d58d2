package questlinks

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dohaquest/questlinks/content"
	"github.com/dohaquest/questlinks/tracing"
	"github.com/dohaquest/questlinks/web"
	"github.com/spf13/cobra"
)

var (
	port         int
	dev          bool
	otlpEndpoint string
	serviceName  string
	serveOpts    web.Options
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the links page over HTTP",
	Long: `Serve the page and its assets. Dialogs open with /?modal=about, /?modal=privacy
or /?modal=security and close by navigating back to /.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := content.Validate(); err != nil {
			return fmt.Errorf("invalid content registry: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		shutdown, err := tracing.Setup(ctx, otlpEndpoint, serviceName)
		if err != nil {
			return err
		}

		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := shutdown(flushCtx); err != nil {
				slog.Error("Could not flush traces", "error", err)
			}
		}()

		serveOpts.Dev = dev

		return web.StartServer(ctx, port, serveOpts)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&port, "port", "p", 8080,
		"Port on which server should be watching")

	serveCmd.Flags().BoolVar(&dev,
		"dev",
		false,
		"Enable developer mode")

	serveCmd.Flags().StringVar(
		&serveOpts.AssetsDir,
		"assets-dir",
		"",
		"Serve assets from this directory instead of the embedded ones")

	serveCmd.Flags().StringVar(
		&serveOpts.LogoImage,
		"logo-image",
		defaultImage,
		"Logo image source, a URL or a path under /assets")

	serveCmd.Flags().StringVar(
		&serveOpts.LogoFallback,
		"logo-fallback",
		"",
		"Image tried once when the logo fails to load")

	serveCmd.Flags().StringVar(
		&serveOpts.BackgroundImage,
		"background-image",
		defaultImage,
		"Full-bleed background image source")

	serveCmd.Flags().StringVar(
		&otlpEndpoint,
		"otlp-endpoint",
		"",
		"OTLP/HTTP collector host:port, tracing is off when empty")

	serveCmd.Flags().StringVar(
		&serviceName,
		"service-name",
		"questlinks",
		"Service name reported with traces")
}
