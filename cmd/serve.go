package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/uchiverify/site/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the live site",
	Long: `Serves the landing page over HTTP. Every open tab gets a live session over
a websocket that drives the demo, the command showcase and the docs browser.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides server.port)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	serveCmd.Flags().Bool("dev", false, "accept requests from any origin")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Server.Port = port
	}
	if dev, _ := cmd.Flags().GetBool("dev"); dev {
		cfg.Server.AllowAllOrigins = true
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	store, err := loadContent(cfg)
	if err != nil {
		return err
	}
	views, err := newViews(cfg)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:            cfg.Server.Port,
		AllowAll:        cfg.Server.AllowAllOrigins,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, store, views, sessionOptions(cfg, log.Named("live")), log)

	ln, err := srv.Listen()
	if err != nil {
		return err
	}

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	url := fmt.Sprintf("http://localhost:%d/", ln.Addr().(*net.TCPAddr).Port)
	log.Info("serving site",
		zap.String("version", Version),
		zap.String("url", url),
		zap.Int("faq", store.FAQ.Len()),
		zap.Int("commands", store.Commands.Len()),
		zap.Int("showcase", len(store.Showcase)))

	if open, _ := cmd.Flags().GetBool("open"); open {
		openBrowser(url)
	}

	return srv.Run(ctx, ln)
}
