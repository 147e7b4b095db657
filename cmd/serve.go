package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler/api"
)

var port int // HTTP port override

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		listenPort := cfg.Port
		if cmd.Flags().Changed("port") {
			listenPort = port
		}
		app := api.NewApp(cfg, logrus.StandardLogger())

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sig
			logrus.Info("Shutting down")
			if err := app.Shutdown(); err != nil {
				logrus.WithError(err).Warn("shutdown")
			}
		}()

		addr := fmt.Sprintf(":%d", listenPort)
		logrus.Infof("Listening on %s", addr)
		return app.Listen(addr)
	},
}

func init() {
	serveCmd.Flags().IntVar(&port, "port", 9095, "HTTP port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
