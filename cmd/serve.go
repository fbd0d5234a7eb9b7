package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/nav"
	"github.com/Zachkp/portfolio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio site",
	RunE: func(cmd *cobra.Command, args []string) error {
		gin.SetMode(appConfig.Mode)

		store, err := content.Load(appConfig.ContentFile)
		if err != nil {
			return err
		}

		srv, err := server.New(server.Options{
			Content:  store,
			Registry: nav.DefaultRegistry(),
			Nav: nav.Options{
				TriggerLine:    appConfig.TriggerLine,
				CollapseOffset: appConfig.CollapseOffset,
			},
			Contact: contact.Options{
				SubmitDelay: appConfig.SubmitDelay,
				ResetDelay:  appConfig.ResetDelay,
			},
			SessionTTL: appConfig.SessionTTL,
			HashSalt:   appConfig.HashSalt,
		})
		if err != nil {
			return err
		}
		if appConfig.HashSalt == "" {
			log.Println("Privacy: visitor IPs are hashed with a per-process salt")
		}

		ctx, stop := signalContext(cmd)
		defer stop()
		return srv.Run(ctx, ":"+appConfig.Port)
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "port to listen on (default 8080, or $PORT)")
	serveCmd.Flags().String("mode", "", "gin mode: debug, release or test")
	rootCmd.AddCommand(serveCmd)
}

func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
