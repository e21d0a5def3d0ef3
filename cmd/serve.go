package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/itsmostafa/cornerstones/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the document as a website",
	Long:  `Serve one page per section with checklist progress stored on the server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		if serveAddr != "" {
			a.cfg.Server.Addr = serveAddr
		}

		store, err := a.openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		srv, err := server.New(a.source, store, a.logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return srv.ListenAndServe(ctx, a.cfg.Server.Addr)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Address to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
