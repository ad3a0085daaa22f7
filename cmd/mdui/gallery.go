package main

import (
	"context"
	"crypto/rand"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/pthm/mdui"
	"github.com/pthm/mdui/internal/gallery"
	"github.com/pthm/mdui/internal/logger"
)

// keyEnv names the variable holding the fragment signing key. Without it
// a random key is used and tokens do not survive a restart.
const keyEnv = "MDUI_FRAGMENT_KEY"

type galleryFlags struct {
	assetFlags
	addr     string
	logLevel string
	pretty   bool
}

func newGalleryCmd() *cobra.Command {
	flags := &galleryFlags{}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Serve a page showing every component",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(logger.Options{
				Level:         flags.logLevel,
				HumanReadable: flags.pretty,
				Writer:        cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			file, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			enc, err := newEncoder()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := &http.Server{
				Addr:              flags.addr,
				Handler:           gallery.New(file.MDUI(), enc, log).Routes(),
				ReadHeaderTimeout: 10 * time.Second,
			}
			return serve(ctx, srv, log.WithFields(map[string]any{"addr": flags.addr}))
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&flags.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	cmd.Flags().BoolVar(&flags.pretty, "pretty", isatty.IsTerminal(os.Stderr.Fd()), "human readable logs (default when stderr is a terminal)")
	return cmd
}

func newEncoder() (*mdui.Encoder, error) {
	key := []byte(os.Getenv(keyEnv))
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, err
		}
	}
	return mdui.NewEncoder(key)
}

// serve runs srv until ctx is cancelled, then shuts it down.
func serve(ctx context.Context, srv *http.Server, log *logger.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("gallery listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
