package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/namer/pkg/httpserver"
	"github.com/dmitrymomot/namer/pkg/logger"
	"github.com/dmitrymomot/namer/pkg/namerapi"
)

func newServeCmd(appFn func() *app) *cobra.Command {
	var (
		addr     string
		maxCount int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if maxCount <= 0 {
				return fmt.Errorf("max-count must be > 0, got %d", maxCount)
			}
			a := appFn()
			cfg := a.cfg.HTTP
			if addr != "" {
				cfg.Addr = addr
			}

			router := namerapi.NewRouter(a.composer,
				namerapi.WithLogger(a.log.With(logger.Component("api"))),
				namerapi.WithMaxCount(maxCount),
			)
			srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(a.log))
			return srv.Run(cmd.Context(), router)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides NAMER_HTTP_ADDR)")
	cmd.Flags().IntVar(&maxCount, "max-count", namerapi.DefaultMaxCount, "largest count a request may ask for")
	return cmd
}
