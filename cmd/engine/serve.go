package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"leadscout-engine/internal/events"
	"leadscout-engine/internal/httpapi"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the control panel HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	eng, err := bootstrap()
	if err != nil {
		return err
	}
	defer eng.close()

	hub := events.NewHub()
	ctrl := eng.controller(hub)

	mux := httpapi.NewMux(httpapi.Deps{
		Jobs:        ctrl,
		DB:          eng.db,
		Hub:         hub,
		CfgVal:      eng.cfgVal,
		UserCfgPath: eng.userCfgPath,
		LoadCfg:     eng.loadCfg,
		Log:         eng.log,
	})

	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.AccessLog(eng.log),
		httpapi.Recover(eng.log),
		httpapi.Cors,
	)

	addr := fmt.Sprintf("127.0.0.1:%d", eng.config().App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	eng.log.Info("engine listening",
		zap.String("addr", "http://"+addr),
		zap.String("config", eng.userCfgPath))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	eng.log.Info("shutting down")
	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
