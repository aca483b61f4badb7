package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/gops/agent"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/scott-cotton/cli"

	"github.com/signadot/keepconf/config"
	"github.com/signadot/keepconf/manager"
	"github.com/signadot/keepconf/merge"
)

func watch(cfg *WatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Watch.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := needArgs("watch", args, 1, "a directory"); err != nil {
		return err
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(cc.Out, "gops agent failed: %v\n", err)
		}
		defer agent.Close()
	}
	log := cfg.logger()
	dir := args[0]
	m, err := manager.New(dir, manager.WithLogger(log), manager.WithSink(cfg.sink()))
	if err != nil {
		return err
	}
	names := args[1:]
	if len(names) == 0 {
		names, err = listDir(dir, cfg.Ext)
		if err != nil {
			return err
		}
	}
	for _, name := range names {
		if _, err := m.NewFile(name, merge.Open, nil); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := m.LoadAll(ctx); err != nil {
		log.Warn("initial load", "error", err)
	}
	w, err := m.Watch(ctx, func(name string, err error) {
		if err != nil {
			log.Warn("reload failed", "file", name, "error", err)
			return
		}
		m.Do(name, func(f *config.File) error {
			if res := f.LastLoad(); res != nil {
				log.Info("reloaded", "file", name,
					"updated", len(res.Updated), "added", len(res.Added), "lines", res.Lines)
			}
			return nil
		})
	})
	if err != nil {
		return err
	}
	if cfg.Metrics != "" {
		srv := &http.Server{Addr: cfg.Metrics, Handler: metricsMux()}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Warn("metrics", "addr", cfg.Metrics, "error", err)
			}
		}()
		defer srv.Close()
	}
	fmt.Fprintf(cc.Out, "watching %d files in %s\n", len(names), dir)
	<-w.Done()
	return nil
}

func metricsMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func listDir(dir, ext string) ([]string, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var res []string
	for _, ent := range ents {
		if ent.IsDir() || !strings.HasSuffix(ent.Name(), ext) {
			continue
		}
		res = append(res, filepath.Base(ent.Name()))
	}
	return res, nil
}
