package main

import (
	"log/slog"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"go-freight-dashboard/internal/api"
	"go-freight-dashboard/internal/api/handler"
	"go-freight-dashboard/internal/config"
	"go-freight-dashboard/internal/loader"
	"go-freight-dashboard/internal/sheets"
	"go-freight-dashboard/internal/store"
	"go-freight-dashboard/internal/web"
	"go-freight-dashboard/internal/ws"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	if err := store.InitDB(cfg.DBPath); err != nil {
		return err
	}
	defer store.Close()

	cred, err := sheets.LoadCredential(cfg.CredentialsFile)
	if err != nil {
		return err
	}
	client := sheets.NewClient(cred, cfg.APIBaseURL, cfg.HTTPTimeout)

	ld := loader.NewCachedLoader(client, cfg.CacheTTL)
	ld.OnRefresh = func(info loader.RefreshInfo) {
		status, errMsg := "ok", ""
		if info.Err != nil {
			status, errMsg = "error", info.Err.Error()
		}
		if _, err := store.SaveRefresh(info.Trigger, status, info.Rows, info.Duration, errMsg); err != nil {
			slog.Warn("audit refresh", "error", err)
		}
		slog.Info("range refreshed",
			"locator", info.Locator.String(),
			"trigger", info.Trigger,
			"rows", info.Rows,
			"duration", info.Duration,
			"status", status)
	}

	// The locator re-reads live config so a config file edit repoints the
	// sheet without a restart.
	var mu sync.RWMutex
	current := cfg
	loc := func() sheets.Locator {
		mu.RLock()
		defer mu.RUnlock()
		return sheets.Locator{SheetID: current.SheetID, Range: current.Range}
	}

	go func() {
		err := config.Watch(ctx, cfgFile, func(fresh *config.Config) {
			mu.Lock()
			repointed := fresh.SheetID != current.SheetID || fresh.Range != current.Range
			current = fresh
			mu.Unlock()
			ld.SetTTL(fresh.CacheTTL)
			if repointed {
				ld.Invalidate()
			}
		})
		if err != nil && ctx.Err() == nil {
			slog.Warn("config watch stopped", "error", err)
		}
	}()

	hub := ws.NewHub(ld.Generation)
	go hub.Run(ctx)

	h := &handler.Handler{Loader: ld, Loc: loc, Audit: true}
	r := api.NewRouter(h, hub, web.Page("Freight Trends Dashboard"))

	slog.Info("serving dashboard", "listen", cfg.Listen, "sheet", cfg.SheetID, "range", cfg.Range)
	return r.Start(ctx, cfg.Listen)
}
