package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"SpotWatch/internal/collector"
	"SpotWatch/internal/config"
	"SpotWatch/internal/notifier"
	"SpotWatch/internal/recorder"
	"SpotWatch/internal/watcher"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] SpotWatch starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher and collector
	fetcher := collector.NewBinanceFetcher(cfg.Proxy)
	log.Printf("[INFO] data source: %s, symbol: %s, interval: %s",
		fetcher.Name(), cfg.DataSource.Symbol, cfg.Interval())
	col := collector.NewCollector(fetcher, cfg.DataSource.Symbol, cfg.Watch.History)

	// Init Telegram notifier (disabled without a bot token)
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	if !tn.Enabled() {
		log.Println("[INFO] Telegram notifier disabled")
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init watcher
	w := watcher.NewWatcher(ctx, col, tn, rec, os.Stdout)
	if err := w.Register(cfg.Interval()); err != nil {
		log.Fatalf("[FATAL] register tick: %v", err)
	}
	w.Start()
	defer w.Stop()

	// Start Telegram polling
	if tn.Enabled() {
		go tn.StartPolling(ctx, w.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	log.Printf("[INFO] SpotWatch is running (updates every %s). Press Ctrl+C to stop.", cfg.Interval())

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] SpotWatch stopped")
}
