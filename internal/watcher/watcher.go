package watcher

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"SpotWatch/internal/collector"
	"SpotWatch/internal/model"
	"SpotWatch/internal/notifier"
	"SpotWatch/internal/recorder"
	"SpotWatch/internal/render"
	"SpotWatch/internal/strategy"

	"github.com/robfig/cron/v3"
)

// Watcher drives the poll loop: fetch, append, compute, decide, render.
type Watcher struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Notifier  *notifier.TelegramNotifier
	Recorder  recorder.Recorder
	Out       io.Writer
	Ctx       context.Context

	mu         sync.Mutex
	lastAction model.Action
	lastSnap   *model.IndicatorSnapshot
	historyLen int
}

// NewWatcher creates a Watcher. The cron chain skips a firing while the
// previous tick is still running, so a slow fetch never overlaps the next
// tick and the history stays owned by one goroutine at a time.
func NewWatcher(ctx context.Context, col *collector.Collector, tn *notifier.TelegramNotifier, rec recorder.Recorder, out io.Writer) *Watcher {
	return &Watcher{
		Cron:      cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		Collector: col,
		Notifier:  tn,
		Recorder:  rec,
		Out:       out,
		Ctx:       ctx,
	}
}

// Register schedules the tick at the given interval.
func (w *Watcher) Register(interval time.Duration) error {
	spec := fmt.Sprintf("@every %s", interval)
	if _, err := w.Cron.AddFunc(spec, w.Tick); err != nil {
		return fmt.Errorf("register tick: %w", err)
	}
	return nil
}

// Start starts the poll loop.
func (w *Watcher) Start() {
	w.Cron.Start()
	log.Println("[INFO] watcher started")
}

// Stop stops the poll loop gracefully.
func (w *Watcher) Stop() {
	w.Cron.Stop()
	log.Println("[INFO] watcher stopped")
}

// Tick runs one fetch-compute-render cycle. A fetch failure is reported and
// swallowed; the next cron firing is the retry, with no backoff and no limit.
func (w *Watcher) Tick() {
	snap, err := w.Collector.Observe(w.Ctx)
	if err != nil {
		log.Printf("[WARN] %v", err)
		fmt.Fprintf(w.Out, "Fetch error: %v. Retrying…\n", err)
		return
	}

	prices := w.Collector.History.Values()

	if !snap.Complete() {
		w.mu.Lock()
		w.lastSnap = snap
		w.historyLen = len(prices)
		w.mu.Unlock()

		fmt.Fprint(w.Out, render.ClearScreen)
		fmt.Fprint(w.Out, render.Collecting(len(prices), collector.MinReadyTicks))
		return
	}

	action := strategy.Decide(snap)

	w.mu.Lock()
	prev := w.lastAction
	w.lastAction = action
	w.lastSnap = snap
	w.historyLen = len(prices)
	w.mu.Unlock()

	if prev != action {
		fmt.Fprint(w.Out, render.Bell)
		// The very first decision has nothing to transition from; only real
		// flips are alerted and recorded.
		if prev != "" {
			w.trySend(notifier.FormatActionAlert(snap, prev, action))
			if err := w.Recorder.RecordActionChange(&recorder.ActionChange{
				Symbol:     snap.Symbol,
				PrevAction: prev,
				NewAction:  action,
				Price:      snap.Price,
			}); err != nil {
				log.Printf("[ERROR] record action change: %v", err)
			}
		}
	}

	fmt.Fprint(w.Out, render.ClearScreen)
	fmt.Fprint(w.Out, render.Report(snap, prices, action))

	if err := w.Recorder.RecordTick(&recorder.TickRecord{Snapshot: snap, Action: action}); err != nil {
		log.Printf("[ERROR] record tick: %v", err)
	}
}

// HandleCommand processes a Telegram command and returns a reply. It runs on
// the polling goroutine, so it only reads state published under the mutex and
// never touches the history owned by the tick loop.
func (w *Watcher) HandleCommand(command string) string {
	w.mu.Lock()
	snap := w.lastSnap
	action := w.lastAction
	have := w.historyLen
	w.mu.Unlock()

	switch command {
	case "/status":
		if snap == nil {
			return "No data yet, the first tick has not completed."
		}
		return notifier.FormatStatus(snap, action, have, collector.MinReadyTicks)
	case "/symbol":
		return fmt.Sprintf("Watching %s via %s", w.Collector.Symbol, w.Collector.Fetcher.Name())
	default:
		return "Available commands:\n• /status\n• /symbol"
	}
}

func (w *Watcher) trySend(text string) {
	if !w.Notifier.Enabled() {
		return
	}
	if err := w.Notifier.SendWithRetry(w.Ctx, text, 2); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
