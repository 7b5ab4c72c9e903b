package watcher

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"SpotWatch/internal/collector"
	"SpotWatch/internal/model"
	"SpotWatch/internal/notifier"
	"SpotWatch/internal/recorder"
)

const bell = "\a"

// captureRecorder records calls in memory for assertions.
type captureRecorder struct {
	ticks   []*recorder.TickRecord
	changes []*recorder.ActionChange
}

func (c *captureRecorder) RecordTick(rec *recorder.TickRecord) error {
	c.ticks = append(c.ticks, rec)
	return nil
}

func (c *captureRecorder) RecordActionChange(evt *recorder.ActionChange) error {
	c.changes = append(c.changes, evt)
	return nil
}

func (c *captureRecorder) Close() error { return nil }

func newTestWatcher(fetcher collector.Fetcher, rec recorder.Recorder) (*Watcher, *bytes.Buffer) {
	out := &bytes.Buffer{}
	col := collector.NewCollector(fetcher, "SOLEUR", 60)
	tn := notifier.NewTelegramNotifier("", "", "") // disabled
	return NewWatcher(context.Background(), col, tn, rec, out), out
}

func risingPrices(start, count int) []float64 {
	out := make([]float64, count)
	for i := range out {
		out[i] = float64(start + i)
	}
	return out
}

func TestTick_WarmupShowsProgress(t *testing.T) {
	rec := &captureRecorder{}
	w, out := newTestWatcher(&collector.MockFetcher{Prices: risingPrices(100, 40)}, rec)

	for i := 0; i < 34; i++ {
		w.Tick()
	}

	if !strings.Contains(out.String(), "Collecting data… (34/35)") {
		t.Errorf("expected warmup progress, got:\n%s", out.String())
	}
	if strings.Contains(out.String(), bell) {
		t.Error("no bell may ring during warmup")
	}
	if len(rec.ticks) != 0 {
		t.Errorf("warmup ticks must not be recorded, got %d", len(rec.ticks))
	}
}

func TestTick_FirstDecisionRingsBellOnce(t *testing.T) {
	rec := &captureRecorder{}
	w, out := newTestWatcher(&collector.MockFetcher{Prices: risingPrices(100, 40)}, rec)

	for i := 0; i < 37; i++ {
		w.Tick()
	}

	// Rising series: RSI saturates at 100, so the rule holds despite the
	// uptrend. The bell rings once for the first decision, then the action
	// never changes.
	if got := strings.Count(out.String(), bell); got != 1 {
		t.Errorf("expected exactly 1 bell, got %d", got)
	}
	if !strings.Contains(out.String(), "HOLD") {
		t.Errorf("expected HOLD suggestion, got:\n%s", out.String())
	}
	if len(rec.ticks) != 3 {
		t.Errorf("expected 3 recorded ticks, got %d", len(rec.ticks))
	}
	if len(rec.changes) != 0 {
		t.Errorf("first decision is not a transition, got %d changes", len(rec.changes))
	}
}

func TestTick_ActionChangeIsRecorded(t *testing.T) {
	rec := &captureRecorder{}
	w, _ := newTestWatcher(&collector.MockFetcher{Prices: risingPrices(100, 40)}, rec)

	for i := 0; i < 35; i++ {
		w.Tick()
	}
	// Force a transition for the next complete tick.
	w.mu.Lock()
	w.lastAction = model.ActionBuy
	w.mu.Unlock()

	w.Tick()

	if len(rec.changes) != 1 {
		t.Fatalf("expected 1 recorded change, got %d", len(rec.changes))
	}
	change := rec.changes[0]
	if change.PrevAction != model.ActionBuy || change.NewAction != model.ActionHold {
		t.Errorf("expected BUY→HOLD, got %s→%s", change.PrevAction, change.NewAction)
	}
	if change.Symbol != "SOLEUR" {
		t.Errorf("expected symbol SOLEUR, got %q", change.Symbol)
	}
}

func TestTick_FetchErrorRetriesQuietly(t *testing.T) {
	rec := &captureRecorder{}
	w, out := newTestWatcher(&collector.MockFetcher{Err: errors.New("connection refused")}, rec)

	w.Tick()
	w.Tick()

	if got := strings.Count(out.String(), "Fetch error"); got != 2 {
		t.Errorf("expected 2 fetch error reports, got %d", got)
	}
	if w.Collector.History.Len() != 0 {
		t.Error("failed fetches must not grow the history")
	}
	if len(rec.ticks) != 0 || len(rec.changes) != 0 {
		t.Error("failed fetches must not be recorded")
	}
}

func TestHandleCommand_ConcurrentWithTicks(t *testing.T) {
	// The Telegram polling goroutine calls HandleCommand while the cron
	// goroutine runs Tick; the race detector must stay quiet.
	rec := &captureRecorder{}
	w, _ := newTestWatcher(&collector.MockFetcher{Prices: risingPrices(100, 200)}, rec)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			w.Tick()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			w.HandleCommand("/status")
			w.HandleCommand("/symbol")
		}
	}()
	wg.Wait()
}

func TestHandleCommand_WarmupCountFromLastTick(t *testing.T) {
	rec := &captureRecorder{}
	w, _ := newTestWatcher(&collector.MockFetcher{Prices: risingPrices(100, 40)}, rec)

	for i := 0; i < 12; i++ {
		w.Tick()
	}

	status := w.HandleCommand("/status")
	if !strings.Contains(status, "(12/35)") {
		t.Errorf("expected warmup progress from the last tick, got %q", status)
	}
}

func TestHandleCommand(t *testing.T) {
	rec := &captureRecorder{}
	w, _ := newTestWatcher(&collector.MockFetcher{Prices: risingPrices(100, 40)}, rec)

	if got := w.HandleCommand("/status"); !strings.Contains(got, "No data yet") {
		t.Errorf("expected no-data reply before first tick, got %q", got)
	}

	for i := 0; i < 35; i++ {
		w.Tick()
	}

	status := w.HandleCommand("/status")
	if !strings.Contains(status, "SOLEUR") || !strings.Contains(status, "HOLD") {
		t.Errorf("expected full status, got %q", status)
	}
	if got := w.HandleCommand("/symbol"); !strings.Contains(got, "SOLEUR") || !strings.Contains(got, "mock") {
		t.Errorf("expected symbol and source, got %q", got)
	}
	if got := w.HandleCommand("/bogus"); !strings.Contains(got, "Available commands") {
		t.Errorf("expected command list, got %q", got)
	}
}
