package recorder

import (
	"path/filepath"
	"testing"

	"SpotWatch/internal/model"
)

func TestSQLiteRecorder_RoundTrip(t *testing.T) {
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "ticks.db"))
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer r.Close()

	snap := &model.IndicatorSnapshot{
		Symbol: "SOLEUR", Price: 140.25,
		MA20: 139.1, HasMA: true,
		RSI14: 31.2, HasRSI: true,
		MACDLine: 0.42, MACDSignal: 0.17, HasMACD: true,
	}
	if err := r.RecordTick(&TickRecord{Snapshot: snap, Action: model.ActionBuy}); err != nil {
		t.Fatalf("record tick: %v", err)
	}
	if err := r.RecordActionChange(&ActionChange{
		Symbol: "SOLEUR", PrevAction: model.ActionHold, NewAction: model.ActionBuy, Price: 140.25,
	}); err != nil {
		t.Fatalf("record action change: %v", err)
	}

	var ticks, changes int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM ticks").Scan(&ticks); err != nil {
		t.Fatal(err)
	}
	if err := r.db.QueryRow("SELECT COUNT(*) FROM action_changes").Scan(&changes); err != nil {
		t.Fatal(err)
	}
	if ticks != 1 || changes != 1 {
		t.Errorf("expected 1 tick and 1 change, got %d and %d", ticks, changes)
	}

	var action string
	if err := r.db.QueryRow("SELECT action FROM ticks").Scan(&action); err != nil {
		t.Fatal(err)
	}
	if action != "BUY" {
		t.Errorf("expected action BUY, got %q", action)
	}
}
