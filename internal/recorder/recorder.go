package recorder

import "SpotWatch/internal/model"

// TickRecord holds one observed tick with its derived indicators.
type TickRecord struct {
	Snapshot *model.IndicatorSnapshot
	Action   model.Action
}

// ActionChange records a suggestion flip between two consecutive ticks.
type ActionChange struct {
	Symbol     string
	PrevAction model.Action
	NewAction  model.Action
	Price      float64
}

// Recorder persists tick history for later analysis.
type Recorder interface {
	RecordTick(rec *TickRecord) error
	RecordActionChange(evt *ActionChange) error
	Close() error
}
