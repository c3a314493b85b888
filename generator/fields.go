package generator

import (
	"fmt"
)

// Per-column field strategies. Every strategy is a pure function of the row
// index (plus the immutable pools and the base time captured at construction),
// which is what makes produced rows reproducible: the row index is the sole
// driver of determinism.

// WeightedValue is one entry of a weighted categorical table.
type WeightedValue struct {
	Weight int
	Value  string
}

// WeightedTable precomputes a slot table proportional to the weights so that
// picking a value per row is a single indexed load, with no floating point
// comparison on the hot path.
type WeightedTable struct {
	slots []string
}

func NewWeightedTable(values []WeightedValue) (*WeightedTable, error) {
	if len(values) == 0 {
		return nil, NewPoolBuildError("weighted table has no values")
	}
	total := 0
	for _, v := range values {
		if v.Weight < 0 {
			return nil, NewPoolBuildError("negative weight %d for value %q", v.Weight, v.Value)
		}
		total += v.Weight
	}
	if total == 0 {
		return nil, NewPoolBuildError("weighted table weights sum to zero")
	}
	slots := make([]string, 0, total)
	for _, v := range values {
		for i := 0; i < v.Weight; i++ {
			slots = append(slots, v.Value)
		}
	}
	return &WeightedTable{slots: slots}, nil
}

// Pick selects the slot addressed by the offset formula. With a slot count
// coprime to the offset multiplier the mapping is a bijection per cycle, so
// observed frequencies match the weights exactly over any aligned window.
func (self *WeightedTable) Pick(rowIndex int64) string {
	return self.slots[Offset(rowIndex, len(self.slots))]
}

func (self *WeightedTable) Len() int {
	return len(self.slots)
}

// NewLogLevelTable builds the 100-slot log level table:
// INFO 84%, DEBUG 10%, WARN 5%, ERROR 1%.
func NewLogLevelTable() (*WeightedTable, error) {
	return NewWeightedTable([]WeightedValue{
		{Weight: 84, Value: "INFO"},
		{Weight: 10, Value: "DEBUG"},
		{Weight: 5, Value: "WARN"},
		{Weight: 1, Value: "ERROR"},
	})
}

// PairAt resolves a correlated id/name pair from the same offset, so that for
// any given row the identifier and its human-readable name always travel
// together.
func PairAt(ids, names Pool, rowIndex int64) (string, string) {
	off := Offset(rowIndex, ids.Len())
	return ids.At(off), names.At(off)
}

// Timestamp advances one millisecond per row from the base time with bounded
// jitter of +/-1000ms, so the series trends monotonically upward without
// touching the wall clock per row.
func Timestamp(baseTime, rowIndex int64) int64 {
	jitter := (rowIndex*7+13)%2000 - 1000
	return baseTime + rowIndex + jitter
}

// LogUID derives a run-unique identifier from the base time and the row
// index, with no pool lookup.
func LogUID(baseTime, rowIndex int64) string {
	return fmt.Sprintf("log_%d_%d", baseTime+rowIndex, rowIndex)
}

// UserID cycles through user_1 .. user_9999.
func UserID(rowIndex int64) string {
	return fmt.Sprintf("user_%d", rowIndex%9999+1)
}

// ResponseTimeMs cycles through 1 .. 999.
func ResponseTimeMs(rowIndex int64) int64 {
	return rowIndex%999 + 1
}

// Constant column values.
const (
	LogSource = "application"
	Version   = "v1.0.0"
)
