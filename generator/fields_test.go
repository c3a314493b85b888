package generator

import (
	"testing"

	"github.com/hhkbp2/testify/require"
)

func TestWeightedTableRejectsBadInput(t *testing.T) {
	_, err := NewWeightedTable(nil)
	require.NotNil(t, err)
	_, ok := err.(*PoolBuildError)
	require.True(t, ok)

	_, err = NewWeightedTable([]WeightedValue{{Weight: 0, Value: "A"}})
	require.NotNil(t, err)

	_, err = NewWeightedTable([]WeightedValue{{Weight: -1, Value: "A"}})
	require.NotNil(t, err)
}

func TestLogLevelTableLength(t *testing.T) {
	levels, err := NewLogLevelTable()
	require.Nil(t, err)
	require.Equal(t, 100, levels.Len())
}

func TestLogLevelDistribution(t *testing.T) {
	levels, err := NewLogLevelTable()
	require.Nil(t, err)
	total := int64(1000000)
	counts := make(map[string]int64)
	for i := int64(0); i < total; i++ {
		counts[levels.Pick(i)]++
	}
	expected := map[string]float64{
		"INFO":  0.84,
		"DEBUG": 0.10,
		"WARN":  0.05,
		"ERROR": 0.01,
	}
	for level, want := range expected {
		got := float64(counts[level]) / float64(total)
		require.True(t, got > want-0.01 && got < want+0.01,
			"level %s frequency %f not within 1%% of %f", level, got, want)
	}
}

func TestLogLevelPickIsDeterministic(t *testing.T) {
	levels, err := NewLogLevelTable()
	require.Nil(t, err)
	for i := int64(0); i < 1000; i++ {
		require.Equal(t, levels.Pick(i), levels.Pick(i))
	}
}

func TestTimestampTrend(t *testing.T) {
	baseTime := int64(1700000000000)
	prev := Timestamp(baseTime, 0)
	for i := int64(1); i < 10000; i++ {
		ts := Timestamp(baseTime, i)
		delta := ts - prev
		if delta < 0 {
			delta = -delta
		}
		require.True(t, delta <= 2001, "jitter bound exceeded at row %d: %d", i, delta)
		prev = ts
	}
}

func TestTimestampNeverCallsClock(t *testing.T) {
	// same base and index must give the same instant on every call
	baseTime := int64(1700000000000)
	for i := int64(0); i < 100; i++ {
		require.Equal(t, Timestamp(baseTime, i), Timestamp(baseTime, i))
	}
}

func TestLogUIDUniqueAcrossRun(t *testing.T) {
	baseTime := int64(1700000000000)
	seen := make(map[string]bool)
	for i := int64(0); i < 20000; i++ {
		uid := LogUID(baseTime, i)
		require.False(t, seen[uid], "duplicate log_uid %s at row %d", uid, i)
		seen[uid] = true
	}
}

func TestUserIDBounds(t *testing.T) {
	require.Equal(t, "user_1", UserID(0))
	require.Equal(t, "user_9999", UserID(9998))
	require.Equal(t, "user_1", UserID(9999))
}

func TestResponseTimeBounds(t *testing.T) {
	for i := int64(0); i < 3000; i++ {
		v := ResponseTimeMs(i)
		require.True(t, v >= 1 && v <= 999)
	}
}

func TestPairAtUsesSameOffset(t *testing.T) {
	pools, err := BuildPools(100, DefaultPoolCap, 3)
	require.Nil(t, err)
	for i := int64(0); i < 500; i++ {
		id, name := PairAt(pools.HostIDs, pools.HostNames, i)
		off := Offset(i, pools.Size())
		require.Equal(t, pools.HostIDs.At(off), id)
		require.Equal(t, pools.HostNames.At(off), name)
	}
}
