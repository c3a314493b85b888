package loggen

import (
	"testing"

	"github.com/hhkbp2/testify/require"
)

func TestStreamSliceEven(t *testing.T) {
	rowCount := int64(100)
	streamCount := int64(4)
	var next int64
	for i := int64(0); i < streamCount; i++ {
		start, count := streamSlice(rowCount, streamCount, i)
		require.Equal(t, next, start)
		require.Equal(t, int64(25), count)
		next = start + count
	}
	require.Equal(t, rowCount, next)
}

func TestStreamSliceWithRemainder(t *testing.T) {
	rowCount := int64(10)
	streamCount := int64(3)
	var next, total int64
	for i := int64(0); i < streamCount; i++ {
		start, count := streamSlice(rowCount, streamCount, i)
		require.Equal(t, next, start)
		require.True(t, count == 3 || count == 4)
		next = start + count
		total += count
	}
	require.Equal(t, rowCount, total)
}

func TestStreamSliceMoreStreamsThanRows(t *testing.T) {
	rowCount := int64(3)
	streamCount := int64(8)
	var total int64
	for i := int64(0); i < streamCount; i++ {
		_, count := streamSlice(rowCount, streamCount, i)
		total += count
	}
	require.Equal(t, rowCount, total)
}

func TestRunStreamDrivesIngester(t *testing.T) {
	table := newTestTable(t, 50, 20)
	ingester := NewBasicIngester()
	ingester.SetProperties(NewProperties())
	require.Nil(t, ingester.Init())

	runner := NewRunner(&Arguments{
		Command:    "run",
		Ingester:   "basic",
		Options:    make(map[string]string),
		Properties: NewProperties(),
	})
	runner.runStream(table.Table(), table.Rows(), ingester)
	require.Equal(t, int64(50), ingester.Written())
	require.Equal(t, int64(50), runner.doneRows)
}
