package loggen

import (
	"testing"

	"github.com/hhkbp2/testify/require"
	g "github.com/tsbench/loggen/generator"
)

func newTestTable(t *testing.T, rowCount, batchSize int64) *g.LogTable {
	table, err := g.NewLogTable(g.Config{
		Table:     "logtable",
		RowCount:  rowCount,
		BatchSize: batchSize,
		Seed:      1,
		BaseTime:  1700000000000,
	})
	require.Nil(t, err)
	return table
}

func TestNewIngesterUnknown(t *testing.T) {
	_, err := NewIngester("no-such-ingester", NewProperties())
	require.NotNil(t, err)
}

func TestNewIngesterBasic(t *testing.T) {
	props := NewProperties()
	ingester, err := NewIngester("basic", props)
	require.Nil(t, err)
	require.Equal(t, props, ingester.GetProperties())
}

func TestBasicIngesterWriteBatch(t *testing.T) {
	table := newTestTable(t, 100, 25)
	ingester := NewBasicIngester()
	ingester.SetProperties(NewProperties())
	require.Nil(t, ingester.Init())

	stream := table.Rows()
	var total int64
	for {
		batch := stream.NextBatch()
		if batch == nil {
			break
		}
		n, status := ingester.WriteBatch(table.Table(), batch)
		require.Equal(t, StatusOK, status)
		require.Equal(t, int64(len(batch)), n)
		total += n
	}
	require.Equal(t, int64(100), total)
	require.Equal(t, int64(100), ingester.Written())
	require.Nil(t, ingester.Cleanup())
}

func TestBasicIngesterEmptyBatch(t *testing.T) {
	ingester := NewBasicIngester()
	ingester.SetProperties(NewProperties())
	require.Nil(t, ingester.Init())
	n, status := ingester.WriteBatch("logtable", nil)
	require.Equal(t, StatusBadRequest, status)
	require.Equal(t, int64(0), n)
}

func TestBasicIngesterBadProperties(t *testing.T) {
	props := NewProperties()
	props.Add(ConfigBasicVerbose, "not-a-bool")
	ingester := NewBasicIngester()
	ingester.SetProperties(props)
	require.NotNil(t, ingester.Init())
}
