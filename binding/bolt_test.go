package binding

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hhkbp2/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/tsbench/loggen"
	g "github.com/tsbench/loggen/generator"
)

func newBoltIngester(t *testing.T) *BoltIngester {
	props := loggen.NewProperties()
	props.Add(PropertyBoltPath, filepath.Join(t.TempDir(), "test.bolt"))
	ingester := NewBoltIngester()
	ingester.SetProperties(props)
	require.Nil(t, ingester.Init())
	return ingester
}

func TestBoltIngesterWriteBatch(t *testing.T) {
	table, err := g.NewLogTable(g.Config{
		Table:     "logtable",
		RowCount:  20,
		BatchSize: 10,
		Seed:      1,
		BaseTime:  1700000000000,
	})
	require.Nil(t, err)

	ingester := newBoltIngester(t)
	batch := table.ProduceBatch(0, 10)
	n, status := ingester.WriteBatch("logtable", batch)
	require.Equal(t, loggen.StatusOK, status)
	require.Equal(t, int64(10), n)

	err = ingester.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte("logtable"))
		require.NotNil(t, bucket)
		value := bucket.Get([]byte(batch[0].LogUID))
		require.NotNil(t, value)
		doc := make(map[string]interface{})
		require.Nil(t, json.Unmarshal(value, &doc))
		require.Equal(t, batch[0].LogLevel, doc["log_level"])
		require.Equal(t, batch[0].HostID, doc["host_id"])
		return nil
	})
	require.Nil(t, err)
	require.Nil(t, ingester.Cleanup())
}

func TestBoltIngesterEmptyBatch(t *testing.T) {
	ingester := newBoltIngester(t)
	n, status := ingester.WriteBatch("logtable", nil)
	require.Equal(t, loggen.StatusBadRequest, status)
	require.Equal(t, int64(0), n)
	require.Nil(t, ingester.Cleanup())
}

func TestCreateInsertStat(t *testing.T) {
	table, err := g.NewLogTable(g.Config{
		Table:     "logtable",
		RowCount:  4,
		BatchSize: 4,
		Seed:      1,
		BaseTime:  1700000000000,
	})
	require.Nil(t, err)
	batch := table.ProduceBatch(0, 2)
	statement, args := createInsertStat("logtable", batch)
	columns := len(g.LogTableColumns())
	require.Equal(t, 2*columns, len(args))
	require.True(t, len(statement) > 0)
}

func TestCreateTableStat(t *testing.T) {
	statement := createTableStat("logtable")
	require.True(t, strings.HasPrefix(statement, "CREATE TABLE IF NOT EXISTS logtable"))
	require.True(t, strings.Contains(statement, "log_message TEXT NOT NULL"))
	require.True(t, strings.Contains(statement, "PRIMARY KEY (log_uid)"))
}
