package binding

import (
	"encoding/json"

	bolt "go.etcd.io/bbolt"

	"github.com/tsbench/loggen"
	g "github.com/tsbench/loggen/generator"
)

const (
	PropertyBoltPath        = "bolt.path"
	PropertyBoltPathDefault = "loggen.bolt"
)

// BoltIngester writes batches into a local bbolt file, one bucket per table
// and one JSON document per row keyed by log_uid. It gives the benchmark a
// real durable sink without requiring any external server.
type BoltIngester struct {
	*loggen.IngesterBase
	path string
	db   *bolt.DB
}

func NewBoltIngester() *BoltIngester {
	return &BoltIngester{
		IngesterBase: loggen.NewIngesterBase(),
	}
}

func (self *BoltIngester) Init() error {
	props := self.GetProperties()
	self.path = props.GetDefault(PropertyBoltPath, PropertyBoltPathDefault)
	db, err := bolt.Open(self.path, 0600, nil)
	if err != nil {
		return err
	}
	self.db = db
	return nil
}

func (self *BoltIngester) Cleanup() error {
	if self.db != nil {
		return self.db.Close()
	}
	return nil
}

// encodeRow flattens a row into a JSON object keyed by column name.
func encodeRow(row *g.Row) ([]byte, error) {
	columns := g.LogTableColumns()
	doc := make(map[string]interface{}, len(columns))
	for i, v := range row.Values() {
		doc[columns[i].Name] = v
	}
	return json.Marshal(doc)
}

func (self *BoltIngester) WriteBatch(table string, batch g.Batch) (int64, loggen.StatusType) {
	if len(batch) == 0 {
		return 0, loggen.StatusBadRequest
	}
	err := self.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(table))
		if err != nil {
			return err
		}
		for i := range batch {
			value, err := encodeRow(&batch[i])
			if err != nil {
				return err
			}
			if err = bucket.Put([]byte(batch[i].LogUID), value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		loggen.Debugf("fail to insert batch into %s, err: %s", table, err)
		return 0, loggen.StatusError
	}
	return int64(len(batch)), loggen.StatusOK
}
