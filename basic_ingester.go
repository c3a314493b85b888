package loggen

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	g "github.com/tsbench/loggen/generator"
)

// BasicIngester is a demo ingester that does nothing but count the rows it is
// given, optionally echoing each batch and simulating a per-batch delay. It
// serves as a baseline to measure the pure generation cost.
type BasicIngester struct {
	*IngesterBase
	verbose        bool
	randomizeDelay bool
	toDelay        int64
	written        int64
}

func NewBasicIngester() *BasicIngester {
	return &BasicIngester{
		IngesterBase: NewIngesterBase(),
	}
}

func (self *BasicIngester) Delay() {
	if self.toDelay > 0 {
		var nanos int64
		if self.randomizeDelay {
			nanos = MillisecondToNanosecond(int64(gofakeit.Number(0, int(self.toDelay))))
			if nanos == 0 {
				return
			}
		} else {
			nanos = MillisecondToNanosecond(self.toDelay)
		}
		time.Sleep(time.Duration(nanos))
	}
}

// Initialize any state for this ingester.
func (self *BasicIngester) Init() error {
	p := self.GetProperties()
	var err error
	self.verbose, err = strconv.ParseBool(
		p.GetDefault(ConfigBasicVerbose, ConfigBasicVerboseDefault))
	if err != nil {
		return err
	}
	self.toDelay, err = strconv.ParseInt(
		p.GetDefault(ConfigBasicSimulateDelay, ConfigBasicSimulateDelayDefault), 0, 64)
	if err != nil {
		return err
	}
	self.randomizeDelay, err = strconv.ParseBool(
		p.GetDefault(ConfigBasicRandomizeDelay, ConfigBasicRandomizeDelayDefault))
	if err != nil {
		return err
	}
	if self.verbose {
		OutputProperties(p)
	}
	return nil
}

func (self *BasicIngester) Cleanup() error {
	return nil
}

// Write one batch. The rows are counted and discarded.
func (self *BasicIngester) WriteBatch(table string, batch g.Batch) (int64, StatusType) {
	self.Delay()
	if len(batch) == 0 {
		return 0, StatusBadRequest
	}
	if self.verbose {
		first := batch[0]
		Output("WRITE %s rows=%d first_uid=%s first_ts=%d",
			table, len(batch), first.LogUID, first.Ts)
	}
	atomic.AddInt64(&self.written, int64(len(batch)))
	return int64(len(batch)), StatusOK
}

// Written reports the total number of rows this instance has accepted.
func (self *BasicIngester) Written() int64 {
	return atomic.LoadInt64(&self.written)
}
