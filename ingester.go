package loggen

import (
	"fmt"

	g "github.com/tsbench/loggen/generator"
)

// Ingester is a layer for writing generated log batches into a store to be
// benchmarked. Each stream in the client is given its own instance of
// whatever Ingester class is to be used in the test.
// This class should be constructed using a no-argument constructor, so we can
// load it dynamically. Any argument-based initialization should be
// done by Init().
//
// Note that the client does not act on the status codes returned by WriteBatch.
// Instead, it keeps a count of the return values and presents them to the user.
type Ingester interface {
	// Set the properties for this ingester.
	SetProperties(p Properties)

	// Get the properties for this ingester.
	GetProperties() Properties

	// Initialize any state for this ingester.
	// Called once per instance; there is one instance per client stream.
	Init() error

	// Cleanup any state for this ingester.
	// Called once per instance; there is one instance per client stream.
	Cleanup() error

	// Write one batch of rows into the given table. Returns the number of
	// rows actually written and a status code.
	WriteBatch(table string, batch g.Batch) (int64, StatusType)
}

type IngesterBase struct {
	p Properties
}

func NewIngesterBase() *IngesterBase {
	return &IngesterBase{}
}

func (self *IngesterBase) SetProperties(p Properties) {
	self.p = p
}

func (self *IngesterBase) GetProperties() Properties {
	return self.p
}

type MakeIngesterFunc func() Ingester

var (
	Ingesters = map[string]MakeIngesterFunc{
		"basic": func() Ingester {
			return NewBasicIngester()
		},
	}
)

func NewIngester(name string, props Properties) (Ingester, error) {
	f, ok := Ingesters[name]
	if !ok {
		return nil, fmt.Errorf("unsupported ingester: %s", name)
	}
	ingester := f()
	ingester.SetProperties(props)
	return ingester, nil
}
