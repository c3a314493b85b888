package binding

import (
	"github.com/tsbench/loggen"
)

func AddBindings() {
	loggen.Ingesters["mysql"] = func() loggen.Ingester {
		return NewMysqlIngester()
	}
	loggen.Ingesters["bolt"] = func() loggen.Ingester {
		return NewBoltIngester()
	}
}
