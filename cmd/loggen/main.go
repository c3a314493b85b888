package main

import (
	"github.com/tsbench/loggen"
	"github.com/tsbench/loggen/binding"
)

func main() {
	binding.AddBindings()
	loggen.Main()
}
