package loggen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Properties map[string]string

func NewProperties() Properties {
	return make(Properties)
}

func (self Properties) Get(key string) string {
	v, _ := self[key]
	return v
}

func (self Properties) GetDefault(key string, defaultValue string) string {
	if v, ok := self[key]; ok {
		return v
	}
	return defaultValue
}

func (self Properties) Add(key string, value string) {
	self[key] = value
}

func (self Properties) Merge(other Properties) {
	for k, v := range other {
		self[k] = v
	}
}

// LoadProperties reads a property file: a flat YAML mapping of
// property name to value.
func LoadProperties(path string) (Properties, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p := NewProperties()
	if err = yaml.Unmarshal(content, &p); err != nil {
		return nil, err
	}
	return p, nil
}

func MillisecondToNanosecond(millis int64) int64 {
	return millis * 1000 * 1000
}

func MillisecondToSecond(millis int64) int64 {
	return millis / 1000
}

func SecondToNanosecond(second int64) int64 {
	return second * 1000 * 1000 * 1000
}

func NanosecondToMicrosecond(nano int64) int64 {
	return nano / 1000
}

func NanosecondToMillisecond(nano int64) int64 {
	return nano / 1000 / 1000
}

func Output(format string, args ...interface{}) {
	fmt.Printf(format, args...)
	fmt.Println("")
}

func OutputProperties(p Properties) {
	Output("***************** properties *****************")
	if p != nil {
		for k, v := range p {
			Output("\"%s\"=\"%s\"", k, v)
		}
	}
	Output("**********************************************")
}
