package generator

import (
	"fmt"
)

// ConfigurationError reports an invalid generation parameter (zero row count,
// zero batch size and the like). It is always raised before any batch is
// produced.
type ConfigurationError struct {
	msg string
}

func NewConfigurationError(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{
		msg: fmt.Sprintf(format, args...),
	}
}

func (self *ConfigurationError) Error() string {
	return "configuration error: " + self.msg
}

// PoolBuildError reports a failure to materialize the value pools or the
// message template tables. Like ConfigurationError it is fatal at
// construction; steady-state batch production never fails.
type PoolBuildError struct {
	msg string
}

func NewPoolBuildError(format string, args ...interface{}) *PoolBuildError {
	return &PoolBuildError{
		msg: fmt.Sprintf(format, args...),
	}
}

func (self *PoolBuildError) Error() string {
	return "pool build error: " + self.msg
}
