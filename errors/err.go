package errors

import (
	"fmt"
)

var (
	ErrInvalidConfig = fmt.Errorf("exampleproject: invalid config")
	ErrNotResolved   = fmt.Errorf("exampleproject: not resolved")
	ErrInvalidBoot   = fmt.Errorf("exampleproject: invalid boot configuration")
)
