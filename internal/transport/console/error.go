package console

import "errors"

var ErrPanic = errors.New("panic in command")
