package action

import "errors"

// ErrExit is returned when the operator asks to close the application.
var ErrExit = errors.New("exit requested")
