package ports

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrNotRunning = errors.New("simulation not running")
)
