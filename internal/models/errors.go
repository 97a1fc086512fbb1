package models

import "errors"

// ErrUnknownStatus indicates a status string that names no board column
var ErrUnknownStatus = errors.New("unknown project status")
