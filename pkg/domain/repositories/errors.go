package repositories

import "errors"

// ErrSourceUnavailable marks a data source whose backing file does not
// exist for the requested date. The pipeline degrades optional sources
// to documented neutral values and skips dates whose required sources
// report it.
var ErrSourceUnavailable = errors.New("data source unavailable")
