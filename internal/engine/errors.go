package engine

import "errors"

// ErrNilSchema is returned by New when constructed with a nil root schema.
// The engine must never be constructible in an invalid state.
var ErrNilSchema = errors.New("engine: root schema is nil")

// ErrDatasetUnavailable is returned by New when the bundled dataset
// fixtures fail to load, a build-time packaging bug rather than a
// condition any caller can recover from.
var ErrDatasetUnavailable = errors.New("engine: dataset service unavailable")

// ErrCatalogUnavailable is returned by New when the embedded message
// catalog fails to load.
var ErrCatalogUnavailable = errors.New("engine: message catalog unavailable")
