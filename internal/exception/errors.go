package exception

import "errors"

// ErrAnnotationNotNumeric is raised when an errorCode or parentValidationCode
// annotation resolves to a non-numeric value, a schema-authoring mistake
// that exception/parser treats the same as an absent annotation.
var ErrAnnotationNotNumeric = errors.New("schema annotation is not numeric")
