package primary

import "errors"

// ErrValidation is returned, wrapped, when a request fails a precondition
// check. Nothing is written in that case.
var ErrValidation = errors.New("validation failed")

// ErrAuditFailed is returned, wrapped, when a mutation succeeded but its
// audit entry could not be appended. The mutation is not rolled back; the
// accompanying result is valid.
var ErrAuditFailed = errors.New("audit log append failed")
