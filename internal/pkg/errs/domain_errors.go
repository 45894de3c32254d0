package errs

import "errors"

// Category markers shared by the usecase layer. Attach with Mark, test with errors.Is.
var (
	ErrDomainValidationFailed  = errors.New("domain validation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrCacheOperationFailed    = errors.New("cache operation failed")
	ErrExternalServiceFailed   = errors.New("external service call failed")
)
