package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrDuplicateEvent indicates that a gateway event with the same processor ID
// was already recorded for this company. The unique constraint on
// (company_id, processor_id) is the authoritative source of this error.
var ErrDuplicateEvent = errors.New("event already recorded")

// ErrInvalidCallbackPayload indicates that a callback payload references an
// event or transaction that does not exist within the calling company's scope.
var ErrInvalidCallbackPayload = errors.New("invalid callback payload")

// ErrInvalidURIFormat indicates a funding instrument or customer URI that does
// not match a recognized gateway URI shape.
var ErrInvalidURIFormat = errors.New("invalid URI format")

// ErrInvalidFundingInstrument indicates the gateway rejected the referenced
// funding instrument.
var ErrInvalidFundingInstrument = errors.New("invalid funding instrument")

// ErrInvalidCustomer indicates the gateway rejected the referenced customer.
var ErrInvalidCustomer = errors.New("invalid customer")

// ErrNotConfigured indicates a processor operation was invoked before the
// gateway API key was configured. This is a programmer error, not retryable.
var ErrNotConfigured = errors.New("gateway API key not configured")

// ErrAmbiguousResource indicates the gateway returned more than one resource
// for a transaction tag that must match at most one. Treated as a fatal
// consistency error rather than silently picking one.
var ErrAmbiguousResource = errors.New("ambiguous gateway resource for transaction")
