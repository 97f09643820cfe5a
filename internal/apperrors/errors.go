package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
// Validation errors are resolved locally and never reach a remote collaborator.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the request conflicts with the current state of a resource.
var ErrConflict = errors.New("resource conflict")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrRemoteRequest indicates that a remote collaborator returned a non-success
// response. The wrapping message carries the remote-provided text when available.
var ErrRemoteRequest = errors.New("remote request failed")

// ErrLedgerPosting is the ledger-posting specialization of ErrRemoteRequest.
// errors.Is(err, ErrRemoteRequest) holds for any ledger posting failure.
var ErrLedgerPosting = fmt.Errorf("%w: ledger posting failed", ErrRemoteRequest)
