package sdk

import (
	"fmt"
)

// ErrorCode identifies the kind of failure behind an Error. The set is
// closed: every failure the SDK surfaces carries exactly one of these
// codes, regardless of which operation produced it.
//
// Callers branch on the code rather than on error strings:
//
//	switch r := resp.(type) {
//	case *CacheGetError:
//	    if r.ErrorCode() == sdk.NotFoundError {
//	        // create the cache and retry
//	    }
//	}
type ErrorCode string

const (
	// InvalidArgumentError indicates bad input caught by the SDK or
	// rejected by the service. Validation failures never reach the wire.
	InvalidArgumentError ErrorCode = "INVALID_ARGUMENT_ERROR"
	// NotFoundError indicates the target cache or index does not exist.
	NotFoundError ErrorCode = "NOT_FOUND_ERROR"
	// AlreadyExistsError indicates a create conflicted with an existing
	// resource of the same name.
	AlreadyExistsError ErrorCode = "ALREADY_EXISTS_ERROR"
	// AuthenticationError indicates a bad or expired credential.
	AuthenticationError ErrorCode = "AUTHENTICATION_ERROR"
	// PermissionError indicates the credential is valid but not allowed
	// to perform the operation.
	PermissionError ErrorCode = "PERMISSION_ERROR"
	// LimitExceededError indicates a throughput or storage quota was hit.
	LimitExceededError ErrorCode = "LIMIT_EXCEEDED_ERROR"
	// FailedPreconditionError indicates the system is not in the state
	// the operation requires.
	FailedPreconditionError ErrorCode = "FAILED_PRECONDITION_ERROR"
	// InternalServerError indicates an unexpected service-side failure.
	InternalServerError ErrorCode = "INTERNAL_SERVER_ERROR"
	// ServerUnavailableError indicates the service could not be reached.
	ServerUnavailableError ErrorCode = "SERVER_UNAVAILABLE"
	// TimeoutError indicates the per-call deadline elapsed.
	TimeoutError ErrorCode = "TIMEOUT_ERROR"
	// CanceledError indicates the caller's context was canceled before
	// the call completed.
	CanceledError ErrorCode = "CANCELLED_ERROR"
	// UnknownError is the total-mapping fallback for anything the
	// converter cannot classify. The original failure is retained as
	// the cause.
	UnknownError ErrorCode = "UNKNOWN_ERROR"
)

// messageWrapper returns the fixed resolution guidance attached to
// every error of a given kind.
func messageWrapper(code ErrorCode) string {
	switch code {
	case InvalidArgumentError:
		return "Invalid argument passed to Roost client"
	case NotFoundError:
		return "A cache or index with the specified name does not exist. To resolve this error, " +
			"make sure you have created the resource before attempting to use it"
	case AlreadyExistsError:
		return "A cache or index with the specified name already exists. To resolve this error, " +
			"either delete the existing resource and make a new one, or use a different name"
	case AuthenticationError:
		return "Invalid authentication credentials to connect to the service"
	case PermissionError:
		return "Insufficient permissions to perform an operation on a cache"
	case LimitExceededError:
		return "Request rate, bandwidth, or object size exceeded the limits for this account. " +
			"To resolve this error, reduce your usage as appropriate or contact support to request a limit increase"
	case FailedPreconditionError:
		return "System is not in a state required for the operation's execution"
	case InternalServerError:
		return "An unexpected error occurred while trying to fulfill the request; please contact support"
	case ServerUnavailableError:
		return "The server was unable to handle the request; consider retrying. " +
			"If the error persists, please contact support"
	case TimeoutError:
		return "The client's configured timeout was exceeded; you may need to use a configuration " +
			"with more lenient timeouts"
	case CanceledError:
		return "The request was cancelled by the client; please contact support if you were not " +
			"expecting this"
	default:
		return "Unknown error has occurred"
	}
}

// Error is the classified form of any failure surfaced to a caller. It
// is constructed once, at the boundary where the failure is first
// observed, and is immutable from then on. The original low-level
// failure is retained as the cause and reachable through Unwrap, so
// errors.Is and errors.As keep working against wrapped gRPC or context
// errors.
type Error struct {
	code    ErrorCode
	message string
	cause   error
}

func newError(code ErrorCode, message string, cause error) *Error {
	return &Error{code: code, message: message, cause: cause}
}

// ErrorCode returns the taxonomy member for this error.
func (e *Error) ErrorCode() ErrorCode { return e.code }

// Message returns the resolution guidance plus the underlying detail.
func (e *Error) Message() string {
	return fmt.Sprintf("%s: %s", messageWrapper(e.code), e.message)
}

// Cause returns the original lower-level failure, if any.
func (e *Error) Cause() error { return e.cause }

// Error implements the error interface.
func (e *Error) Error() string { return e.Message() }

// Unwrap returns the wrapped cause for errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.cause }
