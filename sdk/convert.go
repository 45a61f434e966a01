package sdk

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// convertError maps an arbitrary failure to exactly one classified
// Error. The mapping is total: already-classified errors pass through
// unchanged (converting twice yields the same value), gRPC status codes
// map through a fixed table, context errors map to cancelled/timeout,
// and anything else becomes UnknownError with the original failure
// retained as the cause.
func convertError(err error) *Error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	// Context errors can arrive bare, without passing through a gRPC
	// call at all (e.g. cancelled before dispatch).
	if errors.Is(err, context.Canceled) {
		return newError(CanceledError, err.Error(), err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return newError(TimeoutError, err.Error(), err)
	}

	if st, ok := status.FromError(err); ok {
		return convertStatus(st.Code(), st.Message(), err)
	}

	return newError(UnknownError, err.Error(), err)
}

func convertStatus(code codes.Code, message string, cause error) *Error {
	switch code {
	case codes.InvalidArgument:
		return newError(InvalidArgumentError, message, cause)
	case codes.OutOfRange, codes.Unimplemented:
		return newError(InvalidArgumentError, message, cause)
	case codes.NotFound:
		return newError(NotFoundError, message, cause)
	case codes.AlreadyExists:
		return newError(AlreadyExistsError, message, cause)
	case codes.Unauthenticated:
		return newError(AuthenticationError, message, cause)
	case codes.PermissionDenied:
		// The service signals credential problems on this code too;
		// the message distinguishes the two.
		if isAuthenticationSignal(message) {
			return newError(AuthenticationError, message, cause)
		}
		return newError(PermissionError, message, cause)
	case codes.ResourceExhausted:
		return newError(LimitExceededError, message, cause)
	case codes.FailedPrecondition:
		return newError(FailedPreconditionError, message, cause)
	case codes.DeadlineExceeded:
		return newError(TimeoutError, message, cause)
	case codes.Canceled:
		return newError(CanceledError, message, cause)
	case codes.Unavailable:
		return newError(ServerUnavailableError, message, cause)
	case codes.Internal, codes.DataLoss, codes.Aborted:
		return newError(InternalServerError, message, cause)
	default:
		return newError(UnknownError, message, cause)
	}
}

func isAuthenticationSignal(message string) bool {
	m := strings.ToLower(message)
	return strings.Contains(m, "api key") ||
		strings.Contains(m, "token") ||
		strings.Contains(m, "credential")
}

// invalidArgument builds the classified error used by local validation.
// No cause: the failure originates in the SDK itself.
func invalidArgument(message string) *Error {
	return newError(InvalidArgumentError, message, nil)
}

// unknownResponse builds the classified error for a response whose
// discriminator matched none of the expected shapes.
func unknownResponse(operation string) *Error {
	return newError(UnknownError, operation+" responded with an unknown result", nil)
}
