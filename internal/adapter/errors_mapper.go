package adapter

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// mapRPCError converts an error returned by a gRPC invocation into a
// *ServiceError. It returns nil for a nil error.
func mapRPCError(method string, err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			return &ServiceError{Method: method, Code: CodeTimeout, Message: err.Error(), Retryable: true}
		case errors.Is(err, context.Canceled):
			return &ServiceError{Method: method, Code: CodeCanceled, Message: err.Error()}
		default:
			return &ServiceError{Method: method, Code: CodeUnknown, Message: err.Error()}
		}
	}

	svcErr := &ServiceError{Method: method, Message: st.Message()}

	switch st.Code() {
	case codes.NotFound:
		svcErr.Code = CodeNotFound
	case codes.AlreadyExists:
		svcErr.Code = CodeAlreadyExists
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		svcErr.Code = CodeInvalidArgument
	case codes.Unauthenticated, codes.PermissionDenied:
		svcErr.Code = CodeRejected
	case codes.Unavailable, codes.ResourceExhausted, codes.Aborted:
		svcErr.Code = CodeUnavailable
		svcErr.Retryable = true
	case codes.DeadlineExceeded:
		svcErr.Code = CodeTimeout
		svcErr.Retryable = true
	case codes.Canceled:
		svcErr.Code = CodeCanceled
	case codes.Internal, codes.DataLoss, codes.Unimplemented:
		svcErr.Code = CodeInternal
	default:
		svcErr.Code = CodeUnknown
	}

	return svcErr
}
