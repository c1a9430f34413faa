package errors

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Status reports err as a gRPC status. The message drops the leading code
// when err itself is an *Error; errors that carry no code are Unknown.
func Status(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}

	var customErr *Error
	if As(err, &customErr) {
		msg := err.Error()
		if customErr == err {
			msg = customErr.Message
			if customErr.Cause != nil {
				msg += ": " + customErr.Cause.Error()
			}
		}
		return status.New(customErr.Code.GRPCCode(), msg)
	}

	return status.New(codes.Unknown, err.Error())
}

// ExitCode maps err to a process exit status: 0 for nil, otherwise the
// numeric gRPC code so scripts can tell a missing player from an outage
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	code := Status(err).Code()
	if code == codes.OK {
		return int(codes.Unknown)
	}
	return int(code)
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeOK:
		return codes.OK
	case CodeInvalidArgument:
		return codes.InvalidArgument
	case CodeNotFound:
		return codes.NotFound
	case CodeResourceExhausted:
		return codes.ResourceExhausted
	case CodeFailedPrecondition:
		return codes.FailedPrecondition
	case CodeOutOfRange:
		return codes.OutOfRange
	case CodeInternal:
		return codes.Internal
	case CodeUnavailable:
		return codes.Unavailable
	case CodeDataLoss:
		return codes.DataLoss
	default:
		return codes.Unknown
	}
}
