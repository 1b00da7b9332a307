package infra

import (
	"errors"

	"stayops/internal/pkg/errs"
)

type GatewayErrorKind string

// Error kinds for the channel-manager gateway boundary.
const (
	KindNotFound        GatewayErrorKind = "NOT_FOUND"
	KindRemoteRejected  GatewayErrorKind = "REMOTE_REJECTED"
	KindRemoteFailure   GatewayErrorKind = "REMOTE_FAILURE"
	KindTransport       GatewayErrorKind = "TRANSPORT"
	KindUnexpectedShape GatewayErrorKind = "UNEXPECTED_SHAPE"
)

// GatewayError wraps a failure from the channel-manager API. RemoteMessage
// carries the remote error text verbatim so callers can surface it unchanged.
type GatewayError struct {
	Kind          GatewayErrorKind
	RemoteMessage string
	msg           string
	err           error
}

func (e GatewayError) Error() string {
	out := string(e.Kind) + ": " + e.msg
	if e.RemoteMessage != "" {
		out += ": " + e.RemoteMessage
	}
	if e.err != nil {
		out += ": " + e.err.Error()
	}
	return out
}

func (e GatewayError) Unwrap() error {
	return e.err
}

func WrapGatewayErr(kind GatewayErrorKind, msg string, remoteMessage string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return GatewayError{Kind: kind, RemoteMessage: remoteMessage, msg: msg, err: err}
}

func IsKind(err error, kind GatewayErrorKind) bool {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// RemoteMessage extracts the verbatim remote error text, if any.
func RemoteMessage(err error) string {
	var e GatewayError
	if errors.As(err, &e) {
		return e.RemoteMessage
	}
	return ""
}
