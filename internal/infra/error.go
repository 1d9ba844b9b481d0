package infra

import (
	"errors"
	"log/slog"
	"strconv"

	"order-notifier/internal/pkg/errs"
)

type ClientErrorKind string

// ClientError describes a failed call to a remote endpoint.
type ClientError struct {
	Kind   ClientErrorKind
	Status int
	// provider error code, e.g. GW.AUTHN
	Code string
	msg  string
	err  error // wrapped low-level error
}

func (e ClientError) Error() string {
	s := string(e.Kind) + ": " + e.msg
	if e.Status != 0 {
		s += " (status " + strconv.Itoa(e.Status) + ")"
	}
	if e.Code != "" {
		s += " [" + e.Code + "]"
	}
	if e.err != nil {
		s += ": " + e.err.Error()
	}
	return s
}

func (e ClientError) Unwrap() error {
	return e.err
}

// WrapClientErr logs the failure and returns a ClientError marked with the taxonomy sentinel of its kind.
func WrapClientErr(slogger *slog.Logger, kind ClientErrorKind, status int, code, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if status != 0 {
		logArgs = append(logArgs, slog.Int("status", status))
	}
	if code != "" {
		logArgs = append(logArgs, slog.String("code", code))
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Warn("Client error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return errs.Mark(ClientError{Kind: kind, Status: status, Code: code, msg: msg, err: err}, kind.sentinel())
}

func IsKind(err error, kind ClientErrorKind) bool {
	var e ClientError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Client error kinds
const (
	KindTransport    ClientErrorKind = "TRANSPORT"
	KindAuthRejected ClientErrorKind = "AUTH_REJECTED"
	KindAPI          ClientErrorKind = "API"
	KindDecode       ClientErrorKind = "DECODE"
)

func (k ClientErrorKind) sentinel() error {
	switch k {
	case KindTransport:
		return errs.ErrTransport
	case KindAuthRejected:
		return errs.ErrAuth
	default:
		return errs.ErrAPI
	}
}
