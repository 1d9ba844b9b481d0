package errs

import "errors"

// Error categories shared by the signer, token manager, order client and dispatcher.
var (
	// Bad signing key material. Fatal at startup.
	ErrSigning = errors.New("signing error")

	// Token refresh failed or the provider rejected the bearer token.
	ErrAuth = errors.New("auth error")

	// Network failure or timeout talking to a remote endpoint.
	ErrTransport = errors.New("transport error")

	// Non-success response that is not an auth rejection.
	ErrAPI = errors.New("api error")

	// A notification channel failed to deliver.
	ErrDispatch = errors.New("dispatch error")

	ErrInvalidConfig = errors.New("invalid configuration")
)
