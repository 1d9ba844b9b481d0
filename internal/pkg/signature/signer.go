package signature

import (
	"encoding/base64"
	"strconv"

	"order-notifier/internal/pkg/errs"
)

// ErrInvalidSecret is returned when the client secret cannot be used as a bcrypt salt.
// Errors carrying it also match errs.ErrSigning.
var ErrInvalidSecret = errs.New("invalid client secret")

// Password is the string the commerce API expects to be hashed: "<clientID>_<timestampMs>".
func Password(clientID string, timestampMs int64) string {
	return clientID + "_" + strconv.FormatInt(timestampMs, 10)
}

// Sign computes client_secret_sign for the token endpoint.
// The client secret is itself a bcrypt salt string; the resulting modular crypt
// string is standard base64 encoded.
func Sign(clientID, clientSecret string, timestampMs int64) (string, error) {
	spec, err := parseSalt(clientSecret)
	if err != nil {
		return "", err
	}

	hashed, err := hashWithSalt([]byte(Password(clientID, timestampMs)), spec)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(hashed), nil
}

// ValidateSecret reports whether clientSecret is usable as signing key material.
func ValidateSecret(clientSecret string) error {
	_, err := parseSalt(clientSecret)
	return err
}

type BcryptSigner struct{}

func NewBcryptSigner() *BcryptSigner {
	return &BcryptSigner{}
}

func (s *BcryptSigner) Sign(clientID, clientSecret string, timestampMs int64) (string, error) {
	return Sign(clientID, clientSecret, timestampMs)
}
