package signature

import (
	"encoding/base64"
	"strconv"

	"order-notifier/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/blowfish"
)

// bcrypt with a caller supplied salt string. golang.org/x/crypto/bcrypt only
// generates random salts, so the key schedule is driven through blowfish here
// the same way that package does it internally.

const (
	bcryptAlphabet = "./ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// "$2a$04$" + 22 salt characters
	saltStringLen  = 29
	encodedSaltLen = 22
	rawSaltLen     = 16
	// only 23 of the 24 cipher bytes are encoded, as every C implementation does
	rawHashLen = 23

	maxPasswordLen = 72
)

var (
	bcryptEncoding  = base64.NewEncoding(bcryptAlphabet).WithPadding(base64.NoPadding)
	magicCipherData = []byte("OrpheanBeholderScryDoubt")
)

type saltSpec struct {
	version string // "2a", "2b" or "2y"
	cost    int
	rawSalt []byte
}

func invalidSecret(err error) error {
	return errs.Mark(errs.Mark(err, ErrInvalidSecret), errs.ErrSigning)
}

func parseSalt(secret string) (saltSpec, error) {
	if secret == "" {
		return saltSpec{}, invalidSecret(errs.New("client secret is empty"))
	}
	if len(secret) < saltStringLen {
		return saltSpec{}, invalidSecret(errs.Newf("client secret is %d bytes, want at least %d", len(secret), saltStringLen))
	}
	if secret[0] != '$' || secret[1] != '2' || secret[3] != '$' || secret[6] != '$' {
		return saltSpec{}, invalidSecret(errs.New("client secret is not a bcrypt salt"))
	}
	version := secret[1:3]
	switch version {
	case "2a", "2b", "2y":
	default:
		return saltSpec{}, invalidSecret(errs.Newf("unsupported bcrypt version %q", version))
	}

	cost, err := strconv.Atoi(secret[4:6])
	if err != nil {
		return saltSpec{}, invalidSecret(errs.Wrap(err, "bcrypt cost"))
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return saltSpec{}, invalidSecret(errs.Newf("bcrypt cost %d outside [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost))
	}

	rawSalt, err := bcryptEncoding.DecodeString(secret[7:saltStringLen])
	if err != nil {
		return saltSpec{}, invalidSecret(errs.Wrap(err, "bcrypt salt"))
	}
	if len(rawSalt) != rawSaltLen {
		return saltSpec{}, invalidSecret(errs.Newf("bcrypt salt decodes to %d bytes", len(rawSalt)))
	}

	return saltSpec{version: version, cost: cost, rawSalt: rawSalt}, nil
}

// hashWithSalt returns the full modular crypt string "$2a$NN$<salt><hash>".
func hashWithSalt(password []byte, spec saltSpec) ([]byte, error) {
	if len(password) > maxPasswordLen {
		return nil, errs.Mark(errs.Newf("password is %d bytes, bcrypt accepts at most %d", len(password), maxPasswordLen), errs.ErrSigning)
	}

	c, err := expensiveBlowfishSetup(password, spec.cost, spec.rawSalt)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "blowfish setup"), errs.ErrSigning)
	}

	cipherData := make([]byte, len(magicCipherData))
	copy(cipherData, magicCipherData)
	for i := 0; i < len(cipherData); i += 8 {
		for j := 0; j < 64; j++ {
			c.Encrypt(cipherData[i:i+8], cipherData[i:i+8])
		}
	}

	out := make([]byte, 0, saltStringLen+31)
	out = append(out, '$')
	out = append(out, spec.version...)
	out = append(out, '$')
	if spec.cost < 10 {
		out = append(out, '0')
	}
	out = strconv.AppendInt(out, int64(spec.cost), 10)
	out = append(out, '$')
	out = append(out, bcryptEncoding.EncodeToString(spec.rawSalt)...)
	out = append(out, bcryptEncoding.EncodeToString(cipherData[:rawHashLen])...)
	return out, nil
}

func expensiveBlowfishSetup(key []byte, cost int, salt []byte) (*blowfish.Cipher, error) {
	// C implementations feed the trailing NUL of the key string into the schedule.
	ckey := append(key[:len(key):len(key)], 0)

	c, err := blowfish.NewSaltedCipher(ckey, salt)
	if err != nil {
		return nil, err
	}

	rounds := uint64(1) << uint(cost)
	for i := uint64(0); i < rounds; i++ {
		blowfish.ExpandKey(ckey, c)
		blowfish.ExpandKey(salt, c)
	}
	return c, nil
}
