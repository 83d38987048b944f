package qrcode

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"

	"stampcard/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	tokenRandomLength = 12
	tokenAlphabet     = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// recoveryLevels maps the configured letter to the skip2 recovery level.
// skip2 names Q "High" and H "Highest".
//
//nolint:gochecknoglobals
var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

type cardRenderer struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewQRCodeService renders customer cards as size x size PNGs. Unknown
// recovery levels fall back to M.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	level, ok := recoveryLevels[strings.ToUpper(strings.TrimSpace(errorCorrectionLevel))]
	if !ok {
		level = qrcode.Medium
	}

	return &cardRenderer{size: size, level: level}
}

func (r *cardRenderer) GenerateCustomerQR(qrToken string) ([]byte, error) {
	if qrToken == "" {
		return nil, errors.New("cannot render a card without a qr token")
	}

	png, err := qrcode.Encode(qrToken, r.level, r.size)
	if err != nil {
		return nil, errors.Wrapf(err, "render card for token %s", qrToken)
	}

	return png, nil
}

// tokenGenerator issues tokens of the form <base36 unix millis><12 random alphanumerics>.
type tokenGenerator struct {
	now func() time.Time
}

// NewTokenGenerator creates the customer QR token generator
func NewTokenGenerator() service.QRTokenGenerator {
	return &tokenGenerator{now: time.Now}
}

// NewToken returns a fresh token. Collisions are caught by the unique index on customers.qr_code.
func (g *tokenGenerator) NewToken() (string, error) {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(g.now().UnixMilli(), 36))

	alphabetSize := big.NewInt(int64(len(tokenAlphabet)))
	for range tokenRandomLength {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", errors.Wrap(err, "failed to read random bytes")
		}
		b.WriteByte(tokenAlphabet[n.Int64()])
	}

	return b.String(), nil
}
