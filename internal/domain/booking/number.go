package booking

import (
	"crypto/rand"
	"encoding/base32"
	"time"
)

const numberSuffixLen = 8

var numberEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// GenerateNumber returns BK-YYYYMMDD-XXXXXXXX with a crypto-random suffix.
// Uniqueness is enforced by the bookings.number constraint, not here.
func GenerateNumber(now time.Time) (Number, error) {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		return Number{}, err
	}
	suffix := numberEncoding.EncodeToString(buf)[:numberSuffixLen]
	return Number{value: "BK-" + now.UTC().Format("20060102") + "-" + suffix}, nil
}
