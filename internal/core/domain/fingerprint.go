package domain

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
)

// FingerprintBits is the length of a perceptual fingerprint.
const FingerprintBits = 64

var ErrInvalidFingerprint = errors.New("invalid fingerprint")

// Fingerprint is a 64-bit perceptual image hash. Visually similar images
// have fingerprints with a small Hamming distance.
type Fingerprint uint64

// Distance returns the number of differing bits between f and o.
func (f Fingerprint) Distance(o Fingerprint) int {
	return bits.OnesCount64(uint64(f ^ o))
}

// String renders the fingerprint as 16 lowercase hex digits, the most
// significant bit first.
func (f Fingerprint) String() string {
	return fmt.Sprintf("%016x", uint64(f))
}

// ParseFingerprint is the inverse of Fingerprint.String.
func ParseFingerprint(s string) (Fingerprint, error) {
	if len(s) != FingerprintBits/4 {
		return 0, fmt.Errorf("%w: %q has %d hex digits", ErrInvalidFingerprint, s, len(s))
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFingerprint, s)
	}
	return Fingerprint(v), nil
}

func (f Fingerprint) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Fingerprint) UnmarshalText(text []byte) error {
	v, err := ParseFingerprint(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
