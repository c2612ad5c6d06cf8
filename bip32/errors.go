package bip32

import "github.com/pkg/errors"

// Derivation and parsing failures wrap one of the following errors, so callers
// can tell the kinds apart with errors.Is while still getting full context in
// the message.
var (
	// ErrInvalidScalar means a derived or parsed secret is zero or not below
	// the curve group order. BIP32 instructs callers to skip such an index
	// and try the next one.
	ErrInvalidScalar = errors.New("secret is outside the valid scalar range")

	// ErrInvalidPoint means a derived or parsed public key is the group
	// identity or is not a point on the curve.
	ErrInvalidPoint = errors.New("public key is not a usable curve point")

	// ErrDepthOverflow means a child was requested from a key that is
	// already at the maximum derivation depth of 255.
	ErrDepthOverflow = errors.New("key is at the maximum derivation depth")

	// ErrHardenedFromPublic means a hardened child was requested from a
	// public-only key. Hardened derivation needs the private key.
	ErrHardenedFromPublic = errors.New("cannot derive a hardened child from a public key")

	// ErrVersionMismatch means a parsed version word does not match the
	// version the caller expects.
	ErrVersionMismatch = errors.New("extended key version mismatch")

	// ErrChecksum means serialized bytes fail checksum verification.
	ErrChecksum = errors.New("extended key checksum mismatch")

	// ErrEncoding means decoded text is structurally broken (bad alphabet
	// or length) before the checksum is even checked.
	ErrEncoding = errors.New("extended key encoding is malformed")
)
