package bip32

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ripemd160"
)

func newHMACWriter(key []byte) hmacWriter {
	return hmacWriter{
		Hash: hmac.New(sha512.New, key),
	}
}

type hmacWriter struct {
	hash.Hash
}

func (hw hmacWriter) InfallibleWrite(p []byte) {
	_, err := hw.Write(p)
	if err != nil {
		panic(errors.Wrap(err, "writing to hmac should never fail"))
	}
}

// hash160 is RIPEMD160 over SHA256, the short hash used for parent
// fingerprints.
func hash160(data []byte) []byte {
	sha := sha256.Sum256(data)
	ripe := ripemd160.New()
	ripe.Write(sha[:])
	return ripe.Sum(nil)
}

func doubleSha256(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}

func calcChecksum(data []byte) []byte {
	return doubleSha256(data)[:checkSumLen]
}

func validateChecksum(data []byte) error {
	checksum := data[len(data)-checkSumLen:]
	expectedChecksum := calcChecksum(data[:len(data)-checkSumLen])
	if !bytes.Equal(expectedChecksum, checksum) {
		return errors.Wrapf(ErrChecksum, "expected checksum %x but got %x", expectedChecksum, checksum)
	}

	return nil
}
