package bip32

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// path is a parsed derivation path. A path starting with "m" addresses
// private keys, one starting with "M" addresses public keys; each further
// component is a child index, hardened when suffixed with ', h or H.
type path struct {
	isPrivate bool
	indexes   []uint32
}

func parsePath(pathString string) (*path, error) {
	parts := strings.Split(pathString, "/")

	isPrivate := false
	switch parts[0] {
	case "m":
		isPrivate = true
	case "M":
		isPrivate = false
	default:
		return nil, errors.Errorf("derivation path must start with m/ or M/ but got %q", pathString)
	}

	indexes := make([]uint32, len(parts)-1)
	for i, part := range parts[1:] {
		index, err := parsePathIndex(part)
		if err != nil {
			return nil, errors.Wrapf(err, "could not parse derivation path %q", pathString)
		}
		indexes[i] = index
	}

	return &path{isPrivate: isPrivate, indexes: indexes}, nil
}

func parsePathIndex(part string) (uint32, error) {
	hardened := false
	switch {
	case strings.HasSuffix(part, "'"), strings.HasSuffix(part, "h"), strings.HasSuffix(part, "H"):
		hardened = true
		part = part[:len(part)-1]
	}

	index, err := strconv.ParseUint(part, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid path component %q", part)
	}
	if index >= HardenedIndexStart {
		return 0, errors.Errorf("path component %d is above the hardened index boundary; use the ' suffix instead", index)
	}

	if hardened {
		index += HardenedIndexStart
	}
	return uint32(index), nil
}

// Path derives the descendant key addressed by a private ("m/...") path
// string. A failure at any level aborts the chain and is reported once here.
func (extPrv *ExtendedPrivateKey) Path(pathString string) (*ExtendedPrivateKey, error) {
	path, err := parsePath(pathString)
	if err != nil {
		return nil, err
	}
	if !path.isPrivate {
		return nil, errors.Errorf("path %q addresses public keys; use PathPublic", pathString)
	}

	return extPrv.path(path)
}

// PathPublic derives the descendant public key addressed by a public
// ("M/...") path string. The derivation itself runs on the private side, so
// hardened components are allowed.
func (extPrv *ExtendedPrivateKey) PathPublic(pathString string) (*ExtendedPublicKey, error) {
	path, err := parsePath(pathString)
	if err != nil {
		return nil, err
	}
	if path.isPrivate {
		return nil, errors.Errorf("path %q addresses private keys; use Path", pathString)
	}

	descendantKey, err := extPrv.path(path)
	if err != nil {
		return nil, err
	}

	return descendantKey.Public()
}

func (extPrv *ExtendedPrivateKey) path(path *path) (*ExtendedPrivateKey, error) {
	descendantKey := extPrv
	for _, index := range path.indexes {
		var err error
		descendantKey, err = descendantKey.Child(index)
		if err != nil {
			return nil, err
		}
	}

	return descendantKey, nil
}

// Path derives the descendant key addressed by a public ("M/...") path
// string. Only non-hardened components can be derived without the private
// key.
func (extPub *ExtendedPublicKey) Path(pathString string) (*ExtendedPublicKey, error) {
	path, err := parsePath(pathString)
	if err != nil {
		return nil, err
	}
	if path.isPrivate {
		return nil, errors.Errorf("path %q addresses private keys, which cannot be derived from a public key", pathString)
	}

	descendantKey := extPub
	for _, index := range path.indexes {
		descendantKey, err = descendantKey.Child(index)
		if err != nil {
			return nil, err
		}
	}

	return descendantKey, nil
}
