package path

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

const (
	// HardenedKeyStart is the index of the first hardened child key.
	HardenedKeyStart uint32 = hdkeychain.HardenedKeyStart

	masterKeyMarker = "m"
)

var hardenedMarkers = []string{"'", "h", "H"}

// DerivationPath is the data structure representing an HD path.
type DerivationPath []uint32

// ParseDerivationPath converts a derivation path in string format to a
// DerivationPath type.
// Segments are decimal or 0x-prefixed hex numbers, optionally followed by one
// of the hardened markers ', h or H. The leading m is optional.
func ParseDerivationPath(strPath string) (DerivationPath, error) {
	if strings.TrimSpace(strPath) == "" {
		return nil, ErrMissingDerivationPath
	}

	elems := strings.Split(strPath, "/")
	if strings.TrimSpace(elems[0]) == masterKeyMarker {
		elems = elems[1:]
		if len(elems) == 0 {
			return nil, &InvalidPathSegmentError{
				Position: 1, Reason: "path has no segments after the master key",
			}
		}
	}

	path := make(DerivationPath, 0, len(elems))
	for i, elem := range elems {
		index, err := parseSegment(elem)
		if err != nil {
			return nil, &InvalidPathSegmentError{
				Position: i + 1,
				Segment:  strings.TrimSpace(elem),
				Reason:   err.Error(),
			}
		}
		path = append(path, index)
	}

	return path, nil
}

// IsHardened returns whether the given child index is in the hardened range.
func IsHardened(index uint32) bool {
	return index >= HardenedKeyStart
}

// IsPublicDerivable returns whether every step of the path can be derived
// from a public-only extended key.
func (path DerivationPath) IsPublicDerivable() bool {
	for _, index := range path {
		if IsHardened(index) {
			return false
		}
	}
	return true
}

func (path DerivationPath) String() string {
	if len(path) <= 0 {
		return ""
	}

	result := masterKeyMarker
	for _, component := range path {
		var hardened bool
		if IsHardened(component) {
			component -= HardenedKeyStart
			hardened = true
		}
		result = fmt.Sprintf("%s/%d", result, component)
		if hardened {
			result += "'"
		}
	}
	return result
}

func parseSegment(elem string) (uint32, error) {
	elem = strings.TrimSpace(elem)
	if elem == "" {
		return 0, fmt.Errorf("segment is empty")
	}

	var value uint32
	for _, marker := range hardenedMarkers {
		if strings.HasSuffix(elem, marker) {
			value = HardenedKeyStart
			elem = strings.TrimSpace(strings.TrimSuffix(elem, marker))
			break
		}
	}

	base := 10
	digits := elem
	if strings.HasPrefix(elem, "0x") || strings.HasPrefix(elem, "0X") {
		base = 16
		digits = elem[2:]
	}
	if digits == "" || strings.ContainsAny(digits, "+-_") {
		return 0, fmt.Errorf("segment is not a number")
	}

	// use big int for convertion
	bigval, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return 0, fmt.Errorf("segment is not a number")
	}

	max := math.MaxUint32 - value
	if bigval.Cmp(big.NewInt(int64(max))) > 0 {
		if value == 0 {
			return 0, fmt.Errorf("must be in range [0, %d]", max)
		}
		return 0, fmt.Errorf("must be in hardened range [0, %d]", max)
	}

	return value + uint32(bigval.Uint64()), nil
}
