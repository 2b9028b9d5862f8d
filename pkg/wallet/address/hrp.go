package address

import (
	"fmt"
	"strings"
)

const maxHrpLen = 83

// ValidateHrp checks that the given human readable part can prefix a bech32
// string: it must be 1 to 83 printable ASCII characters, all of the same case.
// Bech32 encoders further limit its length so that the whole address fits
// in 90 characters.
func ValidateHrp(hrp string) error {
	if len(hrp) == 0 {
		return fmt.Errorf("%w: must not be empty", ErrInvalidHrp)
	}
	if len(hrp) > maxHrpLen {
		return fmt.Errorf("%w: must be at most %d characters", ErrInvalidHrp, maxHrpLen)
	}
	for i := 0; i < len(hrp); i++ {
		if hrp[i] < 33 || hrp[i] > 126 {
			return fmt.Errorf(
				"%w: invalid character at position %d", ErrInvalidHrp, i+1,
			)
		}
	}
	if strings.ToLower(hrp) != hrp && strings.ToUpper(hrp) != hrp {
		return fmt.Errorf("%w: must not be mixed case", ErrInvalidHrp)
	}
	return nil
}
