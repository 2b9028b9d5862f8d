package address

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	// maxBech32Len is the max length of a bech32 string as per BIP-173.
	maxBech32Len      = 90
	bech32ChecksumLen = 6
)

// encodeBech32 encodes the payload with the given hrp, making sure the
// resulting string can still be decoded by any bech32 decoder.
func encodeBech32(hrp string, payload []byte) (string, error) {
	if err := ValidateHrp(hrp); err != nil {
		return "", err
	}
	if maxLen := maxBech32HrpLen(len(payload)); len(hrp) > maxLen {
		return "", fmt.Errorf(
			"%w: must be at most %d characters for a bech32 address",
			ErrInvalidHrp, maxLen,
		)
	}
	return bech32.EncodeFromBase256(hrp, payload)
}

// maxBech32HrpLen returns the max hrp length for a payload of the given size,
// that is 51 for 20-byte hashes.
func maxBech32HrpLen(payloadLen int) int {
	dataLen := (payloadLen*8 + 4) / 5
	return maxBech32Len - 1 - dataLen - bech32ChecksumLen
}
