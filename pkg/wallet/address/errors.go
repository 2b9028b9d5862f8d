package address

import "errors"

var (
	ErrInvalidHrp      = errors.New("invalid human readable part")
	ErrUnknownFormat   = errors.New("unknown address format")
	ErrMissingPubKey   = errors.New("missing public key")
	ErrNoEncoders      = errors.New("registry must contain at least one encoder")
	ErrDuplicateFormat = errors.New("duplicate address format")
)
