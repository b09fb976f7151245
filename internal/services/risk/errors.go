package risk

import "errors"

var ErrInvalidDeposit = errors.New("deposit out of range")
