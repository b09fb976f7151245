package ancillary

import "errors"

var (
	ErrSourceUnavailable = errors.New("ancillary risk source unavailable")
	ErrUnknownSource     = errors.New("unknown ancillary source kind")
)
