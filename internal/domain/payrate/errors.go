package payrate

import "errors"

var (
	ErrRateNotFound = errors.New("pay rate record not found")
)
