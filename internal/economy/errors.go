package economy

import "errors"

var (
	ErrNegativeAmount    = errors.New("negative_amount")
	ErrInsufficientFunds = errors.New("insufficient_funds")
)
