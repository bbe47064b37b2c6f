package darkcoin

import "errors"

var (
	ErrNegativeAmount = errors.New("negative_amount")
	ErrNotTopRank     = errors.New("not_top_rank")
	ErrAlreadyClaimed = errors.New("already_claimed")
)
