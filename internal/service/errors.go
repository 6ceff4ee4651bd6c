package service

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrStorageFailure = errors.New("storage failure")
	ErrNoProfile      = errors.New("no profile stored")
	ErrDiscarded      = errors.New("result discarded: caller went away")
	ErrRateLimited    = errors.New("rate limited")
)
