package repository

import "errors"

var ErrEmptyKey = errors.New("empty storage key")
