package relation

import "errors"

var (
	ErrAlreadyExists  = errors.New("relation already exists")
	ErrNotFound       = errors.New("relation not found")
	ErrTargetNotFound = errors.New("relation target not found")
	ErrSelfSubscribe  = errors.New("cannot subscribe to yourself")
)
