package collabkit

import "errors"

const Namespace = "collabkit"

var (
	ErrNilHandler       = errors.New(Namespace + ": handler must not be nil")
	ErrNilMessageSource = errors.New(Namespace + ": message source must not be nil")
	ErrInvalidOption    = errors.New(Namespace + ": invalid option")
)
