package nbformat

import "errors"

var (
	ErrParse     = errors.New("notebook parse error")
	ErrBadFormat = errors.New("bad notebook format")
)
