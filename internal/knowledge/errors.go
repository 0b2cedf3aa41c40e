package knowledge

import "errors"

var (
	ErrEmptyCorpus   = errors.New("policy corpus is empty")
	ErrEmptyQuestion = errors.New("question is empty")
	ErrInvalidCorpus = errors.New("invalid policy corpus")
)
