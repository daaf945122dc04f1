package review

import "errors"

var ErrInvalidReview = errors.New("invalid review")
