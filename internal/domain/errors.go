package domain

import "errors"

var ErrFeedbackNotFound = errors.New("feedback not found")
