package types

import "errors"

var (
	ErrInvalidKind        = errors.New("aggregation key fields must follow the dimension hierarchy order")
	ErrEmptyDataset       = errors.New("no cost records loaded")
	ErrModelNotTrained    = errors.New("model not trained yet, train the model first")
	ErrUnknownModel       = errors.New("unknown model kind")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)
