package client

import "errors"

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing required argument")
	ErrUnknownCountry  = errors.New("unknown country")
)
