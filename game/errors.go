package game

import "errors"

var (
	ErrInvalidSetup = errors.New("invalid game setup")
	ErrIllegalMove  = errors.New("illegal move")
)
