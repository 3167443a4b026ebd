package decode

import "errors"

var (
	ErrInvalidInputFormat  = errors.New("decode: invalid input format")
	ErrUniformImage        = errors.New("decode: image has no contrast to threshold")
	ErrNoFinders           = errors.New("decode: no finder patterns found")
	ErrNoCorner            = errors.New("decode: no consistent corner triple found")
	ErrLinearSolveFailure  = errors.New("decode: perspective transform solve failed")
	ErrFixedModuleMismatch = errors.New("decode: too many fixed modules disagree with their known value")
	ErrUncorrectableBlock  = errors.New("decode: a codeword block had too many errors to correct")
	ErrPrematureEndOfData  = errors.New("decode: bit stream ended before a terminator")
	ErrUnsupportedMode     = errors.New("decode: unsupported mode indicator")
)
