package encode

import "errors"

var (
	// ErrCapacityExceeded is returned when the payload does not fit
	// any version at the requested level, or not the explicitly
	// requested version.
	ErrCapacityExceeded = errors.New("encode: payload exceeds symbol capacity")

	// ErrInvalidVersion is returned for a version outside 1..40.
	ErrInvalidVersion = errors.New("encode: invalid version")

	// ErrInvalidCharForMode is returned when a byte does not belong to
	// the character set required by the chosen mode.
	ErrInvalidCharForMode = errors.New("encode: character not valid for mode")

	// ErrUnsupportedMode is returned for a mode this encoder does not
	// implement (Kanji).
	ErrUnsupportedMode = errors.New("encode: unsupported mode")

	// ErrInvalidInputFormat is returned when the input cannot be
	// interpreted at all (e.g. a charset this encoder doesn't know).
	ErrInvalidInputFormat = errors.New("encode: invalid input format")
)
