package injector

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported definition format")
	ErrInvalidDefinition = errors.New("invalid state machine definition")
	ErrParsingCancelled  = errors.New("definition parsing cancelled")

	ErrFailedToParseXML  = errors.New("failed to parse XML definition")
	ErrFailedToParseYAML = errors.New("failed to parse YAML definition")
	ErrFailedToParseJSON = errors.New("failed to parse JSON definition")
	ErrFailedToReadFile  = errors.New("failed to read definition file")
	ErrFailedToInject    = errors.New("failed to register state machine")
)
