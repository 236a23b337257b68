package loader

import (
	"bytes"
	"errors"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// decodeTOML decodes TOML onto v, rejecting unknown keys.
func decodeTOML(source string, data []byte, v any) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	err := dec.Decode(v)
	if err == nil {
		return nil
	}

	perr := &ParseError{Path: source, Message: err.Error(), Err: err}

	var strict *toml.StrictMissingError
	if errors.As(err, &strict) && len(strict.Errors) > 0 {
		first := strict.Errors[0]
		perr.Line, perr.Column = first.Position()
		perr.Message = "unknown key " + strings.Join(first.Key(), ".")
		return perr
	}

	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		perr.Line, perr.Column = derr.Position()
		perr.Message = derr.Error()
	}
	return perr
}
