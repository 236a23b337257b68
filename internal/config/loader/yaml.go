package loader

import (
	"bytes"
	"errors"
	"io"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

var yamlLine = regexp.MustCompile(`line (\d+)`)

// decodeYAML decodes YAML onto v, rejecting unknown keys. An empty document
// decodes to nothing.
func decodeYAML(source string, data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err := dec.Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	perr := &ParseError{Path: source, Message: err.Error(), Err: err}

	var terr *yaml.TypeError
	if errors.As(err, &terr) && len(terr.Errors) > 0 {
		perr.Message = terr.Errors[0]
	}
	if m := yamlLine.FindStringSubmatch(perr.Message); m != nil {
		perr.Line, _ = strconv.Atoi(m[1])
	}
	return perr
}
