package main

import (
	"encoding"
	"fmt"
)

// OutputFormat describes how a verdict is printed.
type OutputFormat int

const (
	OutputFormatInvalid OutputFormat = iota

	// OutputFormatText echoes trace lines as checks go.
	OutputFormatText

	// OutputFormatYAML prints the whole verdict as a YAML document once checks are done.
	OutputFormatYAML
)

var outputFormatValueMap = map[OutputFormat]string{
	OutputFormatText: "text",
	OutputFormatYAML: "yaml",
}

func (f OutputFormat) String() string {
	v, ok := outputFormatValueMap[f]
	if !ok {
		return fmt.Sprintf("invalid(%d)", f)
	}

	return v
}

var (
	_ encoding.TextMarshaler   = OutputFormat(0)
	_ encoding.TextUnmarshaler = (*OutputFormat)(nil)
)

func (f OutputFormat) MarshalText() ([]byte, error) {
	v, ok := outputFormatValueMap[f]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid OutputFormat(%d)", f)
	}

	return []byte(v), nil
}

// UnmarshalText for setting values with configs, CLI, etc.
func (f *OutputFormat) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range outputFormatValueMap {
		if v == text {
			*f = k
			return nil
		}
	}

	return fmt.Errorf("unknown output format %q", text)
}
