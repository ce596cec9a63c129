// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides CUE schema validation helpers for the
// configuration file, with error formatting that points at the broken
// field in JSON-path notation.
package cueutil

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
)

// DefaultMaxFileSize bounds how large a config file may be. Anything
// bigger than this is not a configuration, it is a mistake.
const DefaultMaxFileSize int64 = 1 << 20 // 1 MiB

// UnifyIntoMap compiles the embedded schema, compiles the user data,
// unifies the two, validates, and decodes the result into a map suitable
// for merging into viper:
//
//  1. Compile the embedded schema and look up schemaPath (e.g. "#Config")
//  2. Compile the user CUE bytes
//  3. Unify, validate (non-concrete, since config fields are optional),
//     decode to map[string]any
//
// filename is used only for error messages.
func UnifyIntoMap(schema string, data []byte, schemaPath, filename string) (map[string]any, error) {
	if err := CheckFileSize(data, DefaultMaxFileSize, filename); err != nil {
		return nil, err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(schema)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}

	schemaRoot := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if schemaRoot.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, schemaRoot.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(filename))
	if userValue.Err() != nil {
		return nil, FormatError(userValue.Err(), filename)
	}

	unified := schemaRoot.Unify(userValue)
	if err := unified.Validate(); err != nil {
		return nil, FormatError(err, filename)
	}

	var out map[string]any
	if err := unified.Decode(&out); err != nil {
		return nil, FormatError(err, filename)
	}
	return out, nil
}

// FormatError formats a CUE error as <file-path>: <json-path>: <message>,
// e.g. "config.cue: hooks.pre_build: expected string, got int".
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	cueErrors := errors.Errors(err)
	if len(cueErrors) == 0 {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	var lines []string
	for _, e := range cueErrors {
		pathStr := formatPath(errors.Path(e))
		msg := e.Error()

		// CUE sometimes repeats the path inside the message itself.
		if pathStr != "" && strings.HasPrefix(msg, pathStr) {
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, pathStr), ":"))
		}

		if pathStr != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", pathStr, msg))
		} else {
			lines = append(lines, msg)
		}
	}

	if len(lines) == 1 {
		return fmt.Errorf("%s: %s", filePath, lines[0])
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filePath, strings.Join(lines, "\n  "))
}

// formatPath converts a CUE error path (["hooks", "0", "script"]) into
// JSON-path notation ("hooks[0].script").
func formatPath(path []string) string {
	if len(path) == 0 {
		return ""
	}

	var result strings.Builder
	for i, part := range path {
		isIndex := part != ""
		for _, c := range part {
			if c < '0' || c > '9' {
				isIndex = false
				break
			}
		}

		switch {
		case isIndex && i > 0:
			result.WriteString("[")
			result.WriteString(part)
			result.WriteString("]")
		case i > 0:
			result.WriteString(".")
			result.WriteString(part)
		default:
			result.WriteString(part)
		}
	}

	return result.String()
}

// CheckFileSize verifies that data does not exceed maxSize.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if int64(len(data)) > maxSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes",
			filename, len(data), maxSize)
	}
	return nil
}
