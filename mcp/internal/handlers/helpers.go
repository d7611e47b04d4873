// Package handlers implements the MCP tool surface of the speaker tracker.
// Each handler wraps the speaker client and renders results as plain text
// the way an assistant expects to read them.
package handlers

import (
	"fmt"
	"strings"
)

// stringArg returns a string argument and whether it was supplied.
// A JSON null counts as absent.
func stringArg(args map[string]any, key string) (string, bool) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// stringSliceArg decodes an array-of-strings argument. ok is false when the
// argument was not supplied at all.
func stringSliceArg(args map[string]any, key string) (vals []string, ok bool, err error) {
	v, present := args[key]
	if !present || v == nil {
		return nil, false, nil
	}
	raw, isArray := v.([]any)
	if !isArray {
		return nil, false, fmt.Errorf("%s must be an array of strings", key)
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, isString := item.(string)
		if !isString {
			return nil, false, fmt.Errorf("%s must be an array of strings", key)
		}
		out = append(out, s)
	}
	return out, true, nil
}

// optionList renders vocabulary labels for tool descriptions and error text.
func optionList[T ~string](labels []T) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = string(l)
	}
	return strings.Join(parts, ", ")
}

// orFallback dereferences an optional string for display.
func orFallback(p *string, fallback string) string {
	if p == nil || *p == "" {
		return fallback
	}
	return *p
}
