//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package neo3

import (
	"encoding/json"
	"fmt"

	"trpc.group/trpc-go/trpc-agent-go/log"
)

// Result is the uniform envelope every Neo N3 tool returns. Exactly one of
// Output and Error is populated. Tools never return a Go error to the
// caller: validation, transport and RPC failures all travel as Error data,
// so a calling agent can always inspect the outcome.
type Result struct {
	Output string `json:"output,omitempty"` // Output is the human-readable result on success.
	Error  string `json:"error,omitempty"`  // Error is the failure message when the call did not succeed.
}

// success builds a Result embedding the raw RPC value under a short label,
// e.g. "Block count: 12345".
func success(label string, v any) Result {
	return Result{Output: label + ": " + formatValue(v)}
}

// failure captures any error as tool-level failure data.
func failure(err error) Result {
	log.Debugf("neo3 tool call failed: %v", err)
	return Result{Error: err.Error()}
}

// failuref captures a formatted failure message, used for input validation
// at the tool boundary.
func failuref(format string, args ...any) Result {
	msg := fmt.Sprintf(format, args...)
	log.Debugf("neo3 tool call rejected: %s", msg)
	return Result{Error: msg}
}

// formatValue renders an RPC result uniformly: strings as-is, values with a
// native textual form via their Stringer, everything else (mappings,
// sequences, numbers) as JSON.
func formatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return "null"
	case string:
		return value
	case fmt.Stringer:
		return value.String()
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
