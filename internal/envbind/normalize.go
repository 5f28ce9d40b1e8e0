// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envbind

import (
	"strings"
	"unicode"
)

var keyFolder = strings.NewReplacer("__", "_", "-", "_", ".", "_")

// NormalizeKey turns the remainder of an environment variable name (after
// its prefix is stripped) into a canonical field key: surrounding spaces and
// leading underscores are dropped, "__", "-" and "." fold to "_", and the
// result is lower-cased.
func NormalizeKey(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "_")
	s = keyFolder.Replace(s)
	return strings.ToLower(s)
}

// snakeCase converts a Go identifier such as GPUMemoryUtilization into
// gpu_memory_utilization.
func snakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
