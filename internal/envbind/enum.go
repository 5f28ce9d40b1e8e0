// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envbind

// EnumMember is one named member of an enumerated string type.
type EnumMember struct {
	Name  string
	Value string
}

// Enum is implemented by string-kinded types with a closed set of members.
// The binder matches a raw value against member names first, then against
// member values.
type Enum interface {
	EnumMembers() []EnumMember
}

func matchEnum(e Enum, raw string) (string, bool) {
	members := e.EnumMembers()
	for _, m := range members {
		if m.Name == raw {
			return m.Value, true
		}
	}
	for _, m := range members {
		if m.Value == raw {
			return m.Value, true
		}
	}
	return "", false
}
