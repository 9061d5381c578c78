// Package identity holds the canonical identifier shared by every moddable object
// and the alias matching rules used to resolve user or folder supplied names.
package identity

import (
	"encoding/json"
	"strings"
)

// InternalName is an immutable, case-normalized identifier.
// The zero value is the empty name and is never a valid key.
type InternalName struct {
	id string
}

// NewInternalName normalizes name by trimming and lowercasing it
func NewInternalName(name string) InternalName {
	return InternalName{id: normalize(name)}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// String returns the normalized form
func (n InternalName) String() string {
	return n.id
}

// IsEmpty reports whether the name is unset
func (n InternalName) IsEmpty() bool {
	return n.id == ""
}

// Equals compares case-insensitively. Because the value is normalized at
// construction, == on InternalName and map keys agree with Equals.
func (n InternalName) Equals(other InternalName) bool {
	return n.id == other.id
}

// EqualsString compares against an arbitrary string case-insensitively
func (n InternalName) EqualsString(s string) bool {
	return n.id == normalize(s)
}

// MarshalJSON writes the normalized string
func (n InternalName) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.id)
}

// UnmarshalJSON reads and normalizes a string
func (n *InternalName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.id = normalize(s)
	return nil
}
