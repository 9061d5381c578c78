package identity

// Keys is a set of alternate lookup aliases. Stored normalized.
type Keys struct {
	values []string
}

// NewKeys builds a key set, dropping blanks and case-insensitive duplicates
func NewKeys(keys ...string) Keys {
	k := Keys{}
	for _, key := range keys {
		k = k.Add(key)
	}
	return k
}

// Add returns a copy of the set with key added
func (k Keys) Add(key string) Keys {
	key = normalize(key)
	if key == "" || k.Contains(key) {
		return k
	}
	values := make([]string, len(k.values), len(k.values)+1)
	copy(values, k.values)
	return Keys{values: append(values, key)}
}

// Contains reports whether key is in the set, ignoring case
func (k Keys) Contains(key string) bool {
	key = normalize(key)
	for _, v := range k.values {
		if v == key {
			return true
		}
	}
	return false
}

// Values returns the normalized aliases in insertion order
func (k Keys) Values() []string {
	out := make([]string, len(k.values))
	copy(out, k.values)
	return out
}

// Len returns the number of aliases
func (k Keys) Len() int {
	return len(k.values)
}

// Matches reports whether name matches the internal name or any alias.
// The internal name is always an implicit key.
func Matches(name string, internalName InternalName, keys Keys) bool {
	return internalName.EqualsString(name) || keys.Contains(name)
}
