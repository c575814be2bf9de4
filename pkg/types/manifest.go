package types

import "sort"

// Reserved test keys. They are set by the parser and never written back out.
const (
	KeyName     = "name"
	KeyPath     = "path"
	KeyManifest = "manifest"
	KeyHere     = "here"
)

// ReservedKeys lists the keys the serializer never emits for a test.
var ReservedKeys = []string{KeyPath, KeyName, KeyHere, KeyManifest}

// IsReserved reports whether key is one of the parser-managed keys.
func IsReserved(key string) bool {
	for _, k := range ReservedKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Vars is a variable scope: the key/value layer a manifest inherits from its
// caller or from an including manifest. It always carries "here" once a file
// is being read.
type Vars map[string]string

// Copy returns an independent copy of the scope.
func (v Vars) Copy() Vars {
	out := make(Vars, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Overlay returns a copy of v with every key of top written over it.
func (v Vars) Overlay(top map[string]string) Vars {
	out := v.Copy()
	for k, val := range top {
		out[k] = val
	}
	return out
}

// Section is one [section] of a manifest after inheritance has been applied.
// Keys holds the keys declared in the section body, in declaration order;
// Values holds the merged mapping (inherited scope plus declared keys).
type Section struct {
	Name   string
	Keys   []string
	Values map[string]string
}

// Test is a single test record: arbitrary metadata plus the reserved
// name, path and manifest keys.
type Test map[string]string

// Name returns the section header the test was declared with.
func (t Test) Name() string { return t[KeyName] }

// Path returns the absolute filesystem path of the test.
func (t Test) Path() string { return t[KeyPath] }

// Manifest returns the absolute path of the manifest that declared the test.
func (t Test) Manifest() string { return t[KeyManifest] }

// Has reports whether key is present, regardless of its value.
func (t Test) Has(key string) bool {
	_, ok := t[key]
	return ok
}

// Copy returns an independent copy of the record.
func (t Test) Copy() Test {
	out := make(Test, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// MetadataKeys returns the non-reserved keys of the test, sorted.
func (t Test) MetadataKeys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		if IsReserved(k) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Constraint is a single key = value requirement of a query.
type Constraint struct {
	Key   string
	Value string
}

// Constraints is an ordered key -> expected value mapping. Setting an
// existing key replaces its value in place.
type Constraints []Constraint

// Set adds or replaces the value for key and returns the updated list.
func (c Constraints) Set(key, value string) Constraints {
	for i := range c {
		if c[i].Key == key {
			c[i].Value = value
			return c
		}
	}
	return append(c, Constraint{Key: key, Value: value})
}

// Get returns the expected value for key.
func (c Constraints) Get(key string) (string, bool) {
	for _, kv := range c {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// Has reports whether key is constrained.
func (c Constraints) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Keys returns the constrained keys in order.
func (c Constraints) Keys() []string {
	keys := make([]string, len(c))
	for i, kv := range c {
		keys[i] = kv.Key
	}
	return keys
}

// Merge returns a new list holding c overridden by other. Keys of c keep
// their position; keys only present in other are appended.
func (c Constraints) Merge(other Constraints) Constraints {
	out := make(Constraints, 0, len(c)+len(other))
	out = append(out, c...)
	for _, kv := range other {
		out = out.Set(kv.Key, kv.Value)
	}
	return out
}
