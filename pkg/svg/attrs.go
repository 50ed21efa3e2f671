package svg

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrAttrNotFound is returned by attribute lookups when the requested key
// was never set.
var ErrAttrNotFound = errors.New("attribute not found")

// Attrs maps attribute names to their rendered text values. Insertion order
// carries no meaning: serialization always emits keys in ascending
// lexicographic order.
//
// Attrs behaves like http.Header: it is a live map, and the Set/Get methods
// are the intended access path.
type Attrs map[string]string

// NewAttrs returns an empty attribute map.
func NewAttrs() Attrs { return make(Attrs) }

// Set stores value under key, overwriting any existing entry. Values are
// rendered to text with Go's default conversion: strings pass through
// unchanged, numbers take their shortest round-trip form.
func (a Attrs) Set(key string, value any) {
	a[key] = stringify(value)
}

// Get returns the text value stored under key. It fails with
// ErrAttrNotFound when the key was never set.
func (a Attrs) Get(key string) (string, error) {
	v, ok := a[key]
	if !ok {
		return "", fmt.Errorf("attribute %q: %w", key, ErrAttrNotFound)
	}
	return v, nil
}

// String renders the map as key="value" tokens sorted ascending by key and
// joined with single spaces. An empty map renders as the empty string.
// Values are emitted as-is, without any markup escaping.
func (a Attrs) String() string {
	if len(a) == 0 {
		return ""
	}
	var b strings.Builder
	for i, key := range slices.Sorted(maps.Keys(a)) {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, `%s="%s"`, key, a[key])
	}
	return b.String()
}

// stringify renders an attribute value with the language's default text
// conversion.
func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
