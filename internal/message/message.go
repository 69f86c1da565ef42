package message

// Name identifies a message. Names are opaque and compare by value;
// there is no hierarchy or pattern matching.
// Examples: "ping", "refresh", "mounted"
type Name string

// String returns the name as a string.
func (n Name) String() string {
	return string(n)
}

// Valid reports whether the name can address a message.
// Only the empty name is invalid.
func (n Name) Valid() bool {
	return n != ""
}

// Args is the ordered list of opaque values accompanying one fire.
// All observers of a single fire receive the same slice; treat it as
// read-only.
type Args []any

// Lifecycle names announced by host component wrappers on behalf of a
// publisher. The wrappers live outside this module; the names are part of
// the shared vocabulary so observers can subscribe to them like any other
// message.
const (
	Mounted   Name = "mounted"
	Updated   Name = "updated"
	Unmounted Name = "unmounted"
)
