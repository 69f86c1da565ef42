package registry

// Global is a long-lived named registry shared across unrelated parts of
// the system. It is an explicit value: callers construct one and pass it
// to whoever needs it. There is no ambient process-wide instance.
type Global struct {
	*Named
	name string
}

// NewGlobal creates a global registry. The name is only used for log
// attribution when several globals coexist.
func NewGlobal(name string, opts ...Option) *Global {
	if name == "" {
		name = "global"
	}
	return &Global{
		Named: newNamed(name, opts...),
		name:  name,
	}
}

// Name returns the registry's log-attribution name.
func (g *Global) Name() string {
	return g.name
}
