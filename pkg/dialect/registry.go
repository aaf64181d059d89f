package dialect

import (
	"sort"
	"strings"
	"sync"
)

// Global dialect registry. Concrete dialect packages register themselves
// here from their init functions; consumers load bases by name.
var (
	dialectsMu sync.RWMutex
	dialects   = make(map[string]*Dialect)
)

// Get returns a registered dialect by name.
func Get(name string) (*Dialect, bool) {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	d, ok := dialects[strings.ToLower(name)]
	return d, ok
}

// Register adds a dialect to the global registry. Only published dialects
// may be registered: everything the matching engine can reach is frozen
// and validated.
func Register(d *Dialect) error {
	if !d.Published() {
		return ErrNotPublished
	}
	dialectsMu.Lock()
	defer dialectsMu.Unlock()
	dialects[strings.ToLower(d.Name())] = d
	return nil
}

// MustRegister registers a dialect and panics on failure. For use from
// dialect package init functions, where a failure means the dialect
// definition itself is broken.
func MustRegister(d *Dialect) {
	if err := Register(d); err != nil {
		panic("dialect: registering " + d.Name() + ": " + err.Error())
	}
}

// List returns all registered dialect names, sorted.
func List() []string {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
