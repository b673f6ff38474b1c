package compiler

import "sort"

// Deps is the dependency set of one compilation: the runtime helpers, the locales whose plural
// function is used and the formatters that at least one compiled element invokes.
// It is only written while compiling and read-only afterwards.
type Deps struct {
	helpers    map[string]struct{}
	locales    map[string]struct{}
	formatters map[string]struct{}
}

func newDeps() *Deps {
	return &Deps{
		helpers:    make(map[string]struct{}),
		locales:    make(map[string]struct{}),
		formatters: make(map[string]struct{}),
	}
}

func (deps *Deps) addHelper(name string) {
	deps.helpers[name] = struct{}{}
}

func (deps *Deps) addLocale(code string) {
	deps.locales[code] = struct{}{}
}

func (deps *Deps) addFormatter(name string) {
	deps.formatters[name] = struct{}{}
}

// Helpers returns the sorted names of the referenced runtime helpers
func (deps *Deps) Helpers() []string {
	return sortedKeys(deps.helpers)
}

// Locales returns the sorted codes of the locales whose plural function is referenced
func (deps *Deps) Locales() []string {
	return sortedKeys(deps.locales)
}

// Formatters returns the sorted names of the referenced formatters
func (deps *Deps) Formatters() []string {
	return sortedKeys(deps.formatters)
}

// IsEmpty checks if nothing at all is referenced
func (deps *Deps) IsEmpty() bool {
	return len(deps.helpers) == 0 && len(deps.locales) == 0 && len(deps.formatters) == 0
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
