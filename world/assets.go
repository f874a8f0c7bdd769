package world

import "sort"

// Assets tracks which body and turret assets the host has finished loading.
// Spawning or firing with a missing asset is dropped for that tick.
type Assets struct {
	loaded map[string]struct{}
}

func NewAssets(names ...string) *Assets {
	a := &Assets{loaded: make(map[string]struct{})}
	for _, name := range names {
		a.Load(name)
	}
	return a
}

// AllAssets returns a registry with every built-in kind loaded.
func AllAssets() *Assets {
	a := NewAssets()
	for _, k := range BodyKinds() {
		a.Load(k.spec().asset)
	}
	for _, k := range TurretKinds() {
		a.Load(k.spec().asset)
	}
	return a
}

func (a *Assets) Load(name string) {
	a.loaded[name] = struct{}{}
}

func (a *Assets) Unload(name string) {
	delete(a.loaded, name)
}

func (a *Assets) Loaded(name string) bool {
	_, ok := a.loaded[name]
	return ok
}

func (a *Assets) Names() []string {
	names := make([]string, 0, len(a.loaded))
	for name := range a.loaded {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
