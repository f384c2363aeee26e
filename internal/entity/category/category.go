package category

import "strings"

// Others is the preset that asks for a custom category name.
const Others = "Others"

func Defaults() []string {
	return []string{"Food", "Travel", "Utilities", "Entertainment", Others}
}

// Palette is the session's selectable category list. It starts from the
// configured presets and grows as custom categories are accepted. It is
// owned by the session and gone when the process exits.
type Palette struct {
	names []string
	seen  map[string]struct{}
}

func NewPalette(presets []string) *Palette {
	p := &Palette{seen: make(map[string]struct{}, len(presets))}
	for _, name := range presets {
		p.Add(name)
	}
	return p
}

// Add appends name to the palette unless it is already present.
// It reports whether the palette grew.
func (p *Palette) Add(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	if _, ok := p.seen[name]; ok {
		return false
	}
	p.seen[name] = struct{}{}
	p.names = append(p.names, name)
	return true
}

func (p *Palette) Contains(name string) bool {
	_, ok := p.seen[name]
	return ok
}

// List returns the selectable categories in presentation order.
func (p *Palette) List() []string {
	res := make([]string, len(p.names))
	copy(res, p.names)
	return res
}
