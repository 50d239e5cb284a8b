package products

import "strings"

// Filter: búsqueda por nombre (sin distinguir mayúsculas) y tipo exacto opcional.
type Filter struct {
	Search string
	Type   Type
}

func (f Filter) Match(p Product) bool {
	if q := strings.ToLower(f.Search); q != "" && !strings.Contains(strings.ToLower(p.Name), q) {
		return false
	}
	return f.Type == "" || p.Type == f.Type
}

// Apply filtra en memoria conservando el orden.
func Apply(items []Product, f Filter) []Product {
	out := make([]Product, 0, len(items))
	for _, p := range items {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}
