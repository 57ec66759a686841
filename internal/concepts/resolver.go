package concepts

import (
	"strings"

	"finlens/pkg/contracts/domain"
)

// Resolve maps a raw label to a canonical concept. Matching order:
//
//  1. exact canonical-string equality against any registered alias;
//  2. substring containment, the canonicalized alias inside the
//     canonicalized label, first match in registry order wins.
//
// Labels that match nothing stay unmapped (ok=false); they remain
// addressable by raw text for display but never feed the indicator engine.
func (r *Registry) Resolve(label string) (domain.Concept, bool) {
	canon := Canonicalize(label)
	if canon == "" {
		return "", false
	}

	for _, c := range r.order {
		for _, alias := range r.aliases[c] {
			if canon == alias {
				return c, true
			}
		}
	}
	for _, c := range r.order {
		for _, alias := range r.aliases[c] {
			if strings.Contains(canon, alias) {
				return c, true
			}
		}
	}
	return "", false
}

var defaultRegistry = NewRegistry()

// Default returns the shared default registry.
func Default() *Registry {
	return defaultRegistry
}

// Resolve resolves against the default registry.
func Resolve(label string) (domain.Concept, bool) {
	return defaultRegistry.Resolve(label)
}
