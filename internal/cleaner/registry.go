package cleaner

// Registry maps an institution identifier to its Cleaner. It is built once at
// startup and never mutated afterwards.
type Registry struct {
	cleaners map[string]Cleaner
	fallback Cleaner
}

// NewRegistry builds the registry with every supported institution statically
// registered. Lookup on an unknown institution returns the default cleaner.
func NewRegistry() *Registry {
	return &Registry{
		cleaners: map[string]Cleaner{
			InstitutionRBC: NewRBCCleaner(),
		},
		fallback: NewDefaultCleaner(),
	}
}

// Get returns the cleaner for the given institution identifier, or the default
// cleaner when the institution is not registered.
func (r *Registry) Get(institutionID string) Cleaner {
	if c, ok := r.cleaners[institutionID]; ok {
		return c
	}
	return r.fallback
}

// Institutions returns the identifiers with a dedicated cleaner.
func (r *Registry) Institutions() []string {
	ids := make([]string, 0, len(r.cleaners))
	for id := range r.cleaners {
		ids = append(ids, id)
	}
	return ids
}
