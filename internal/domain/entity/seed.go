package entity

// Seed is one seed type with its owned count.
type Seed struct {
	Name     string `json:"name" yaml:"name"`
	Count    int    `json:"count" yaml:"count"`
	Unlocked bool   `json:"unlocked" yaml:"unlocked"`
}

// DuplicateSeedName returns the first name that appears twice, if any.
func DuplicateSeedName(seeds []Seed) (string, bool) {
	seen := make(map[string]struct{}, len(seeds))
	for _, s := range seeds {
		if _, ok := seen[s.Name]; ok {
			return s.Name, true
		}
		seen[s.Name] = struct{}{}
	}

	return "", false
}

// CloneSeeds copies a seed list so callers never share backing arrays with the catalog.
func CloneSeeds(seeds []Seed) []Seed {
	if seeds == nil {
		return []Seed{}
	}
	out := make([]Seed, len(seeds))
	copy(out, seeds)

	return out
}
