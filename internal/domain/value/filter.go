package value

// Set is a membership-only collection.
type Set[T comparable] map[T]struct{}

func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}

	return s
}

func (s Set[T]) Has(item T) bool {
	_, ok := s[item]
	return ok
}

// Matches reports whether item is allowed by s. An empty set allows
// everything.
func (s Set[T]) Matches(item T) bool {
	return len(s) == 0 || s.Has(item)
}

// CategoryFilter is the discrete filter sent with category queries. Empty
// sets leave the corresponding vendor filter unselected.
type CategoryFilter struct {
	Factions Set[Category]
	Rarities Set[Rarity]
	Foils    Set[Foil]
}

// Colors expands the rarity and foil preferences into catalog colors. Nil
// means no color restriction.
func (f CategoryFilter) Colors() Set[Color] {
	if len(f.Rarities) == 0 && len(f.Foils) == 0 {
		return nil
	}

	colors := NewSet[Color]()

	for _, foil := range Foils() {
		if !f.Foils.Matches(foil) {
			continue
		}

		for _, rarity := range Rarities() {
			if f.Rarities.Matches(rarity) {
				colors[ColorOf(foil, rarity)] = struct{}{}
			}
		}
	}

	return colors
}
