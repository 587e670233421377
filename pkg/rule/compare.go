package rule

// orderingSense is the direction a pair of categories is compared in.
type orderingSense int

const (
	ascending orderingSense = iota
	descending
)

// senseFor maps a category pairing to its ordering sense. Modules grouped in
// the same category (both relative, or both flat) compare ascending; every
// other pairing, including either side being uncategorized, compares
// descending. This is what clusters imports by category while ordering the
// clusters reverse-alphabetically against each other.
func senseFor(a, b Category) orderingSense {
	switch {
	case a == CategoryRelative && b == CategoryRelative,
		a == CategoryFlat && b == CategoryFlat:
		return ascending
	default:
		return descending
	}
}

// Compare orders two module source strings. It returns exactly -1 or 1,
// never 0: equal strings fall through the greater-than test the same way a
// lesser one does, so ties resolve toward whichever operand is a. The
// relation is total and deterministic but not transitive across mixed
// categories.
func Compare(a, b string) int {
	if senseFor(Classify(a), Classify(b)) == ascending {
		if a > b {
			return 1
		}
		return -1
	}
	if a > b {
		return -1
	}
	return 1
}
