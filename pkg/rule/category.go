// Package rule implements the import-order rule: a comparator that orders
// import declarations reverse-alphabetically with module-category grouping,
// and a fixer that rewrites misplaced declarations in place.
package rule

import "regexp"

// Category classifies a module source string.
type Category int

const (
	// CategoryRelative is a file-relative module, beginning with a dot.
	CategoryRelative Category = iota
	// CategoryFlat is a named package dependency, beginning with a
	// lowercase letter.
	CategoryFlat
	// CategoryOther covers everything else: scoped packages, absolute
	// paths, uppercase-leading names, the empty string.
	CategoryOther
)

var (
	relativePattern = regexp.MustCompile(`^\.`)
	flatPattern     = regexp.MustCompile(`^[a-z]`)
)

// Classify returns the category of a module source string.
func Classify(source string) Category {
	switch {
	case relativePattern.MatchString(source):
		return CategoryRelative
	case flatPattern.MatchString(source):
		return CategoryFlat
	default:
		return CategoryOther
	}
}

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryRelative:
		return "relative"
	case CategoryFlat:
		return "flat"
	default:
		return "other"
	}
}
