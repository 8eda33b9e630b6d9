package codegen

import (
	"fmt"
	"strings"

	"github.com/jinzhu/inflection"
)

// Name holds the singular and plural forms of a resource name. Both forms are
// lower-cased at construction and never mutated afterwards.
type Name struct {
	Singular string
	Plural   string
}

// InvalidNameError reports a token the pluralization ruleset could not
// resolve into a singular/plural pair.
type InvalidNameError struct {
	Token string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("cannot determine a singular/plural pair for %q", e.Token)
}

// Normalize resolves a user-supplied resource name into its singular/plural
// pair. The input is lower-cased and trimmed first. When the ruleset reports
// a distinct singular form the input is treated as plural; otherwise the
// input is singular and its plural is computed. Normalize is idempotent over
// either form: Normalize("project") == Normalize("projects").
//
// The caller is responsible for rejecting multi-word or non-alphabetic input
// before calling Normalize.
func Normalize(raw string) (Name, error) {
	word := strings.ToLower(strings.TrimSpace(raw))
	if word == "" {
		return Name{}, &InvalidNameError{Token: raw}
	}

	singular := inflection.Singular(word)
	if singular != word {
		// The ruleset found a singular form, so the input is plural. The
		// pair is only valid if the singular round-trips back to the input.
		if inflection.Plural(singular) != word {
			return Name{}, &InvalidNameError{Token: word}
		}
		return Name{Singular: singular, Plural: word}, nil
	}

	plural := inflection.Plural(word)
	if inflection.Singular(plural) != word {
		return Name{}, &InvalidNameError{Token: word}
	}

	return Name{Singular: word, Plural: plural}, nil
}

// Title upper-cases the first letter of a resource fragment, matching the
// class-name convention of the generated Python source.
func Title(word string) string {
	if word == "" {
		return ""
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

// article returns the indefinite article for a word.
func article(word string) string {
	if word == "" {
		return "a"
	}
	switch word[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an"
	}
	return "a"
}
