package random

import "github.com/couchbase/tools-random/source"

// Choice returns a random element from the given slice.
func Choice[S ~[]E, E any](src source.Source, s S) (E, error) {
	switch len(s) {
	case 0:
		return *new(E), ErrChoiceIsEmpty
	case 1:
		return s[0], nil
	}

	idx, err := Integer(src, 0, len(s))
	if err != nil {
		return *new(E), err
	}

	return s[idx], nil
}
