package random

import "github.com/couchbase/tools-random/source"

// Selection returns a slice of 'n' random entries from the given slice, entries may be selected more than once.
func Selection[S ~[]E, E any](src source.Source, s S, n int) (S, error) {
	choices := make(S, 0, n)

	for i := 0; i < n; i++ {
		choice, err := Choice(src, s)
		if err != nil {
			return nil, err
		}

		choices = append(choices, choice)
	}

	return choices, nil
}
