package random

import "github.com/couchbase/tools-random/source"

// WeightedChoiceOption pairs a type with a weight.
type WeightedChoiceOption[T any] struct {
	// Weight of the option, a higher weight means it's more likely to be selected. Options with a zero weight are never
	// selected, unless every option has a zero weight.
	//
	// NOTE: The sum of the overall weights must be less than 'math.MaxUint64'.
	Weight uint

	// Option that may be picked.
	Option T
}

// WeightedChoice returns an element from the given slice of options where elements with a higher weight are more likely
// to be selected.
func WeightedChoice[T any](src source.Source, s []WeightedChoiceOption[T]) (T, error) {
	switch len(s) {
	case 0:
		return *new(T), ErrChoiceIsEmpty
	case 1:
		return s[0].Option, nil
	}

	var total uint64

	for _, e := range s {
		total += uint64(e.Weight)
	}

	if total == 0 {
		choice, err := Choice(src, s)
		return choice.Option, err
	}

	n, err := Integer(src, 0, total)
	if err != nil {
		return *new(T), err
	}

	for _, e := range s {
		if n < uint64(e.Weight) {
			return e.Option, nil
		}

		n -= uint64(e.Weight)
	}

	// Unreachable, 'n' is always less than the total weight.
	return s[len(s)-1].Option, nil
}
