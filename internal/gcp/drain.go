package gcp

import (
	"errors"

	"google.golang.org/api/iterator"
)

// Drain calls next until it reports iterator.Done and returns everything it
// produced. The page token handling lives in the generated iterators; next is
// usually the iterator's Next method.
func Drain[T any](next func() (T, error)) ([]T, error) {
	var items []T
	for {
		item, err := next()
		if errors.Is(err, iterator.Done) {
			return items, nil
		}
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}
