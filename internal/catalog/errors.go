package catalog

import "errors"

var (
	// ErrMalformed indicates the dataset is not valid JSON.
	ErrMalformed = errors.New("malformed dataset")

	// ErrNotArray indicates the dataset is valid JSON but its top-level value is not an array.
	ErrNotArray = errors.New("dataset is not an array")

	// ErrInvalidRecord indicates an array element could not be decoded as a film.
	ErrInvalidRecord = errors.New("invalid film record")

	// ErrUnknownSortKey indicates a sort key other than year or title.
	ErrUnknownSortKey = errors.New("unknown sort key")
)
