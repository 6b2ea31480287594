package chips

import "errors"

var (
	ErrChipNotFound = errors.New("chip not found")
)

func isNotFound(err error) bool {
	return errors.Is(err, ErrChipNotFound)
}
