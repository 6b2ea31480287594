package owners

import "errors"

var (
	ErrOwnerNotFound = errors.New("owner not found")
)

func isNotFound(err error) bool {
	return errors.Is(err, ErrOwnerNotFound)
}
