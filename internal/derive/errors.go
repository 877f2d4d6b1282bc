package derive

import "errors"

var ErrUnknownSortKey = errors.New("unknown sort key")
