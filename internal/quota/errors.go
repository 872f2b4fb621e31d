package quota

import "errors"

var ErrQuotaNotFound = errors.New("quota not found")
