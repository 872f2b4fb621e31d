package notifier

import "errors"

var ErrUserRequired = errors.New("notifier: user id is required")
