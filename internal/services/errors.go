package services

import "errors"

// ErrNotFound is returned when a mutation references an unknown id. The
// state is left unchanged; handlers map this to 404.
var ErrNotFound = errors.New("not found")

// ErrSuspended is returned when a suspended user is picked as the
// acting operator.
var ErrSuspended = errors.New("user suspended")
