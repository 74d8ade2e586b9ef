package api

import "errors"

// ErrorUnorderedKeys means the comparator could not place two keys in
// a total order, that is, it returned something other than -1, 0 or
// +1. The operation in progress is abandoned and the error propagates
// to the caller unchanged; it cannot be retried internally.
var ErrorUnorderedKeys = errors.New("unorderedKeys")
