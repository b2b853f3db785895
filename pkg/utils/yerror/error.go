package yerror

import (
	"github.com/Asutorufa/seqlist/pkg/log"
)

// Must panics when err is not nil, logging it first.
func Must[T any](v T, err error) T {
	if err != nil {
		log.Error("must", "err", err)
		panic(err)
	}
	return v
}

// Ignore logs a non-nil err at warn level and returns v.
func Ignore[T any](v T, err error) T {
	if err != nil {
		log.Warn("ignore error", "err", err)
	}
	return v
}
