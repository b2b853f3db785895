package yerror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	assert.Equal(t, 1, Ignore(1, errors.New("ignore error")))
	assert.Equal(t, 2, Must(2, nil))
	assert.Panics(t, func() { Must(0, errors.New("must error")) })
}
