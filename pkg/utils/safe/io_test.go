package safe_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/trialworks/protodraft/pkg/utils/safe"
)

type closer struct {
	err    error
	closed bool
}

func (c *closer) Close() error {
	c.closed = true
	return c.err
}

func TestClose(t *testing.T) {
	ctx := context.Background()

	t.Run("closes the closer", func(t *testing.T) {
		c := &closer{}
		safe.Close(ctx, c)
		gt.Bool(t, c.closed).True()
	})

	t.Run("swallows close errors", func(t *testing.T) {
		safe.Close(ctx, &closer{err: errors.New("already closed")})
	})

	t.Run("ignores nil closer", func(t *testing.T) {
		safe.Close(ctx, nil)
	})
}
