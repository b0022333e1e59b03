package safe

import (
	"context"
	"io"
	"log/slog"

	"github.com/trialworks/protodraft/pkg/utils/logging"
)

// Close closes an io.Closer and logs any error. Nil closers are
// ignored so deferred cleanup never panics.
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.From(ctx).Error("Failed to close", slog.Any("error", err))
	}
}
