package app

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/five82/usersearch/internal/directory"
	"github.com/five82/usersearch/internal/ui"
)

// Fetch loads the directory once. A failure is logged here and returned;
// callers keep going with an empty directory.
func Fetch(ctx context.Context, src directory.Fetcher, logger *log.Logger) ([]directory.User, error) {
	users, err := src.FetchUsers(ctx)
	if err != nil {
		logger.Error("fetch users failed", "err", err)
		return nil, err
	}
	logger.Info("fetched users", "count", len(users))
	return users, nil
}

// Loader adapts Fetch to the UI's load hook.
func Loader(src directory.Fetcher, logger *log.Logger) ui.LoadFunc {
	return func(ctx context.Context) ([]directory.User, error) {
		return Fetch(ctx, src, logger)
	}
}
