package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"community-feed/internal/domain/entity"
	"community-feed/internal/observability/logging"
	"community-feed/internal/usecase/community"
)

// feedService is the part of community.Service the commands call.
type feedService interface {
	Since() time.Time
	BuildFeed(ctx context.Context, communityID int64, since time.Time) ([]entity.ArticleFeedRecord, error)
	RelatedByAuthor(ctx context.Context, articleID, communityID int64, since time.Time) ([]entity.ArticleFeedRecord, error)
	RelatedByCategory(ctx context.Context, articleID, communityID int64, since time.Time) ([]entity.ArticleFeedRecord, error)
	TryLink(ctx context.Context, communityID, articleID, userID int64) (entity.LinkOutcome, error)
	Unlink(ctx context.Context, communityID, articleID, userID int64) (bool, error)
	UnpostedCandidates(ctx context.Context, userID, communityID int64) ([]entity.ArticleFeedRecord, error)
	PostedByUser(ctx context.Context, userID, communityID int64) ([]entity.ArticleFeedRecord, error)
}

var _ feedService = (*community.Service)(nil)

// commandArgs names the positional ids each command takes.
var commandArgs = map[string][]string{
	"migrate":          nil,
	"migrate-down":     nil,
	"feed":             {"community"},
	"related-author":   {"article", "community"},
	"related-category": {"article", "community"},
	"link":             {"community", "article", "user"},
	"unlink":           {"community", "article", "user"},
	"candidates":       {"user", "community"},
	"posted":           {"user", "community"},
}

func knownCommand(name string) bool {
	_, ok := commandArgs[name]
	return ok
}

func parseIDs(command string, args []string) ([]int64, error) {
	names := commandArgs[command]
	if len(args) != len(names) {
		return nil, fmt.Errorf("%s expects %d argument(s) %v, got %d", command, len(names), names, len(args))
	}
	ids := make([]int64, len(args))
	for i, a := range args {
		id, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %s id %q is not an integer", command, names[i], a)
		}
		ids[i] = id
	}
	return ids, nil
}

// dispatch runs one domain command and prints its result.
// Policy outcomes exit 0; invalid ids and store failures exit 1; malformed arguments exit 2.
func dispatch(ctx context.Context, svc feedService, out printer, stderr io.Writer, command string, args []string) int {
	ids, err := parseIDs(command, args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	var (
		records []entity.ArticleFeedRecord
		printed error
	)
	switch command {
	case "feed":
		records, err = svc.BuildFeed(ctx, ids[0], svc.Since())
	case "related-author":
		records, err = svc.RelatedByAuthor(ctx, ids[0], ids[1], svc.Since())
	case "related-category":
		records, err = svc.RelatedByCategory(ctx, ids[0], ids[1], svc.Since())
	case "candidates":
		records, err = svc.UnpostedCandidates(ctx, ids[0], ids[1])
	case "posted":
		records, err = svc.PostedByUser(ctx, ids[0], ids[1])
	case "link":
		var outcome entity.LinkOutcome
		if outcome, err = svc.TryLink(ctx, ids[0], ids[1], ids[2]); err == nil {
			printed = out.outcome(outcome)
		}
	case "unlink":
		var removed bool
		if removed, err = svc.Unlink(ctx, ids[0], ids[1], ids[2]); err == nil {
			printed = out.removed(removed)
		}
	default:
		fmt.Fprintf(stderr, "Error: unknown command %q\n", command)
		return exitUsage
	}

	if err != nil {
		logger := logging.FromContext(ctx)
		switch {
		case errors.Is(err, community.ErrInvalidID):
			logger.Warn("invalid input", "command", command, "error", err)
		default:
			logger.Error("command failed", "command", command, "error", err)
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}

	if command != "link" && command != "unlink" {
		printed = out.records(records)
	}
	if printed != nil {
		fmt.Fprintf(stderr, "Error: failed to write output: %v\n", printed)
		return exitFailure
	}
	return exitOK
}
