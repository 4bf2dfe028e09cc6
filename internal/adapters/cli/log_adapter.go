package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/example/sacis/internal/adapters/export"
	"github.com/example/sacis/internal/models"
	"github.com/example/sacis/internal/ports/primary"
)

// LogAdapter translates CLI operations to LogService calls.
type LogAdapter struct {
	service primary.LogService
	out     io.Writer
}

// NewLogAdapter creates a new LogAdapter with the given service.
func NewLogAdapter(service primary.LogService, out io.Writer) *LogAdapter {
	return &LogAdapter{service: service, out: out}
}

// List prints entries most recent first.
func (a *LogAdapter) List(ctx context.Context, filters primary.LogFilters) error {
	entries, err := a.service.ListLogs(ctx, filters)
	if err != nil {
		return fmt.Errorf("failed to list logs: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No log entries found")
		return nil
	}

	for _, e := range entries {
		a.printEntry(e)
	}
	return nil
}

// Export writes entries in the given format to w.
func (a *LogAdapter) Export(ctx context.Context, w io.Writer, format export.Format, filters primary.LogFilters) (int, error) {
	entries, err := a.service.ListLogs(ctx, filters)
	if err != nil {
		return 0, fmt.Errorf("failed to list logs: %w", err)
	}
	if err := export.WriteLogs(w, format, entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}

// Backlog prints the latest entries oldest first and returns the highest
// ID shown, or zero when there are none.
func (a *LogAdapter) Backlog(ctx context.Context, filters primary.LogFilters) (int64, error) {
	entries, err := a.service.ListLogs(ctx, filters)
	if err != nil {
		return 0, fmt.Errorf("failed to list logs: %w", err)
	}

	var lastID int64
	for i := len(entries) - 1; i >= 0; i-- {
		a.printEntry(entries[i])
		lastID = max(lastID, entries[i].ID)
	}
	return lastID, nil
}

// Tail prints the backlog, then polls every interval and prints entries
// newer than the last one shown, oldest first, until ctx is done. The
// limit applies to the backlog only; each poll reads every new entry.
func (a *LogAdapter) Tail(ctx context.Context, filters primary.LogFilters, interval time.Duration) error {
	lastID, err := a.Backlog(ctx, filters)
	if err != nil {
		return err
	}
	poll := filters
	poll.Limit = models.NoLogLimit

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		poll.AfterID = lastID
		entries, err := a.service.ListLogs(ctx, poll)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to poll logs: %w", err)
		}
		for i := len(entries) - 1; i >= 0; i-- {
			if entries[i].ID <= lastID {
				continue
			}
			a.printEntry(entries[i])
			lastID = entries[i].ID
		}
	}
}

func (a *LogAdapter) printEntry(e *models.LogEntry) {
	actor := ""
	if e.CreatedBy != nil {
		actor = fmt.Sprintf(" (user %d)", *e.CreatedBy)
	}
	fmt.Fprintf(a.out, "[%s] %s - %s%s\n", e.CreatedAt.Local().Format(timeLayout), e.EventType, e.Details, actor)
}
