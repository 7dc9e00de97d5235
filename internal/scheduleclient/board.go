package scheduleclient

import (
	"context"
	"errors"
	"sync"

	"go-resto/internal/schedule"

	"go.uber.org/zap"
)

// Board is a local, optimistic view of the assignments for one date range.
// Mutations show up immediately and are rolled back if the server refuses them.
type Board struct {
	reader *CachedReader
	client *Client
	cache  *QueryCache
	filter schedule.Filter
	logger *zap.Logger

	// writeMu serializes mutations so a rollback never clobbers a later change.
	writeMu sync.Mutex
	mu      sync.RWMutex
	items   []schedule.Assignment
}

func NewBoard(client *Client, cache *QueryCache, filter schedule.Filter, logger ...*zap.Logger) *Board {
	l := zap.L().Named("schedule.board")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.board")
	}
	return &Board{
		reader: NewCachedReader(client, cache),
		client: client,
		cache:  cache,
		filter: filter,
		logger: l,
	}
}

// Load replaces the local list with the server's, going through the cache.
// It waits for a mutation in progress so a rollback cannot overwrite fresher rows.
func (b *Board) Load(ctx context.Context) error {
	b.writeMu.Lock()
	defer b.writeMu.Unlock()

	rows, err := b.reader.Assignments(ctx, b.filter)
	if err != nil {
		return err
	}
	b.mu.Lock()
	b.items = append([]schedule.Assignment(nil), rows...)
	b.mu.Unlock()
	return nil
}

// Assignments returns a copy of the current list, speculative changes included.
func (b *Board) Assignments() []schedule.Assignment {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]schedule.Assignment(nil), b.items...)
}

func (b *Board) Assign(ctx context.Context, a schedule.Assignment) (schedule.EmployeeScheduleResponse, error) {
	b.writeMu.Lock()
	defer b.writeMu.Unlock()

	snapshot := b.apply(func(items []schedule.Assignment) []schedule.Assignment {
		return append(items, a)
	})

	resp, err := b.client.Assign(ctx, schedule.AssignRequest{
		ShiftDate:  a.ShiftDate,
		LocationID: a.LocationID,
		EmployeeID: a.EmployeeID,
	})
	if err != nil {
		b.restore(snapshot)
		b.logger.Info("assign rolled back",
			zap.String("shift_date", a.ShiftDate),
			zap.String("employee_id", a.EmployeeID),
			zap.Error(err),
		)
		return schedule.EmployeeScheduleResponse{}, err
	}
	b.cache.Invalidate()
	return resp, nil
}

func (b *Board) Unassign(ctx context.Context, a schedule.Assignment) (schedule.UnassignResponse, error) {
	b.writeMu.Lock()
	defer b.writeMu.Unlock()

	snapshot := b.apply(func(items []schedule.Assignment) []schedule.Assignment {
		out := items[:0]
		for _, it := range items {
			if it.ShiftDate == a.ShiftDate && it.LocationID == a.LocationID && it.EmployeeID == a.EmployeeID {
				continue
			}
			out = append(out, it)
		}
		return out
	})

	resp, err := b.client.Unassign(ctx, schedule.UnassignRequest{
		ShiftDate:  a.ShiftDate,
		LocationID: a.LocationID,
		EmployeeID: a.EmployeeID,
	})
	if err != nil {
		b.restore(snapshot)
		b.logger.Info("unassign rolled back",
			zap.String("shift_date", a.ShiftDate),
			zap.String("employee_id", a.EmployeeID),
			zap.Error(err),
		)
		return schedule.UnassignResponse{}, err
	}
	b.cache.Invalidate()
	return resp, nil
}

// apply swaps in the speculative list and returns the previous one.
func (b *Board) apply(change func([]schedule.Assignment) []schedule.Assignment) []schedule.Assignment {
	b.mu.Lock()
	defer b.mu.Unlock()
	snapshot := append([]schedule.Assignment(nil), b.items...)
	b.items = change(append([]schedule.Assignment(nil), b.items...))
	return snapshot
}

func (b *Board) restore(snapshot []schedule.Assignment) {
	b.mu.Lock()
	b.items = snapshot
	b.mu.Unlock()
}

// IsConflict reports whether err means the server already holds a different
// state than the board assumed.
func IsConflict(err error) bool {
	return errors.Is(err, ErrDuplicateAssignment) || errors.Is(err, ErrShiftNotFound)
}
