package resource

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"sairajtravels/internal/api"
	"sairajtravels/pkg/logger"
)

// Controller manages one backend collection. Items is always a point-in-time
// snapshot of the last successful GET: every mutation refetches the whole
// collection on success instead of merging locally, so displayed state never
// drifts from confirmed server state. A failed mutation leaves the snapshot
// untouched.
type Controller[T any] struct {
	client *api.Client
	path   string
	log    *logger.Logger

	mu      sync.RWMutex
	items   []T
	loaded  bool
	lastErr error
}

func NewController[T any](client *api.Client, path string, log *logger.Logger) *Controller[T] {
	return &Controller[T]{
		client: client,
		path:   path,
		log:    log,
	}
}

// WithClient rebinds the controller to another client, typically one carrying
// a session token. The snapshot is shared state and stays as-is.
func (c *Controller[T]) WithClient(client *api.Client) *Controller[T] {
	clone := &Controller[T]{
		client: client,
		path:   c.path,
		log:    c.log,
	}
	return clone
}

func (c *Controller[T]) Path() string { return c.path }

// Reload issues a fresh GET and replaces the snapshot wholesale.
func (c *Controller[T]) Reload(ctx context.Context) error {
	var fetched []T
	if err := c.client.Get(ctx, c.path, &fetched); err != nil {
		c.mu.Lock()
		c.lastErr = err
		c.mu.Unlock()
		if c.log != nil {
			c.log.WithResource(c.path).WithError(err).Warn("Reload failed")
		}
		return err
	}

	c.mu.Lock()
	c.items = fetched
	c.loaded = true
	c.lastErr = nil
	c.mu.Unlock()
	return nil
}

// Items returns a copy of the current snapshot.
func (c *Controller[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return items
}

// Loaded reports whether at least one GET has succeeded.
func (c *Controller[T]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// LastError returns the error from the most recent failed reload, if any.
func (c *Controller[T]) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

func (c *Controller[T]) Create(ctx context.Context, data interface{}) error {
	if err := c.client.Post(ctx, c.path, data, nil); err != nil {
		return err
	}
	return c.Reload(ctx)
}

func (c *Controller[T]) Update(ctx context.Context, id int, data interface{}) error {
	if err := c.client.Put(ctx, c.itemPath(id), data, nil); err != nil {
		return err
	}
	return c.Reload(ctx)
}

func (c *Controller[T]) Remove(ctx context.Context, id int) error {
	if err := c.client.Delete(ctx, c.itemPath(id)); err != nil {
		return err
	}
	return c.Reload(ctx)
}

// Toggle flips an item's active flag through the resource's toggle action.
func (c *Controller[T]) Toggle(ctx context.Context, id int) error {
	if err := c.client.Patch(ctx, c.itemPath(id)+"/toggle", nil, nil); err != nil {
		return err
	}
	return c.Reload(ctx)
}

// Act performs a named item action (e.g. "activate", "deactivate") and
// refetches on success.
func (c *Controller[T]) Act(ctx context.Context, id int, action string) error {
	if err := c.client.Patch(ctx, c.itemPath(id)+"/"+action, nil, nil); err != nil {
		return err
	}
	return c.Reload(ctx)
}

// Filter evaluates a predicate over the snapshot. It never triggers a
// fetch; search is purely client-side.
func (c *Controller[T]) Filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	matched := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if pred(item) {
			matched = append(matched, item)
		}
	}
	return matched
}

func (c *Controller[T]) itemPath(id int) string {
	return fmt.Sprintf("%s/%d", c.path, id)
}

// MatchesQuery reports whether any of the given fields contains query,
// case-insensitive. An empty query matches everything.
func MatchesQuery(query string, fields ...string) bool {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
