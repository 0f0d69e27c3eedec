// Package controller owns the ordered item list and every mutation on it.
//
// A Controller is built once by whatever composes the application and handed
// to the presentation layer. Each applied mutation saves the whole list and
// then asks the View to render it. Everything runs on the caller's goroutine.
package controller

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/idilsaglam/listkeeper/internal/model"
)

// Store is the persistence the controller needs.
type Store interface {
	Load() []model.Item
	Save(items []model.Item) error
}

// View receives the full list after every applied mutation.
type View interface {
	Render(items []model.Item)
}

// ViewFunc adapts a function to View.
type ViewFunc func(items []model.Item)

func (f ViewFunc) Render(items []model.Item) { f(items) }

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Confirmed approves without asking. Callers that already asked use it.
var Confirmed Confirmer = ConfirmFunc(func(string) bool { return true })

// DeletePrompt is the question put to the Confirmer before a delete.
const DeletePrompt = "Are you sure you want to delete this item?"

const noEdit = -1

// Controller maintains the authoritative list and the active-edit target.
type Controller struct {
	store    Store
	view     View
	log      *slog.Logger
	collator *collate.Collator
	ids      *model.IDSource
	now      func() time.Time
	decorate func() bool

	items   []model.Item
	editing int
}

// Option configures a Controller.
type Option func(*Controller)

func WithView(v View) Option { return func(c *Controller) { c.view = v } }

func WithLogger(l *slog.Logger) Option { return func(c *Controller) { c.log = l } }

// WithLocale sorts with the collation rules of tag.
func WithLocale(tag language.Tag) Option {
	return func(c *Controller) { c.collator = collate.New(tag) }
}

// WithCollator sorts with a prepared collator.
func WithCollator(col *collate.Collator) Option { return func(c *Controller) { c.collator = col } }

// WithClock replaces the clock ids are derived from.
func WithClock(now func() time.Time) Option { return func(c *Controller) { c.now = now } }

// WithDecorator replaces the coin flip that sets Item.Decorated.
func WithDecorator(f func() bool) Option { return func(c *Controller) { c.decorate = f } }

// New loads the list from store and returns a controller over it.
func New(store Store, opts ...Option) *Controller {
	c := &Controller{
		store:    store,
		now:      time.Now,
		decorate: func() bool { return rand.IntN(2) == 1 },
		editing:  noEdit,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.collator == nil {
		c.collator = collate.New(language.Und)
	}
	c.items = store.Load()
	if c.items == nil {
		c.items = []model.Item{}
	}
	c.ids = model.NewIDSource(c.now, c.items)
	return c
}

// SetView attaches v after construction. Views that need the controller to
// build themselves use it.
func (c *Controller) SetView(v View) { c.view = v }

// Items returns a copy of the list in display order.
func (c *Controller) Items() []model.Item { return slices.Clone(c.items) }

// Len is the number of items.
func (c *Controller) Len() int { return len(c.items) }

// Add appends a new item built from raw.
func (c *Controller) Add(raw string) (model.Item, error) {
	text, ok := model.NormalizeText(raw)
	if !ok {
		c.log.Debug("add rejected", "len", model.TextLen(text))
		return model.Item{}, errTooShort(text)
	}
	it := model.Item{
		ID:        c.ids.Next(),
		Text:      text,
		Decorated: c.decorate(),
	}
	c.items = append(c.items, it)
	c.log.Info("item added", "id", it.ID, "count", len(c.items))
	return it, c.commit()
}

// Delete removes the item at index once confirm approves. A declined prompt
// is a no-op and reports false.
func (c *Controller) Delete(index int, confirm Confirmer) (bool, error) {
	if err := c.checkIndex(index); err != nil {
		return false, err
	}
	if confirm == nil || !confirm.Confirm(DeletePrompt) {
		c.log.Debug("delete declined", "index", index)
		return false, nil
	}
	id := c.items[index].ID
	c.items = slices.Delete(c.items, index, index+1)
	c.editing = noEdit
	c.log.Info("item deleted", "id", id, "count", len(c.items))
	return true, c.commit()
}

// BeginEdit makes index the active-edit target and returns its text. Any
// earlier pending edit is dropped.
func (c *Controller) BeginEdit(index int) (string, error) {
	if err := c.checkIndex(index); err != nil {
		return "", err
	}
	c.editing = index
	return c.items[index].Text, nil
}

// EditTarget reports the active-edit target, if any.
func (c *Controller) EditTarget() (int, bool) {
	if c.editing == noEdit {
		return 0, false
	}
	return c.editing, true
}

// CommitEdit replaces the target's text. Without an active target it does
// nothing. Invalid text leaves the target active.
func (c *Controller) CommitEdit(raw string) error {
	if c.editing == noEdit {
		return nil
	}
	text, ok := model.NormalizeText(raw)
	if !ok {
		return errTooShort(text)
	}
	i := c.editing
	c.items[i].Text = text
	c.editing = noEdit
	c.log.Info("item edited", "id", c.items[i].ID)
	return c.commit()
}

// CancelEdit clears the active-edit target.
func (c *Controller) CancelEdit() { c.editing = noEdit }

// Sort orders the list by text using the controller's collation. Equal keys
// keep their relative order.
func (c *Controller) Sort() error {
	slices.SortStableFunc(c.items, func(a, b model.Item) int {
		return c.collator.CompareString(a.Text, b.Text)
	})
	c.editing = noEdit
	c.log.Info("items sorted", "count", len(c.items))
	return c.commit()
}

// Reorder moves the item at from so that it ends up at index to. Both are
// positions in the current list; to is where the item lands once it has been
// taken out. from == to changes nothing and saves nothing.
func (c *Controller) Reorder(from, to int) (bool, error) {
	if err := c.checkIndex(from); err != nil {
		return false, err
	}
	if err := c.checkIndex(to); err != nil {
		return false, err
	}
	if from == to {
		return false, nil
	}
	it := c.items[from]
	c.items = slices.Delete(c.items, from, from+1)
	c.items = slices.Insert(c.items, to, it)
	c.editing = noEdit
	c.log.Info("item moved", "id", it.ID, "from", from, "to", to)
	return true, c.commit()
}

func (c *Controller) checkIndex(i int) error {
	if i < 0 || i >= len(c.items) {
		return &IndexError{Index: i, Len: len(c.items)}
	}
	return nil
}

// commit persists the list and re-renders. A failed save keeps the in-memory
// change; the view still shows it so the screen matches the controller.
func (c *Controller) commit() error {
	err := c.store.Save(c.items)
	if err != nil {
		c.log.Error("persist items", "err", err)
		err = fmt.Errorf("persist: %w", err)
	}
	if c.view != nil {
		c.view.Render(c.Items())
	}
	return err
}
