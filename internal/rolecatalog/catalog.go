// Package rolecatalog holds the fixed table of restaurant job roles and which
// of them must be staffed on every shift day.
package rolecatalog

import (
	"errors"
	"fmt"
	"strings"
)

type Entry struct {
	RoleID   int    `json:"role_id" mapstructure:"role_id"`
	Name     string `json:"name" mapstructure:"name"`
	Required bool   `json:"required" mapstructure:"required"`
}

// Catalog is immutable after construction.
type Catalog struct {
	entries []Entry
	byID    map[int]int
}

var ErrEmptyCatalog = errors.New("role catalog is empty")

var defaultEntries = []Entry{
	{RoleID: 1, Name: "Restaurant Manager", Required: true},
	{RoleID: 2, Name: "Assistant Manager", Required: false},
	{RoleID: 3, Name: "Head Chef", Required: true},
	{RoleID: 4, Name: "Sous Chef", Required: false},
	{RoleID: 5, Name: "Line Cook", Required: true},
	{RoleID: 6, Name: "Pastry Chef", Required: false},
	{RoleID: 7, Name: "Prep Cook", Required: true},
	{RoleID: 8, Name: "Dishwasher", Required: true},
	{RoleID: 9, Name: "Waiter/Waitress", Required: true},
	{RoleID: 10, Name: "Host/Hostess", Required: true},
	{RoleID: 11, Name: "Bartender", Required: false},
	{RoleID: 12, Name: "Barback", Required: false},
	{RoleID: 13, Name: "Cashier", Required: true},
	{RoleID: 14, Name: "Cleaner", Required: true},
	{RoleID: 15, Name: "Sommelier", Required: false},
	{RoleID: 16, Name: "Food Runner", Required: false},
	{RoleID: 17, Name: "Busser", Required: false},
	{RoleID: 18, Name: "Delivery Driver", Required: false},
	{RoleID: 19, Name: "Security Guard", Required: false},
}

// Default returns the standard 19 role restaurant catalog.
func Default() *Catalog {
	c, err := New(defaultEntries)
	if err != nil {
		panic(err)
	}
	return c
}

// New validates entries and copies them; order is preserved and is significant.
func New(entries []Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		byID:    make(map[int]int, len(entries)),
	}
	for i, e := range entries {
		if e.RoleID < 1 {
			return nil, fmt.Errorf("role catalog entry %d: role_id must be positive", i)
		}
		e.Name = strings.TrimSpace(e.Name)
		if e.Name == "" {
			return nil, fmt.Errorf("role catalog entry %d: name is required", i)
		}
		if _, dup := c.byID[e.RoleID]; dup {
			return nil, fmt.Errorf("role catalog entry %d: duplicate role_id %d", i, e.RoleID)
		}
		c.byID[e.RoleID] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy in catalog order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Catalog) Required() []Entry {
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		if e.Required {
			out = append(out, e)
		}
	}
	return out
}

func (c *Catalog) Lookup(roleID int) (Entry, bool) {
	i, ok := c.byID[roleID]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

func (c *Catalog) Name(roleID int) string {
	if e, ok := c.Lookup(roleID); ok {
		return e.Name
	}
	return ""
}
