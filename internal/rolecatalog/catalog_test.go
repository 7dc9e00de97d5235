package rolecatalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"go-resto/internal/rolecatalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := rolecatalog.Default()

	assert.Equal(t, 19, c.Len())
	assert.Len(t, c.Required(), 9)

	first := c.Entries()[0]
	assert.Equal(t, rolecatalog.Entry{RoleID: 1, Name: "Restaurant Manager", Required: true}, first)

	e, ok := c.Lookup(11)
	assert.True(t, ok)
	assert.Equal(t, "Bartender", e.Name)
	assert.False(t, e.Required)

	_, ok = c.Lookup(99)
	assert.False(t, ok)
	assert.Equal(t, "", c.Name(99))
}

func TestEntries_ReturnsCopy(t *testing.T) {
	c := rolecatalog.Default()

	entries := c.Entries()
	entries[0].Name = "changed"

	assert.Equal(t, "Restaurant Manager", c.Name(1))
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		entries []rolecatalog.Entry
	}{
		{"empty", nil},
		{"zero id", []rolecatalog.Entry{{RoleID: 0, Name: "X"}}},
		{"blank name", []rolecatalog.Entry{{RoleID: 1, Name: "  "}}},
		{"duplicate", []rolecatalog.Entry{{RoleID: 1, Name: "A"}, {RoleID: 1, Name: "B"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rolecatalog.New(tt.entries)
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses default", func(t *testing.T) {
		c, err := rolecatalog.Load("")
		require.NoError(t, err)
		assert.Equal(t, 19, c.Len())
	})

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "roles.yaml")
		body := "roles:\n" +
			"  - role_id: 1\n    name: Manager\n    required: true\n" +
			"  - role_id: 2\n    name: Chef\n    required: true\n" +
			"  - role_id: 3\n    name: Bartender\n    required: false\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		c, err := rolecatalog.Load(path)

		require.NoError(t, err)
		assert.Equal(t, 3, c.Len())
		assert.Len(t, c.Required(), 2)
		assert.Equal(t, "Chef", c.Name(2))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := rolecatalog.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
