package rolecatalog

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load reads a catalog file (yaml or json) shaped as
//
//	roles:
//	  - role_id: 1
//	    name: Restaurant Manager
//	    required: true
//
// An empty path returns Default.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read role catalog %s: %w", path, err)
	}

	var entries []Entry
	if err := v.UnmarshalKey("roles", &entries); err != nil {
		return nil, fmt.Errorf("decode role catalog %s: %w", path, err)
	}

	return New(entries)
}
