package probe

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// LoadSchema reads a YAML file of the form
//
//	tables: [profiles, budgets]
//	columns:
//	  - table: budgets
//	    columns: [id, amount]
//
// An empty path or a missing file falls back to DefaultSchema. Sections the
// file leaves out keep their defaults.
func LoadSchema(path string) (Schema, error) {
	s := DefaultSchema()
	if strings.TrimSpace(path) == "" {
		return s, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return Schema{}, fmt.Errorf("load schema checks %s: %w", path, err)
	}

	var override Schema
	if err := k.Unmarshal("", &override); err != nil {
		return Schema{}, fmt.Errorf("parse schema checks %s: %w", path, err)
	}
	if k.Exists("tables") {
		s.Tables = override.Tables
	}
	if k.Exists("columns") {
		s.Columns = override.Columns
	}
	for i, c := range s.Columns {
		if c.Table == "" || len(c.Columns) == 0 {
			return Schema{}, fmt.Errorf("schema checks %s: column check %d needs a table and columns", path, i)
		}
	}
	return s, nil
}
