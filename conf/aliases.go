package conf

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// The alias table maps free-form class labels to workbook sheet names,
// replacing guesswork with configuration decided at setup time:
//
//	[aliases]
//	"י2" = "יא 2"
//	"שמיניסטים" = "כיתה ח1"
//
// The fuzzy resolver remains the fallback for labels the table does not
// cover.
type aliasFile struct {
	Aliases map[string]string `toml:"aliases"`
}

// ReadAliasTable loads the TOML alias table. An empty path yields an
// empty table, not an error.
func ReadAliasTable(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading alias table %s: %w", path, err)
	}

	var parsed aliasFile
	if err := toml.Unmarshal(content, &parsed); err != nil {
		return nil, fmt.Errorf("error parsing alias table %s: %w", path, err)
	}
	if parsed.Aliases == nil {
		parsed.Aliases = map[string]string{}
	}
	return parsed.Aliases, nil
}
