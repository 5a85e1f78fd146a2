package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ColumnMapConfig はcolumn_map.yamlの構造を定義
//
//	columns:
//	  "final location": location
//	  "total_sales - igr": price
type ColumnMapConfig struct {
	Columns map[string]string `yaml:"columns"`
}

// DefaultColumnAliases は元データ (Sample_data.xlsx) の列名から標準列名への対応表です。
func DefaultColumnAliases() map[string]string {
	return map[string]string{
		"final location":    "location",
		"year":              "year",
		"total_sales - igr": "price",
		"total sold - igr":  "demand",
		"total units":       "supply",
	}
}

// LoadColumnAliases returns the default aliases merged with the ones from path.
// An empty path yields the defaults.
func LoadColumnAliases(path string) (map[string]string, error) {
	aliases := DefaultColumnAliases()
	if path == "" {
		return aliases, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("列マッピング設定ファイルの読み込みに失敗: %w", err)
	}

	var cfg ColumnMapConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("YAMLのパースに失敗: %w", err)
	}

	for from, to := range cfg.Columns {
		from = strings.ToLower(strings.TrimSpace(from))
		to = strings.ToLower(strings.TrimSpace(to))
		if from == "" || to == "" {
			return nil, fmt.Errorf("invalid column mapping %q -> %q", from, to)
		}
		aliases[from] = to
	}
	return aliases, nil
}
