package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config is the full surface of one report run. Defaults can come from the
// environment (cleanenv tags); command-line flags override them. The effective
// config is dumped as JSON next to the report so a run is reproducible.
type Config struct {
	Dir               string    `json:"dir" env:"SOLRQSTAT_DIR" env-default:"."`
	Out               string    `json:"out" env:"SOLRQSTAT_OUT" env-default:"qtime_report.csv"`
	Collection        string    `json:"collection" env:"SOLRQSTAT_COLLECTION"`
	NameFields        []string  `json:"name_fields" env:"SOLRQSTAT_NAME_FIELDS" env-default:"FST_NM,LAST_NAME"`
	RequireWildcard   bool      `json:"require_wildcard" env:"SOLRQSTAT_REQUIRE_WILDCARD" env-default:"true"`
	PreserveNameField bool      `json:"preserve_name_field" env:"SOLRQSTAT_PRESERVE_NAME_FIELD" env-default:"true"`
	GroupByQuery      bool      `json:"group_by_query" env:"SOLRQSTAT_GROUP_BY_QUERY" env-default:"true"`
	Workers           int       `json:"workers" env:"SOLRQSTAT_WORKERS" env-default:"1"`
	StartTime         time.Time `json:"start_time"`
	FinishTime        time.Time `json:"finish_time"`
}

// sidecar returns a path next to Out, e.g. qtime_report_quantiles.csv.
func (c *Config) sidecar(suffix string) string {
	base := filepath.Base(c.Out)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(c.Out), base+suffix)
}

func (c *Config) Write() error {
	b, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return err
	}
	cFile, err := os.Create(c.sidecar("_config.json"))
	if err != nil {
		return err
	}
	if _, err := cFile.Write(b); err != nil {
		return err
	}
	return cFile.Close()
}
