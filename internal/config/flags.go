package config

import (
	"flag"
	"os"

	"github.com/cheaguirre/nexuscards/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the local SQLite database file
//	-u string   base URL of the remote catalog API
//	-n int      catalog page size
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-u", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local database file")
	fs.StringVar(&cfg.CatalogBaseURL, "u", cfg.CatalogBaseURL, "base URL of the catalog API")
	fs.IntVar(&cfg.CatalogPageSize, "n", cfg.CatalogPageSize, "catalog page size")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
