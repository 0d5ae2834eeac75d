package common

import (
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/skillshell/models"
)

// LoadConfig reads the --config file. The default file is optional; a file
// named explicitly on the command line must exist.
func LoadConfig(c *cli.Context) (*models.Config, error) {
	path := c.String("config")
	if path == "" {
		path = models.DefaultConfigFile
	}
	return models.LoadConfig(path, c.IsSet("config"))
}

// StringFlagOr returns the named flag when set, otherwise fallback.
func StringFlagOr(c *cli.Context, name, fallback string) string {
	if c.IsSet(name) {
		return c.String(name)
	}
	return fallback
}
