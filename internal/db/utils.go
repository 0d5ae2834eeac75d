package db

import (
	"fmt"
	"strconv"

	dbpkg "github.com/dtnitsch/skillshell/pkg/db"
	"github.com/urfave/cli/v2"
)

// GetBuildIDOrLatest returns the build ID from args, or the latest build if not provided
func GetBuildIDOrLatest(c *cli.Context, database *dbpkg.DB) (int64, error) {
	if c.NArg() == 0 {
		builds, err := database.ListBuilds(1)
		if err != nil {
			return 0, fmt.Errorf("failed to get latest build: %w", err)
		}
		if len(builds) == 0 {
			return 0, fmt.Errorf("no builds found. Run 'skillshell build' first")
		}
		return builds[0].BuildID, nil
	}

	return ParseBuildID(c.Args().First())
}

// ParseBuildID parses a positive build ID argument
func ParseBuildID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid build ID: %s", arg)
	}
	return id, nil
}
