package db

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/skillshell/internal/common"
	dbpkg "github.com/dtnitsch/skillshell/pkg/db"
)

func openFromConfig(c *cli.Context) (*dbpkg.DB, error) {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return nil, err
	}
	database, err := dbpkg.Open(common.StringFlagOr(c, "db", cfg.Database))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

func HistoryAction(c *cli.Context) error {
	database, err := openFromConfig(c)
	if err != nil {
		return err
	}
	defer database.Close()

	builds, err := database.ListBuilds(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list builds: %w", err)
	}

	if len(builds) == 0 {
		fmt.Println("No builds found")
		return nil
	}

	fmt.Printf("%-6s %-20s %-7s %-7s %-10s %-14s %-30s\n",
		"ID", "Created", "Pages", "Failed", "Duration", "Metadata", "Output Dir")
	fmt.Println(strings.Repeat("-", 100))

	for _, b := range builds {
		fmt.Printf("%-6d %-20s %-7d %-7d %-10s %-14s %-30s\n",
			b.BuildID,
			b.CreatedAt.Format("2006-01-02 15:04:05"),
			b.PageCount,
			b.FailedCount,
			b.Duration.String(),
			shortHash(b.MetadataHash),
			b.OutputDir,
		)
	}

	fmt.Printf("\nTotal: %d builds\n", len(builds))
	fmt.Printf("\nTip: Use 'skillshell history show <id>' to see pages\n")

	return nil
}

// ShowAction prints the pages of one build
func ShowAction(c *cli.Context) error {
	database, err := openFromConfig(c)
	if err != nil {
		return err
	}
	defer database.Close()

	buildID, err := GetBuildIDOrLatest(c, database)
	if err != nil {
		return err
	}

	build, err := database.GetBuildByID(buildID)
	if err != nil {
		return err
	}
	pages, err := database.GetBuildPages(buildID)
	if err != nil {
		return err
	}

	fmt.Printf("Build %d\n", build.BuildID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Created:     %s\n", build.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Output dir:  %s\n", build.OutputDir)
	fmt.Printf("Pages:       %d (%d failed)\n", build.PageCount, build.FailedCount)
	fmt.Printf("Metadata:    %s\n", build.MetadataHash)
	fmt.Printf("Duration:    %s\n\n", build.Duration)

	fmt.Printf("%-8s %-24s %-8s %-9s %-14s %s\n", "Status", "Route", "Lang", "Bytes", "Hash", "File")
	fmt.Println(strings.Repeat("-", 100))
	for _, p := range pages {
		file := p.FilePath
		if p.Status != "success" {
			file = p.Error
		}
		fmt.Printf("%-8s %-24s %-8s %-9d %-14s %s\n",
			p.Status, p.Route, dash(p.DetectedLanguage), p.SizeBytes, shortHash(p.ContentHash), file)
	}

	return nil
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return dash(h)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
