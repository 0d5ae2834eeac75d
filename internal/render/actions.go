package render

import (
	"bufio"
	"os"

	"github.com/urfave/cli/v2"
	g "maragu.dev/gomponents"

	"github.com/dtnitsch/skillshell/internal/common"
	"github.com/dtnitsch/skillshell/pkg/pages"
	"github.com/dtnitsch/skillshell/pkg/shell"
)

// RenderAction writes one document to stdout. Without --page the body is empty.
func RenderAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	var body g.Node
	if c.IsSet("page") {
		page, err := pages.LoadFile(c.String("page"))
		if err != nil {
			return err
		}
		body = page.Body()
	}

	w := bufio.NewWriter(os.Stdout)
	if err := shell.Render(w, cfg.SiteMetadata(), body); err != nil {
		logger.Error("failed to render document", "error", err)
		return err
	}
	return w.Flush()
}

// MetadataAction prints the effective metadata record as YAML.
func MetadataAction(c *cli.Context) error {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	return common.PrintYAML(cfg.SiteMetadata())
}
