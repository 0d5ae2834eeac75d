package inspect

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/skillshell/internal/common"
	"github.com/dtnitsch/skillshell/pkg/fetcher"
	inspectpkg "github.com/dtnitsch/skillshell/pkg/inspect"
	"github.com/dtnitsch/skillshell/pkg/storage"
)

// Output is what the inspect command prints.
type Output struct {
	Source   string             `yaml:"source"`
	Report   *inspectpkg.Report `yaml:"report"`
	Problems []string           `yaml:"problems,omitempty"`
}

func InspectAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	if c.NArg() != 1 {
		return cli.Exit("usage: skillshell inspect <file-or-url>", 2)
	}

	arg := common.SanitizeURL(c.Args().First())
	var raw []byte
	var pageURL string

	if common.IsHTTPURL(arg) {
		resp, err := fetcher.NewFetcher().GetHtmlBytes(c.Context, arg)
		if err != nil {
			logger.Error("failed to fetch document", "url", arg, "error", err)
			return err
		}
		if !strings.HasPrefix(resp.ContentType, "text/html") {
			logger.Warn("unexpected content type", "url", arg, "content_type", resp.ContentType)
		}
		raw = resp.Body
		pageURL = resp.FinalURL
	} else {
		data, err := (&storage.Storage{}).ReadFile(arg)
		if err != nil {
			return err
		}
		raw = data
	}

	rep, err := inspectpkg.Document(bytes.NewReader(raw), pageURL)
	if err != nil {
		return err
	}

	out := Output{Source: arg, Report: rep, Problems: rep.Problems()}
	if err := common.PrintYAML(out); err != nil {
		return err
	}

	if len(out.Problems) > 0 {
		fmt.Fprintf(os.Stderr, "%d problem(s) found\n", len(out.Problems))
		return cli.Exit("", 1)
	}
	return nil
}
