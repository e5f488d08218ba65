package common

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/wallfacer-web/nonfiction-reader/pkg/fetcher"
)

// LoadSource resolves the document text and title from the --file, --url,
// or --text flags. Exactly one source must be given; --title overrides the
// derived title.
func LoadSource(c *cli.Context) (text, title string, err error) {
	set := 0
	for _, flag := range []string{"file", "url", "text"} {
		if c.IsSet(flag) {
			set++
		}
	}
	if set != 1 {
		return "", "", fmt.Errorf("exactly one of --file, --url, or --text is required")
	}

	switch {
	case c.IsSet("file"):
		path := c.String("file")
		text, err = ReadTextFile(path)
		if err != nil {
			return "", "", err
		}
		title = TitleFromPath(path)
	case c.IsSet("url"):
		article, ferr := fetcher.NewFetcher().FetchArticle(c.String("url"))
		if ferr != nil {
			return "", "", ferr
		}
		text = article.Text
		title = article.Title
		if title == "" {
			title = c.String("url")
		}
	default:
		text = c.String("text")
		title = "Untitled text"
	}

	if c.IsSet("title") {
		title = c.String("title")
	}
	return text, title, nil
}
