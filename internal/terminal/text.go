package terminal

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLToText flattens rendered markdown into plain text for a terminal,
// keeping enough structure (headings, list bullets, code blocks) to read.
func HTMLToText(markup string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", err
	}

	var blocks []string
	doc.Find("body").Children().Each(func(_ int, s *goquery.Selection) {
		if text := blockText(s); text != "" {
			blocks = append(blocks, text)
		}
	})
	return strings.Join(blocks, "\n\n"), nil
}

func blockText(s *goquery.Selection) string {
	switch name := goquery.NodeName(s); name {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(name[1] - '0')
		return strings.Repeat("#", level) + " " + strings.TrimSpace(s.Text())
	case "ul", "ol":
		var items []string
		s.ChildrenFiltered("li").Each(func(i int, li *goquery.Selection) {
			bullet := "-"
			if name == "ol" {
				bullet = fmt.Sprintf("%d.", i+1)
			}
			items = append(items, bullet+" "+collapse(li.Text()))
		})
		return strings.Join(items, "\n")
	case "pre":
		return strings.TrimRight(s.Text(), "\n")
	case "blockquote":
		lines := strings.Split(strings.TrimSpace(s.Text()), "\n")
		for i, line := range lines {
			lines[i] = "> " + line
		}
		return strings.Join(lines, "\n")
	case "hr":
		return "----"
	default:
		return strings.TrimSpace(s.Text())
	}
}

// nested list markup leaves newlines inside items
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
