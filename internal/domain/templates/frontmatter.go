package templates

import (
	"strings"

	"github.com/goccy/go-yaml"
)

const (
	frontMatterOpen  = "---\n"
	frontMatterClose = "\n---\n"
)

// splitFrontMatter returns the YAML block and the body after it.
// ok is false when content has no complete front matter block.
func splitFrontMatter(content string) (block, body string, ok bool) {
	if !strings.HasPrefix(content, frontMatterOpen) {
		return "", content, false
	}
	end := strings.Index(content[len(frontMatterOpen):], frontMatterClose)
	if end < 0 {
		return "", content, false
	}
	end += len(frontMatterOpen)
	return content[len(frontMatterOpen):end], content[end+len(frontMatterClose):], true
}

type frontMatter struct {
	Order *int `yaml:"order"`
}

// parseOrder returns the order from content's front matter, or nil when
// there is none or it does not parse
func parseOrder(content string) *int {
	block, _, ok := splitFrontMatter(content)
	if !ok {
		return nil
	}
	var fm frontMatter
	if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
		return nil
	}
	return fm.Order
}

// withOrder sets order in content's front matter, keeping other keys and
// their order. Content without a parseable block gets a new one prepended.
func withOrder(content string, order int) (string, error) {
	var items yaml.MapSlice

	body := content
	if block, rest, ok := splitFrontMatter(content); ok {
		if err := yaml.Unmarshal([]byte(block), &items); err == nil {
			body = rest
		} else {
			items = nil
		}
	}

	replaced := false
	for i := range items {
		if key, _ := items[i].Key.(string); key == "order" {
			items[i].Value = order
			replaced = true
		}
	}
	if !replaced {
		items = append(items, yaml.MapItem{Key: "order", Value: order})
	}

	out, err := yaml.Marshal(items)
	if err != nil {
		return "", err
	}
	yamlText := string(out)
	if !strings.HasSuffix(yamlText, "\n") {
		yamlText += "\n"
	}
	return frontMatterOpen + yamlText + "---\n" + body, nil
}
