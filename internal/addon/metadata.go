package addon

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/devlyn/cli/internal/util"
)

const frontmatterDelim = "---"

// Metadata is the name and description of a skill.
type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ParseMetadata extracts the skill metadata from a SKILL.md document.
//
// YAML frontmatter wins when present and valid. Otherwise the name falls
// back to dirName and the description to the first body line that is not a
// heading. Names are slugged so they are safe to use as directory names.
func ParseMetadata(content, dirName string) Metadata {
	front, body := splitFrontmatter(content)

	var meta Metadata
	if front != "" {
		if err := yaml.Unmarshal([]byte(front), &meta); err != nil {
			meta = Metadata{}
		}
	}

	meta.Name = util.Slug(meta.Name)
	if meta.Name == "" {
		meta.Name = util.Slug(dirName)
	}

	meta.Description = strings.Join(strings.Fields(meta.Description), " ")
	if meta.Description == "" {
		meta.Description = firstParagraphLine(body)
	}
	return meta
}

// splitFrontmatter separates a leading "---" delimited block from the rest
// of the document. Without a closed block the whole content is the body.
func splitFrontmatter(content string) (front, body string) {
	content = strings.TrimPrefix(content, "\ufeff")
	content = strings.ReplaceAll(content, "\r\n", "\n")

	if !strings.HasPrefix(content, frontmatterDelim+"\n") {
		return "", content
	}
	rest := content[len(frontmatterDelim)+1:]

	lines := strings.SplitAfter(rest, "\n")
	offset := 0
	for _, line := range lines {
		if strings.TrimRight(line, "\n") == frontmatterDelim {
			return rest[:offset], rest[offset+len(line):]
		}
		offset += len(line)
	}
	return "", content
}

func firstParagraphLine(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == frontmatterDelim || strings.HasPrefix(line, "#") {
			continue
		}
		return line
	}
	return ""
}
