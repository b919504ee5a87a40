// Package docs holds the user documentation of etfa, as topics embedded in
// the binary.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed *.md
var docs embed.FS

// readme is the topic listing the others, it is not listed itself.
const readme = "readme"

// Topic returns the content of a documentation topic.
func Topic(name string) (string, error) {
	content, err := docs.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// Topics returns the content of several topics concatenated together. The
// topic "*" stands for all of them.
func Topics(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		expanded := []string{name}
		if name == "*" {
			all, err := All()
			if err != nil {
				return "", err
			}
			expanded = all
		}
		for _, n := range expanded {
			content, err := Topic(n)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// All returns the names of the available topics, sorted.
func All() ([]string, error) {
	files, err := fs.Glob(docs, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, f := range files {
		if name := strings.TrimSuffix(path.Base(f), ".md"); name != readme {
			topics = append(topics, name)
		}
	}
	slices.Sort(topics)
	return topics, nil
}
