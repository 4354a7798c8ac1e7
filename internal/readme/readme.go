package readme

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Reference is an image reference found in a README.
type Reference struct {
	AltText  string
	ImageURL string
}

// CheckBadge reports whether the README.md in dir references the generated
// badge, either by filename or as a shields badge carrying the same label.
// It also returns every image reference found so callers can explain a
// negative answer. A missing README is not an error.
func CheckBadge(dir, badgeFile, label string) (bool, []Reference, error) {
	content, err := os.ReadFile(filepath.Join(dir, "README.md"))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil, nil
		}
		return false, nil, fmt.Errorf("read README.md: %w", err)
	}

	refs := extractImages(content)
	for _, ref := range refs {
		if matchesBadge(ref.ImageURL, badgeFile, label) {
			return true, refs, nil
		}
	}
	return false, refs, nil
}

// extractImages parses the README content and returns every image reference.
func extractImages(content []byte) []Reference {
	var refs []Reference

	// 1. Parse Markdown AST
	md := goldmark.New()
	reader := text.NewReader(content)
	doc := md.Parser().Parse(reader)

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if img, ok := n.(*ast.Image); ok {
			refs = append(refs, Reference{
				AltText:  string(img.Text(content)),
				ImageURL: string(img.Destination),
			})
		}
		return ast.WalkContinue, nil
	})

	// 2. Regex fallback for raw HTML images: <img src="..." alt="...">
	htmlImageRegex := regexp.MustCompile(`<img\s+src="([^"]+)"(?:\s+alt="([^"]*)")?[^>]*>`)
	for _, match := range htmlImageRegex.FindAllSubmatch(content, -1) {
		refs = append(refs, Reference{
			ImageURL: string(match[1]),
			AltText:  string(match[2]),
		})
	}

	return refs
}

func matchesBadge(imageURL, badgeFile, label string) bool {
	if strings.Contains(imageURL, filepath.Base(badgeFile)) {
		return true
	}
	// A shields badge for the same label counts too, whether or not the
	// README links the committed file directly.
	escaped := strings.ReplaceAll(label, " ", "%20")
	return strings.Contains(imageURL, "/badge/") && strings.Contains(imageURL, escaped)
}
