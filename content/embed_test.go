package content

import (
	"io/fs"
	"strings"
	"testing"
)

func TestEmbeddedDocuments(t *testing.T) {
	want := []string{
		"blog/design_patterns/builder.md",
		"blog/design_patterns/factory_method.md",
		"blog/design_patterns/introduction.md",
		"blog/design_patterns/singleton.md",
	}

	for _, name := range want {
		data, err := fs.ReadFile(FS(), name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if !strings.HasPrefix(string(data), "---\n") {
			t.Fatalf("%s does not start with a frontmatter delimiter", name)
		}
	}

	matches, err := fs.Glob(FS(), Root+"/*/*.md")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(matches) != len(want) {
		t.Fatalf("expected %d embedded posts, got %v", len(want), matches)
	}
}

func TestIsValidSlug(t *testing.T) {
	if !IsValidSlug("design-patterns-builder") {
		t.Fatalf("expected kebab-case slug to be valid")
	}
	if IsValidSlug("Design Patterns") {
		t.Fatalf("expected slug with spaces to be invalid")
	}
}
