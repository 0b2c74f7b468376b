package markdown

import "testing"

func TestOutlineExtractor_Extract(t *testing.T) {
	extractor := NewOutlineExtractor(nil)

	outline := extractor.Extract("## Intro\n\n# The *Real* Title\n\nFirst paragraph with `code` inside\nand a [link](https://example.com).\n\nSecond paragraph.")

	if outline.Heading != "The Real Title" {
		t.Fatalf("unexpected heading %q", outline.Heading)
	}
	if outline.Paragraph != "First paragraph with code inside and a link." {
		t.Fatalf("unexpected paragraph %q", outline.Paragraph)
	}
}

func TestOutlineExtractor_NoHeading(t *testing.T) {
	outline := NewOutlineExtractor([]string{"table", "bogus"}).Extract("Only a paragraph.")

	if outline.Heading != "" {
		t.Fatalf("expected no heading, got %q", outline.Heading)
	}
	if outline.Paragraph != "Only a paragraph." {
		t.Fatalf("unexpected paragraph %q", outline.Paragraph)
	}
}

func TestOutlineExtractor_Empty(t *testing.T) {
	outline := NewOutlineExtractor(nil).Extract("   \n")
	if outline.Heading != "" || outline.Paragraph != "" {
		t.Fatalf("expected empty outline, got %#v", outline)
	}
}

func TestCollectExtensions(t *testing.T) {
	if got := collectExtensions(nil); len(got) != 1 {
		t.Fatalf("expected GFM default, got %d extensions", len(got))
	}
	if got := collectExtensions([]string{"table", "TABLE", "footnote", "unknown"}); len(got) != 2 {
		t.Fatalf("expected deduplicated known extensions, got %d", len(got))
	}
}
