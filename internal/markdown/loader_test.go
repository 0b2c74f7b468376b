package markdown

import (
	"context"
	"os"
	"testing"
	"testing/fstest"
)

func TestLoaderDocuments_Recursive(t *testing.T) {
	loader := NewLoader(os.DirFS("testdata/site"), LoaderConfig{Recursive: true})

	docs, err := loader.Documents(context.Background())
	if err != nil {
		t.Fatalf("Documents: %v", err)
	}

	want := []string{
		"blog/archive/old.md",
		"blog/patterns/builder.md",
		"index.md",
	}
	if len(docs) != len(want) {
		t.Fatalf("expected %d documents, got %#v", len(want), docs)
	}
	for i, id := range want {
		if docs[i].ID != id {
			t.Fatalf("document %d: want %s, got %s", i, id, docs[i].ID)
		}
		if docs[i].Raw == "" {
			t.Fatalf("document %s has empty raw text", id)
		}
	}
}

func TestLoaderDocuments_NonRecursive(t *testing.T) {
	loader := NewLoader(os.DirFS("testdata/site"), LoaderConfig{Root: "blog/patterns"})

	docs, err := loader.Documents(context.Background())
	if err != nil {
		t.Fatalf("Documents: %v", err)
	}
	if len(docs) != 1 || docs[0].ID != "blog/patterns/builder.md" {
		t.Fatalf("unexpected documents %#v", docs)
	}
}

func TestLoaderDocuments_Pattern(t *testing.T) {
	filesystem := fstest.MapFS{
		"posts/a.md":       {Data: []byte("a")},
		"posts/b.markdown": {Data: []byte("b")},
		"posts/c.txt":      {Data: []byte("c")},
	}
	loader := NewLoader(filesystem, LoaderConfig{Pattern: "*.markdown", Recursive: true})

	docs, err := loader.Documents(context.Background())
	if err != nil {
		t.Fatalf("Documents: %v", err)
	}
	if len(docs) != 1 || docs[0].ID != "posts/b.markdown" {
		t.Fatalf("unexpected documents %#v", docs)
	}
}

func TestLoaderDocuments_MissingRoot(t *testing.T) {
	loader := NewLoader(fstest.MapFS{}, LoaderConfig{Root: "nope", Recursive: true})

	if _, err := loader.Documents(context.Background()); err == nil {
		t.Fatalf("expected error for missing root")
	}
}

func TestLoaderDocuments_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := NewLoader(os.DirFS("testdata/site"), LoaderConfig{Recursive: true})
	if _, err := loader.Documents(ctx); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestLoaderLoadFile(t *testing.T) {
	loader := NewLoader(os.DirFS("testdata/site"), LoaderConfig{})

	doc, err := loader.LoadFile(context.Background(), "/blog/patterns/builder.md")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if doc.ID != "blog/patterns/builder.md" {
		t.Fatalf("unexpected id %q", doc.ID)
	}
}

func TestLoader_NilContext(t *testing.T) {
	loader := NewLoader(os.DirFS("testdata/site"), LoaderConfig{Recursive: true})
	var ctx context.Context

	docs, err := loader.Documents(ctx)
	if err != nil || len(docs) != 3 {
		t.Fatalf("expected 3 documents with a nil context, got %d, %v", len(docs), err)
	}
	if _, err := loader.LoadFile(ctx, "index.md"); err != nil {
		t.Fatalf("LoadFile with a nil context: %v", err)
	}
}
