package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	if fields == nil {
		fields = map[string]any{}
	}
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	r.fields = append(r.fields, copied)
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "blog.test")
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
	logger = logger.WithContext(context.Background())
	logger = WithFields(logger, map[string]any{"foo": "bar"})
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected WithFields to keep the noop logger, got %T", logger)
	}
	logger.Debug("noop")
}

func TestModuleLoggerUsesProviderAndAnnotatesFields(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	logger := ModuleLogger(provider, postsModule)

	if len(provider.requested) != 1 || provider.requested[0] != postsModule {
		t.Fatalf("expected module %s, got %v", postsModule, provider.requested)
	}

	if len(rec.fields) != 1 {
		t.Fatalf("expected module fields to be applied once, got %d", len(rec.fields))
	}

	if got, ok := rec.fields[0]["module"]; !ok || got != postsModule {
		t.Fatalf("expected module field %s, got %v", postsModule, rec.fields[0]["module"])
	}

	logger.Info("with provider")
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = ModuleLogger(provider, "")

	if len(provider.requested) != 1 || provider.requested[0] != rootModule {
		t.Fatalf("expected default module %s, got %v", rootModule, provider.requested)
	}
	if rec.fields[0]["module"] != rootModule {
		t.Fatalf("expected module field %s, got %v", rootModule, rec.fields[0]["module"])
	}
}

func TestFrontMatterLoggerRequestsFrontMatterModule(t *testing.T) {
	provider := &stubProvider{logger: &recordingLogger{}}
	_ = FrontMatterLogger(provider)
	if len(provider.requested) == 0 || provider.requested[0] != frontmatterModule {
		t.Fatalf("expected frontmatter module request, got %v", provider.requested)
	}
}

func TestCLILoggerRequestsCLIModule(t *testing.T) {
	provider := &stubProvider{logger: &recordingLogger{}}
	_ = CLILogger(provider)
	if len(provider.requested) == 0 || provider.requested[0] != cliModule {
		t.Fatalf("expected cli module request, got %v", provider.requested)
	}
}

func TestWithDocumentContextSkipsEmptyValues(t *testing.T) {
	rec := &recordingLogger{}

	_ = WithDocumentContext(rec, " blog/design_patterns/builder.md ", "", "design-patterns-builder")

	if len(rec.fields) != 1 {
		t.Fatalf("expected one WithFields call, got %d", len(rec.fields))
	}
	fields := rec.fields[0]
	if fields[fieldDocumentID] != "blog/design_patterns/builder.md" {
		t.Fatalf("expected trimmed document id, got %v", fields[fieldDocumentID])
	}
	if _, ok := fields[fieldEngine]; ok {
		t.Fatalf("expected empty engine to be skipped, got %v", fields)
	}
	if fields[fieldSlug] != "design-patterns-builder" {
		t.Fatalf("expected slug field, got %v", fields[fieldSlug])
	}
}

func TestContextFieldsMerge(t *testing.T) {
	ctx := ContextWithFields(context.Background(), map[string]any{"a": 1})
	ctx = ContextWithFields(ctx, map[string]any{"b": 2})

	fields := ContextFields(ctx)
	if fields["a"] != 1 || fields["b"] != 2 {
		t.Fatalf("expected merged context fields, got %v", fields)
	}

	fields["a"] = 99
	if ContextFields(ctx)["a"] != 1 {
		t.Fatalf("expected ContextFields to return a copy")
	}
}
