package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func newBufLogger(lvl slog.Level) (*SlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	h := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: lvl})
	return NewSlogLogger(slog.New(h)), buf
}

func TestSlogLogger_Levels(t *testing.T) {
	ctx := context.Background()
	l, buf := newBufLogger(slog.LevelDebug)

	l.Debug(ctx, "dbg")
	l.Info(ctx, "inf")
	l.Warn(ctx, "wrn")
	l.Error(ctx, "err")

	out := buf.String()
	for _, want := range []string{`"msg":"dbg"`, `"msg":"inf"`, `"msg":"wrn"`, `"msg":"err"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}

func TestSlogLogger_With(t *testing.T) {
	ctx := context.Background()
	l, buf := newBufLogger(slog.LevelInfo)

	child := l.With("module", "store")
	child.Info(ctx, "loaded", "count", 5)

	out := buf.String()
	if !strings.Contains(out, `"module":"store"`) {
		t.Errorf("child logger did not carry bound attrs: %s", out)
	}
	if !strings.Contains(out, `"count":5`) {
		t.Errorf("call-site attrs missing: %s", out)
	}
}
