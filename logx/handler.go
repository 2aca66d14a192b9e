// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// handler is a [slog.Handler] that writes compact, optionally colored
// lines of the form "LEVEL message key=value ...". It honors
// [UserLevel] and colors output when the writer is a color-capable
// terminal.
type handler struct {
	w      io.Writer
	mu     *sync.Mutex
	output *termenv.Output
	attrs  []slog.Attr
	groups []string
}

// NewLogger returns a [slog.Logger] writing colored, compact output to
// the given writer, gated by [UserLevel].
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(NewHandler(w))
}

// NewHandler returns a [slog.Handler] writing colored, compact output
// to the given writer, gated by [UserLevel].
func NewHandler(w io.Writer) slog.Handler {
	return &handler{
		w:      w,
		mu:     &sync.Mutex{},
		output: termenv.NewOutput(w),
	}
}

func (h *handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *handler) Handle(ctx context.Context, r slog.Record) error {
	b := &strings.Builder{}
	b.WriteString(h.levelLabel(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)
	prefix := strings.Join(h.groups, ".")
	if prefix != "" {
		prefix += "."
	}
	for _, a := range h.attrs {
		writeAttr(b, h.output, prefix, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(b, h.output, prefix, a)
		return true
	})
	b.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *handler) levelLabel(level slog.Level) string {
	s := h.output.String(level.String())
	switch {
	case level >= slog.LevelError:
		s = s.Foreground(h.output.Color("1")).Bold()
	case level >= slog.LevelWarn:
		s = s.Foreground(h.output.Color("3"))
	case level >= slog.LevelInfo:
		s = s.Foreground(h.output.Color("4"))
	default:
		s = s.Faint()
	}
	return s.String()
}

func writeAttr(b *strings.Builder, output *termenv.Output, prefix string, a slog.Attr) {
	b.WriteByte(' ')
	b.WriteString(output.String(prefix + a.Key + "=").Faint().String())
	b.WriteString(fmt.Sprintf("%v", a.Value.Resolve().Any()))
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &nh
}

func (h *handler) WithGroup(name string) slog.Handler {
	nh := *h
	nh.groups = append(append([]string{}, h.groups...), name)
	return &nh
}
