// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides logging helpers built on [log/slog]: a global
// user-facing verbosity level settable with build tags, colored
// terminal output via a custom handler, and simple leveled print
// functions.
package logx

import (
	"fmt"
	"log/slog"
	"os"
)

// UserLevel is the verbosity level specified by the end user, which
// gates what is printed. It defaults per build tag: debug for -tags
// debug builds, warn for -tags release builds, and info otherwise.
var UserLevel = defaultUserLevel

func init() {
	slog.SetDefault(NewLogger(os.Stderr))
}

// PrintlnDebug prints the given arguments with a newline if
// [UserLevel] is debug or lower.
func PrintlnDebug(a ...any) {
	if UserLevel <= slog.LevelDebug {
		fmt.Println(a...)
	}
}

// PrintlnInfo prints the given arguments with a newline if [UserLevel]
// is info or lower.
func PrintlnInfo(a ...any) {
	if UserLevel <= slog.LevelInfo {
		fmt.Println(a...)
	}
}

// PrintlnWarn prints the given arguments with a newline if [UserLevel]
// is warn or lower.
func PrintlnWarn(a ...any) {
	if UserLevel <= slog.LevelWarn {
		fmt.Println(a...)
	}
}

// PrintlnError prints the given arguments with a newline if [UserLevel]
// is error or lower.
func PrintlnError(a ...any) {
	if UserLevel <= slog.LevelError {
		fmt.Println(a...)
	}
}

// PrintError prints the given error if it is non-nil and returns it,
// so call sites can both surface and propagate it.
func PrintError(err error) error {
	if err != nil {
		PrintlnError(err.Error())
	}
	return err
}
