// Copyright (c) 2026 The cachefix authors.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/apex/log"

	"github.com/c3tools/cachefix/internal/command"
	mylog "github.com/c3tools/cachefix/internal/log"
	"github.com/c3tools/cachefix/internal/version"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	if err := mylog.InitLogger(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	args := os.Args

	// Short-circuit --version/-v.
	for _, a := range args[1:] {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return 0
		}
	}

	// A user interrupt is caught once here and turned into a clean
	// log-and-exit rather than a stack trace. The fixer checks the context
	// between assets.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("interrupted by the user, exiting")
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	return 0
}
