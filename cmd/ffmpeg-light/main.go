package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"ffmpeglight/internal/errs"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
			if hint := errs.Suggestion(err); hint != "" {
				fmt.Fprintln(os.Stderr, "hint:", hint)
			}
		}
		os.Exit(1)
	}
}
