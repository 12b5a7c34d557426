package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/RookieChen4/git-commit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		if errors.Is(err, cli.ErrAborted) {
			os.Exit(130)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
