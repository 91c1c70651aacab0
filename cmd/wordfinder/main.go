// Command wordfinder lists the dictionary words that can be spelled with a
// given set of letters and a given word length.
//
// Usage:
//
//	wordfinder [options] DICTIONARY_PATH
//
// Exit codes: 0 = success, 1 = error, 2 = usage error, 3 = dictionary not found.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/heartmarshall/wordfinder/internal/app"
	"github.com/heartmarshall/wordfinder/internal/cli"
)

func main() {
	if err := run(context.Background(), os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.ExitCode(err))
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW io.Writer, args []string) error {
	opts, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	if opts.ShowVersion {
		fmt.Fprintln(outW, "wordfinder", app.BuildVersion())
		return nil
	}

	return app.Run(ctx, opts, outW)
}
