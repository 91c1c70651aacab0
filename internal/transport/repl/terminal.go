package repl

import (
	"io"

	"github.com/chzyer/readline"
)

// Terminal is a line editor for the interactive prompts.
type Terminal struct {
	*readline.Instance
}

// NewTerminal opens a line editor writing to out. With a nil in it edits
// lines on the process terminal; any other reader is consumed as plain
// input and the terminal mode is left alone. Entered lines are appended to
// historyFile unless it is empty.
func NewTerminal(in io.ReadCloser, out io.Writer, historyFile string) (*Terminal, error) {
	cfg := &readline.Config{
		Prompt:            "> ",
		HistoryFile:       historyFile,
		HistorySearchFold: true,
		Stdout:            out,
	}
	if in != nil {
		cfg.Stdin = in
		cfg.FuncIsTerminal = func() bool { return false }
		cfg.FuncMakeRaw = func() error { return nil }
		cfg.FuncExitRaw = func() error { return nil }
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}
	return &Terminal{Instance: rl}, nil
}
