package selector

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// Terminal owns the raw input mode of the terminal the prompt reads from.
type Terminal interface {
	// MakeRaw switches the terminal to raw mode and returns the function that
	// restores the previous mode.
	MakeRaw() (restore func() error, err error)

	// Width returns the terminal width in columns, or 0 when unknown.
	Width() int
}

// StdioTerminal is the process terminal: raw mode on stdin, width of stdout.
type StdioTerminal struct {
	In  *os.File
	Out *os.File
}

// NewStdioTerminal returns the terminal attached to os.Stdin and os.Stdout.
func NewStdioTerminal() *StdioTerminal {
	return &StdioTerminal{In: os.Stdin, Out: os.Stdout}
}

// MakeRaw puts stdin in raw mode.
//
// While raw mode is held, SIGINT and SIGTERM restore the terminal before the
// process exits, so a signal from outside the prompt (kill, a parent shell)
// cannot leave the terminal unusable.
func (t *StdioTerminal) MakeRaw() (func() error, error) {
	fd := int(t.In.Fd())
	prev, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}

	sigCh := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	var once sync.Once
	restore := func() error {
		var rerr error
		once.Do(func() {
			signal.Stop(sigCh)
			close(done)
			rerr = term.Restore(fd, prev)
		})
		return rerr
	}

	go func() {
		select {
		case sig := <-sigCh:
			log.Debug("Signal received while prompt active, restoring terminal", "signal", sig)
			_ = restore()
			os.Exit(ExitInterrupted)
		case <-done:
		}
	}()

	return restore, nil
}

// Width returns the width of stdout.
func (t *StdioTerminal) Width() int {
	width, _, err := term.GetSize(int(t.Out.Fd()))
	if err != nil || width <= 0 {
		return 0
	}
	return width
}
