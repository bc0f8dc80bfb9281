package gateway

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/atotto/clipboard"

	"github.com/atomicstack/emoji-popup-picker/internal/store"
)

// focusRestorationDelay gives the pane under the panel time to take focus
// back before keystrokes are replayed into it.
const focusRestorationDelay = 200 * time.Millisecond

var (
	runOutputCommand = func(name string, args ...string) error {
		return exec.Command(name, args...).Run()
	}
	writeClipboard = clipboard.WriteAll
	insideTmux     = func() bool {
		return os.Getenv("TMUX") != ""
	}
)

// Output delivers picked symbols: pasting via tmux send-keys, copying via
// the system clipboard, or both, depending on the output mode.
type Output struct {
	restoreDelay time.Duration
}

func NewOutput() *Output {
	return &Output{restoreDelay: focusRestorationDelay}
}

// Send performs the configured output action for one symbol. When the mode
// asks for both paste and copy, a paste failure does not stop the copy; the
// first failure is reported.
func (o *Output) Send(ctx context.Context, symbol string, mode store.OutputMode) error {
	paste := mode == store.OutputPasteOnly || mode == store.OutputPasteAndCopy
	copyToClipboard := mode == store.OutputCopyOnly || mode == store.OutputPasteAndCopy

	var firstErr error
	if paste {
		if err := o.paste(ctx, symbol); err != nil {
			firstErr = err
		}
	}
	if copyToClipboard {
		if err := writeClipboard(symbol); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("copy to clipboard: %w", err)
		}
	}
	return firstErr
}

func (o *Output) paste(ctx context.Context, symbol string) error {
	if !insideTmux() {
		return fmt.Errorf("paste requires a tmux session")
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(o.restoreDelay):
	}
	if err := runOutputCommand("tmux", "send-keys", "-l", "--", symbol); err != nil {
		return fmt.Errorf("send keys: %w", err)
	}
	return nil
}
