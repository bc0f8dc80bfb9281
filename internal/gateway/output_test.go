package gateway

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atomicstack/emoji-popup-picker/internal/store"
)

type outputSpy struct {
	commands   [][]string
	commandErr error
	copied     []string
	copyErr    error
}

func installOutputSpy(t *testing.T, spy *outputSpy, inTmux bool) {
	t.Helper()
	prevRun := runOutputCommand
	prevCopy := writeClipboard
	prevTmux := insideTmux
	runOutputCommand = func(name string, args ...string) error {
		spy.commands = append(spy.commands, append([]string{name}, args...))
		return spy.commandErr
	}
	writeClipboard = func(text string) error {
		spy.copied = append(spy.copied, text)
		return spy.copyErr
	}
	insideTmux = func() bool { return inTmux }
	t.Cleanup(func() {
		runOutputCommand = prevRun
		writeClipboard = prevCopy
		insideTmux = prevTmux
	})
}

func newTestOutput() *Output {
	return &Output{restoreDelay: time.Millisecond}
}

func TestSendPasteOnly(t *testing.T) {
	spy := &outputSpy{}
	installOutputSpy(t, spy, true)

	err := newTestOutput().Send(context.Background(), "😀", store.OutputPasteOnly)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"tmux", "send-keys", "-l", "--", "😀"}}, spy.commands)
	require.Empty(t, spy.copied)
}

func TestSendCopyOnly(t *testing.T) {
	spy := &outputSpy{}
	installOutputSpy(t, spy, true)

	err := newTestOutput().Send(context.Background(), "🔥", store.OutputCopyOnly)
	require.NoError(t, err)
	require.Empty(t, spy.commands)
	require.Equal(t, []string{"🔥"}, spy.copied)
}

func TestSendPasteAndCopyContinuesAfterPasteFailure(t *testing.T) {
	spy := &outputSpy{commandErr: fmt.Errorf("no server")}
	installOutputSpy(t, spy, true)

	err := newTestOutput().Send(context.Background(), "🚀", store.OutputPasteAndCopy)
	require.ErrorContains(t, err, "send keys")
	require.Equal(t, []string{"🚀"}, spy.copied, "copy must still run after a paste failure")
}

func TestSendPasteRequiresTmux(t *testing.T) {
	spy := &outputSpy{}
	installOutputSpy(t, spy, false)

	err := newTestOutput().Send(context.Background(), "😀", store.OutputPasteOnly)
	require.ErrorContains(t, err, "tmux")
	require.Empty(t, spy.commands)
}

func TestSendHonorsCanceledContext(t *testing.T) {
	spy := &outputSpy{}
	installOutputSpy(t, spy, true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	output := &Output{restoreDelay: time.Hour}

	err := output.Send(ctx, "😀", store.OutputPasteOnly)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, spy.commands)
}
