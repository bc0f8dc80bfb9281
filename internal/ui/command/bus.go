package command

import (
	"context"
	"fmt"

	"github.com/atomicstack/emoji-popup-picker/internal/gateway"
	"github.com/atomicstack/emoji-popup-picker/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates one gateway invocation.
type Request struct {
	ID    string
	Label string
	Run   func(context.Context, gateway.Client) tea.Msg
}

// Bus funnels gateway calls into Bubble Tea commands so every operation
// shares the same context and trace logging.
type Bus struct {
	ctx context.Context
	gw  gateway.Client
}

// New initialises a command bus around the gateway client.
func New(ctx context.Context, gw gateway.Client) *Bus {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Bus{ctx: ctx, gw: gw}
}

// Client exposes the wrapped gateway.
func (b *Bus) Client() gateway.Client {
	return b.gw
}

// Execute wraps a gateway request into a Bubble Tea command while emitting
// trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Run == nil || b.gw == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		msg := req.Run(b.ctx, b.gw)
		if msg == nil {
			events.Command.NoOp(req.ID, req.Label)
			return nil
		}
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
