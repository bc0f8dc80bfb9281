package events

import "github.com/atomicstack/emoji-popup-picker/internal/logging"

type SelectionTracer struct{}

var Selection = SelectionTracer{}

func (SelectionTracer) Pick(symbol string, index int) {
	logging.Trace("select.pick", map[string]interface{}{"symbol": symbol, "index": index})
}

func (SelectionTracer) StepError(step string, err error) {
	if err == nil {
		return
	}
	logging.Trace("select.step-error", map[string]interface{}{"step": step, "error": err.Error()})
}

func (SelectionTracer) Done(symbol string) {
	logging.Trace("select.done", map[string]interface{}{"symbol": symbol})
}
