package events

import "github.com/atomicstack/emoji-popup-picker/internal/logging"

type NavTracer struct{}

type QueryTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	Nav     = NavTracer{}
	Query   = QueryTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (NavTracer) Focus(index, columns int) {
	logging.Trace("nav.focus", map[string]interface{}{"index": index, "columns": columns})
}

func (NavTracer) ToSearch(fromIndex int) {
	logging.Trace("nav.to-search", map[string]interface{}{"from": fromIndex})
}

func (NavTracer) ToGrid(index int) {
	logging.Trace("nav.to-grid", map[string]interface{}{"index": index})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (QueryTracer) Cleared() {
	logging.Trace("query.clear", nil)
}

func (QueryTracer) WordBackspace(query string) {
	logging.Trace("query.word-backspace", map[string]interface{}{"query": query})
}

func (QueryTracer) Cursor(pos int) {
	logging.Trace("query.cursor", map[string]interface{}{"cursor": pos})
}

func (QueryTracer) CursorWord(pos int) {
	logging.Trace("query.cursor-word", map[string]interface{}{"cursor": pos})
}

func (QueryTracer) Append(query string) {
	logging.Trace("query.append", map[string]interface{}{"query": query})
}

func (QueryTracer) Backspace(query string) {
	logging.Trace("query.backspace", map[string]interface{}{"query": query})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
