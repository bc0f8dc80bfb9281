package events

import "github.com/atomicstack/emoji-popup-picker/internal/logging"

type SearchTracer struct{}

type GridTracer struct{}

var (
	Search = SearchTracer{}
	Grid   = GridTracer{}
)

func (SearchTracer) Input(query string, version int) {
	logging.Trace("search.input", map[string]interface{}{"query": query, "version": version})
}

func (SearchTracer) Fire(query string, version int) {
	logging.Trace("search.fire", map[string]interface{}{"query": query, "version": version})
}

func (SearchTracer) Results(query string, count int) {
	logging.Trace("search.results", map[string]interface{}{"query": query, "count": count})
}

func (SearchTracer) Stale(resultQuery, currentQuery string) {
	logging.Trace("search.stale", map[string]interface{}{"result": resultQuery, "current": currentQuery})
}

func (SearchTracer) Error(query string, err error) {
	if err == nil {
		return
	}
	logging.Trace("search.error", map[string]interface{}{"query": query, "error": err.Error()})
}

func (GridTracer) Reset(generation, total int) {
	logging.Trace("grid.reset", map[string]interface{}{"generation": generation, "total": total})
}

func (GridTracer) Batch(generation, rendered int) {
	logging.Trace("grid.batch", map[string]interface{}{"generation": generation, "rendered": rendered})
}

func (GridTracer) Drop(staleGeneration, currentGeneration int) {
	logging.Trace("grid.drop", map[string]interface{}{"stale": staleGeneration, "current": currentGeneration})
}
