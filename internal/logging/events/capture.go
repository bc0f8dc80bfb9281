package events

import "github.com/atomicstack/emoji-popup-picker/internal/logging"

type CaptureTracer struct{}

type captureReason string

const CaptureReasonEscape captureReason = "escape"

var Capture = CaptureTracer{}

func (CaptureTracer) Start(current string) {
	logging.Trace("capture.start", map[string]interface{}{"current": current})
}

func (CaptureTracer) Candidate(serialized string) {
	logging.Trace("capture.candidate", map[string]interface{}{"combo": serialized})
}

func (CaptureTracer) Commit(serialized string) {
	logging.Trace("capture.commit", map[string]interface{}{"combo": serialized})
}

func (CaptureTracer) Revert(persisted string, reason captureReason) {
	logging.Trace("capture.revert", map[string]interface{}{"persisted": persisted, "reason": string(reason)})
}

func (CaptureTracer) Reset(serialized string) {
	logging.Trace("capture.reset", map[string]interface{}{"combo": serialized})
}

func (CaptureTracer) Ignore(key string) {
	logging.Trace("capture.ignore", map[string]interface{}{"key": key})
}
