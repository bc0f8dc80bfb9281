package events

import "github.com/atomicstack/emoji-popup-picker/internal/logging"

type SettingsTracer struct{}

type settingsReason string

const (
	SettingsReasonEscape settingsReason = "escape"
)

var Settings = SettingsTracer{}

func (SettingsTracer) Open() {
	logging.Trace("settings.open", nil)
}

func (SettingsTracer) Submit(fields map[string]interface{}) {
	logging.Trace("settings.submit", fields)
}

func (SettingsTracer) Cancel(reason settingsReason) {
	logging.Trace("settings.cancel", map[string]interface{}{"reason": string(reason)})
}

func (SettingsTracer) ResetStats() {
	logging.Trace("settings.reset-stats", nil)
}

func (SettingsTracer) Resize(width, height int) {
	logging.Trace("settings.resize", map[string]interface{}{"width": width, "height": height})
}
