package logger

import (
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// Returns an empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component identifies the emitting subsystem.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event names the lifecycle event being handled.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// WidgetID correlates log lines from one widget instance.
func WidgetID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("widget_id", id)
}

// RecordID identifies the record a subscription is bound to.
func RecordID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("record_id", id)
}

// Mode names the active value-source mode.
func Mode(mode string) slog.Attr {
	return slog.String("mode", mode)
}

// Asset identifies the asset reference being loaded.
func Asset(ref string) slog.Attr {
	if ref == "" {
		return slog.Attr{}
	}
	return slog.String("asset", ref)
}
