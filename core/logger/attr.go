package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Helpers return an empty slog.Attr for nil or empty input; slog drops empty
// attributes, so call sites never need a nil check.

// Group nests attrs under name.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error logs err under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under "errors", keyed by their argument position.
func Errors(errs ...error) slog.Attr {
	var attrs []slog.Attr
	for i, err := range errs {
		if err != nil {
			attrs = append(attrs, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(attrs) == 0 {
		return slog.Attr{}
	}
	return Group("errors", attrs...)
}

// Panic logs a recovered panic value.
func Panic(v any) slog.Attr {
	if v == nil {
		return slog.Attr{}
	}
	return slog.Any("panic", v)
}

// Duration logs d under "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Latency logs d under "latency". Used for HTTP requests.
func Latency(d time.Duration) slog.Attr {
	return slog.Duration("latency", d)
}

// RequestID logs the HTTP request id.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Method(method string) slog.Attr {
	return slog.String("method", method)
}

func Path(path string) slog.Attr {
	return slog.String("path", path)
}

func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// Component names the subsystem emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

func Action(action string) slog.Attr {
	return slog.String("action", action)
}

// Count logs an integer under an arbitrary key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

func Version(v string) slog.Attr {
	if v == "" {
		return slog.Attr{}
	}
	return slog.String("version", v)
}
