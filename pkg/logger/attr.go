package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// List records which name list a record is about.
func List(name string) slog.Attr {
	return slog.String("list", name)
}

func Gender(g string) slog.Attr {
	return slog.String("gender", g)
}

func URL(u string) slog.Attr {
	return slog.String("url", u)
}

func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}

func StatusCode(code int) slog.Attr {
	return slog.Int("status", code)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
