package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Notification records a notification name under the key "notification".
func Notification(name string) slog.Attr {
	return slog.String("notification", name)
}

// Mediator records a mediator name under the key "mediator".
func Mediator(name string) slog.Attr {
	return slog.String("mediator", name)
}

// Command records the notification name a command is bound to under the key "command".
func Command(name string) slog.Attr {
	return slog.String("command", name)
}

// Proxy records a proxy name under the key "proxy".
func Proxy(name string) slog.Attr {
	return slog.String("proxy", name)
}

// State records a state name under the key "state".
// An empty name returns an empty Attr.
func State(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("state", name)
}

// Transition groups the source and target state names under the key "transition".
func Transition(from, to string) slog.Attr {
	return Group("transition", slog.String("from", from), slog.String("to", to))
}

// Action records a state machine action under the key "action".
func Action(action string) slog.Attr {
	return slog.String("action", action)
}

// Facade records the facade key under the key "facade".
func Facade(key string) slog.Attr {
	return slog.String("facade", key)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
