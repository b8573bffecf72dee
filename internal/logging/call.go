package logging

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"

	"git.home.luguber.info/inful/ppt/internal/logfields"
)

// Call runs fn, logging the call with its arguments at debug level. Returned errors are
// logged and passed through. A panic is logged with its stack and re-raised.
func Call[T any](ctx context.Context, name string, args []any, fn func() (T, error)) (result T, err error) {
	log := Logger("ppt.logging")
	log.DebugContext(ctx, "Function called", "func", name, "args", formatArgs(args))

	defer func() {
		if r := recover(); r != nil {
			log.ErrorContext(ctx, "Panic raised", "func", name, "panic", fmt.Sprint(r), "stack", string(debug.Stack()))
			panic(r)
		}
	}()

	result, err = fn()
	if err != nil {
		log.ErrorContext(ctx, "Error returned", "func", name, logfields.Error(err))
	}
	return result, err
}

// Do is Call for functions that only return an error.
func Do(ctx context.Context, name string, args []any, fn func() error) error {
	_, err := Call(ctx, name, args, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

func formatArgs(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		if s, ok := a.(string); ok {
			parts[i] = fmt.Sprintf("%q", s)
			continue
		}
		parts[i] = fmt.Sprintf("%v", a)
	}
	return strings.Join(parts, ", ")
}
