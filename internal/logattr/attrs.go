package logattr

import (
	"log/slog"
	"time"
)

func RunID(id string) slog.Attr {
	return slog.String("run_id", id)
}

func Step[T ~string](name T) slog.Attr {
	return slog.String("step", string(name))
}

func StepKind[T ~string](kind T) slog.Attr {
	return slog.String("step_kind", string(kind))
}

func StepIndex(index int) slog.Attr {
	return slog.Int("step_index", index)
}

func State[T ~string](state T) slog.Attr {
	return slog.String("state", string(state))
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Error(err error) slog.Attr {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return slog.String("error", msg)
}
