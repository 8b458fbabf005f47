package pretty

import (
	"context"
	"errors"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for codec events.
var (
	SignalSessionCreated  = capitan.NewSignal("pretty.session.created", "Codec session instantiated")
	SignalSessionReset    = capitan.NewSignal("pretty.session.reset", "Session state cleared")
	SignalSessionRestored = capitan.NewSignal("pretty.session.restored", "Session state restored from snapshot")
	SignalDecodeComplete  = capitan.NewSignal("pretty.decode.complete", "Decode feed finished")
	SignalEncodeComplete  = capitan.NewSignal("pretty.encode.complete", "Encode feed finished")
	SignalSubstitution    = capitan.NewSignal("pretty.substitute.applied", "Strict transform substituted unmappable units")
)

// Keys for typed event data.
var (
	KeyDirection   = capitan.NewStringKey("direction")
	KeyByteCount   = capitan.NewIntKey("byte_count")
	KeyRuneCount   = capitan.NewIntKey("rune_count")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyOffset      = capitan.NewIntKey("offset")
	KeySubstituted = capitan.NewIntKey("substituted")
	KeyError       = capitan.NewErrorKey("error")
)

const (
	directionDecode = "decode"
	directionEncode = "encode"
)

// emitSessionCreated emits an event when a session is created.
func emitSessionCreated(ctx context.Context, direction string) {
	capitan.Emit(ctx, SignalSessionCreated,
		KeyDirection.Field(direction),
	)
}

// emitSessionReset emits an event when a session returns to initial state.
func emitSessionReset(ctx context.Context, direction string) {
	capitan.Emit(ctx, SignalSessionReset,
		KeyDirection.Field(direction),
	)
}

// emitSessionRestored emits an event when a session resumes from a snapshot.
func emitSessionRestored(ctx context.Context, direction string) {
	capitan.Emit(ctx, SignalSessionRestored,
		KeyDirection.Field(direction),
	)
}

// emitDecodeComplete emits an event when a decode feed finishes.
func emitDecodeComplete(ctx context.Context, byteCount, runeCount int, duration time.Duration) {
	capitan.Emit(ctx, SignalDecodeComplete,
		KeyByteCount.Field(byteCount),
		KeyRuneCount.Field(runeCount),
		KeyDuration.Field(duration),
	)
}

// emitEncodeComplete emits an event when an encode feed finishes.
func emitEncodeComplete(ctx context.Context, runeCount, byteCount int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyRuneCount.Field(runeCount),
		KeyByteCount.Field(byteCount),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		var encErr *EncodeError
		if errors.As(err, &encErr) {
			fields = append(fields, KeyOffset.Field(encErr.Offset))
		}
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

// emitSubstitution emits an event when a strict transform substituted
// unmappable units instead of failing.
func emitSubstitution(ctx context.Context, direction string, size, substituted int) {
	capitan.Emit(ctx, SignalSubstitution,
		KeyDirection.Field(direction),
		KeyByteCount.Field(size),
		KeySubstituted.Field(substituted),
	)
}
