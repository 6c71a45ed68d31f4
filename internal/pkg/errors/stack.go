package errors

import (
	"path/filepath"
	"runtime"
)

// defaultCallerSkip is the number of frames skipped when capturing a stack
// so the first recorded frame is the New/Wrap call site:
//
//  1. runtime.Callers
//  2. captureStack
//  3. New/Newf/Wrap/Wrapf
const defaultCallerSkip = 3

// StackFrame is the execution context of a single call-stack entry.
type StackFrame struct {
	File     string
	Line     int
	Function string
}

// captureStack collects up to five frames starting above skip.
func captureStack(skip int) []StackFrame {
	const maxFrames = 5
	pc := make([]uintptr, maxFrames)
	n := runtime.Callers(skip, pc)

	if n == 0 {
		return nil
	}

	callersFrames := runtime.CallersFrames(pc[:n])

	frames := make([]StackFrame, 0, n)
	for {
		frame, more := callersFrames.Next()
		frames = append(frames, StackFrame{
			File:     filepath.Base(frame.File),
			Line:     frame.Line,
			Function: frame.Function,
		})
		if !more {
			break
		}
	}

	return frames
}
