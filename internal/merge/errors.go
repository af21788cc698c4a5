// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"errors"
	"fmt"
)

// Kind classifies a merge error by the step that failed.
type Kind int

const (
	KindEngineInit Kind = iota + 1
	KindLoad
	KindWatermark
	KindAppend
	KindSave
	KindStat
)

var kindNames = map[Kind]string{
	KindEngineInit: "engine init",
	KindLoad:       "load",
	KindWatermark:  "watermark",
	KindAppend:     "append",
	KindSave:       "save",
	KindStat:       "stat",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Fatal reports whether an error of this kind aborts the run. Only load
// errors are recoverable.
func (k Kind) Fatal() bool {
	return k != KindLoad
}

// Error is a failure of one merge step. Path names the file involved, if
// any.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var me *Error
	if errors.As(err, &me) {
		return me.Kind, true
	}
	return 0, false
}
