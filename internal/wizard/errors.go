package wizard

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrStepIncomplete           = errors.New("step incomplete")
	ErrWrongStep                = errors.New("update does not belong to the current step")
	ErrSubmitted                = errors.New("enrollment already submitted")
	ErrUnsupportedState         = errors.New("unsupported state")
	ErrUnknownAssistanceProgram = errors.New("unknown assistance program")
)

// ValidationErrors maps a field to the message shown next to it.
type ValidationErrors map[Field]string

func (v ValidationErrors) Error() string {
	keys := make([]string, 0, len(v))
	for f := range v {
		keys = append(keys, string(f))
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+v[Field(k)])
	}
	return strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrStepIncomplete) match any validation failure.
func (v ValidationErrors) Is(target error) bool { return target == ErrStepIncomplete }
