package cfr

import (
	"strconv"
	"strings"
)

// MaxAction is the largest action index that can be stored in a History.
const MaxAction = 255

// History is the sequence of public actions taken since the root.
//
// It is stored as a string of action bytes so that it is immutable and
// comparable, and can be used directly as a map key.
type History string

// NewHistory returns the History for the given sequence of actions.
func NewHistory(actions ...int) History {
	var h History
	for _, a := range actions {
		h = h.Append(a)
	}

	return h
}

// Append returns a new History with action added at the end.
// The receiver is not modified. It panics with a *ContractError if action
// is outside [0, MaxAction].
func (h History) Append(action int) History {
	if action < 0 || action > MaxAction {
		contractViolation(h, "action %d out of range [0, %d]", action, MaxAction)
	}

	return h + History([]byte{byte(action)})
}

// Len returns the number of actions in the history.
func (h History) Len() int {
	return len(h)
}

// At returns the ith action.
func (h History) At(i int) int {
	return int(h[i])
}

// Last returns the most recent action, and false if the history is empty.
func (h History) Last() (int, bool) {
	if len(h) == 0 {
		return 0, false
	}

	return int(h[len(h)-1]), true
}

// Actions returns the actions as a freshly allocated slice.
func (h History) Actions() []int {
	result := make([]int, len(h))
	for i := range result {
		result[i] = int(h[i])
	}

	return result
}

// String implements fmt.Stringer.
func (h History) String() string {
	parts := make([]string, len(h))
	for i := range parts {
		parts[i] = strconv.Itoa(int(h[i]))
	}

	return "[" + strings.Join(parts, " ") + "]"
}
