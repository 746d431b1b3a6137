// Package tree provides statistics over game trees implementing cfr.Node.
package tree

import (
	"github.com/timpalpant/go-dcfr"
)

// VisitHistories calls visitor once for each distinct non-terminal public history.
func VisitHistories[N cfr.Node[N]](root N, visitor func(player int, h cfr.History)) {
	seen := make(map[cfr.History]struct{})
	cfr.Visit(root, func(node N) bool {
		if node.IsTerminal() {
			return false
		}

		h := node.PublicHistory()
		if _, ok := seen[h]; !ok {
			visitor(node.CurrentPlayer(), h)
			seen[h] = struct{}{}
		}

		return true
	})
}

func CountTerminalNodes[N cfr.Node[N]](root N) int {
	total := 0
	cfr.Visit(root, func(node N) bool {
		if node.IsTerminal() {
			total++
		}

		return true
	})

	return total
}

func CountNodes[N cfr.Node[N]](root N) int {
	total := 0
	cfr.Visit(root, func(node N) bool {
		total++
		return true
	})

	return total
}

func CountHistories[N cfr.Node[N]](root N) int {
	total := 0
	VisitHistories(root, func(player int, h cfr.History) { total++ })
	return total
}

// MaxDepth returns the length of the longest public history in the tree.
func MaxDepth[N cfr.Node[N]](root N) int {
	depth := 0
	cfr.Visit(root, func(node N) bool {
		if d := node.PublicHistory().Len(); d > depth {
			depth = d
		}

		return true
	})

	return depth
}
