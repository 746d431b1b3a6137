package cfr

// Visit walks the game tree rooted at root in pre-order, calling visitor on
// each node. Children of a node are skipped if visitor returns false.
//
// It uses an explicit worklist rather than recursion, so tree depth is bounded
// only by available memory.
func Visit[N Node[N]](root N, visitor func(node N) bool) {
	stack := []N{root}
	for len(stack) > 0 {
		n := len(stack) - 1
		node := stack[n]
		stack = stack[:n]

		if !visitor(node) || node.IsTerminal() {
			continue
		}

		// Push in reverse so that children are visited in action order.
		for i := node.NumActions() - 1; i >= 0; i-- {
			stack = append(stack, node.Play(i))
		}
	}
}
