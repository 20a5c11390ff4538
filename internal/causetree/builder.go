// Package causetree turns the flat cause rows of one problem into the nested
// "5 Whys" forest and answers structural questions about it.
//
// Rows are expected in (order_index, created_at, id) order. Siblings keep that
// order. A row whose parent is missing, belongs to another problem, or is only
// reachable through a cycle never reaches a top-level node and is left out of
// the result without error.
package causetree

import "github.com/eightd-studio/engine/internal/models"

// Build nests rows under their parents and returns the top-level nodes.
// It indexes rows by parent once and then walks down from the top-level nodes
// with an explicit stack, so arbitrarily deep chains do not grow the call stack.
func Build(rows []models.Cause) []*models.CauseNode {
	nodes := make(map[uint]*models.CauseNode, len(rows))
	byParent := make(map[uint][]*models.CauseNode)
	roots := make([]*models.CauseNode, 0)

	for i := range rows {
		if _, dup := nodes[rows[i].ID]; dup {
			continue
		}
		n := &models.CauseNode{Cause: rows[i], Children: make([]*models.CauseNode, 0)}
		nodes[n.ID] = n
		if n.ParentID == nil {
			roots = append(roots, n)
			continue
		}
		byParent[*n.ParentID] = append(byParent[*n.ParentID], n)
	}

	attached := make(map[uint]bool, len(nodes))
	stack := make([]*models.CauseNode, 0, len(roots))
	for _, r := range roots {
		attached[r.ID] = true
		stack = append(stack, r)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range byParent[n.ID] {
			if attached[child.ID] || child.ProblemID != n.ProblemID {
				continue
			}
			attached[child.ID] = true
			n.Children = append(n.Children, child)
			stack = append(stack, child)
		}
	}
	return roots
}

// Flatten lists the forest in pre-order: each node before its children,
// siblings in order.
func Flatten(roots []*models.CauseNode) []models.Cause {
	out := make([]models.Cause, 0, len(roots))
	stack := make([]*models.CauseNode, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, roots[i])
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n.Cause)
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return out
}

// Summarize counts nodes and flagged root causes and measures the deepest chain.
// A forest with only top-level causes has depth 1.
func Summarize(roots []*models.CauseNode) models.TreeStats {
	type item struct {
		node  *models.CauseNode
		depth int
	}
	var st models.TreeStats
	stack := make([]item, 0, len(roots))
	for _, r := range roots {
		stack = append(stack, item{r, 1})
	}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		st.Nodes++
		if it.node.IsRootCause {
			st.RootCauses++
		}
		if it.depth > st.MaxDepth {
			st.MaxDepth = it.depth
		}
		for _, c := range it.node.Children {
			stack = append(stack, item{c, it.depth + 1})
		}
	}
	return st
}
