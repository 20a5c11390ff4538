package causetree

import "github.com/eightd-studio/engine/internal/models"

// Descendants returns the ids of every cause below id, breadth first.
// id itself is not included. Cycles in rows are tolerated.
func Descendants(rows []models.Cause, id uint) []uint {
	byParent := make(map[uint][]uint)
	for i := range rows {
		if p := rows[i].ParentID; p != nil {
			byParent[*p] = append(byParent[*p], rows[i].ID)
		}
	}

	seen := map[uint]bool{id: true}
	out := make([]uint, 0)
	queue := []uint{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, child := range byParent[cur] {
			if seen[child] {
				continue
			}
			seen[child] = true
			out = append(out, child)
			queue = append(queue, child)
		}
	}
	return out
}

// WouldCycle reports whether hanging cause id under newParent would make id
// its own ancestor. A nil newParent (top level) never cycles.
func WouldCycle(rows []models.Cause, id uint, newParent *uint) bool {
	if newParent == nil {
		return false
	}
	if *newParent == id {
		return true
	}
	for _, d := range Descendants(rows, id) {
		if d == *newParent {
			return true
		}
	}
	return false
}
