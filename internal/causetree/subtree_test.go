package causetree

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eightd-studio/engine/internal/models"
)

func sample() []models.Cause {
	// 1 ── 2 ── 3
	//  └── 4
	// 5 ── 6
	return []models.Cause{
		row(1, nil, 0),
		row(2, ptr(1), 0),
		row(3, ptr(2), 0),
		row(4, ptr(1), 1),
		row(5, nil, 1),
		row(6, ptr(5), 0),
	}
}

func TestDescendants(t *testing.T) {
	rows := sample()

	assert.ElementsMatch(t, []uint{2, 3, 4}, Descendants(rows, 1))
	assert.Equal(t, []uint{3}, Descendants(rows, 2))
	assert.Empty(t, Descendants(rows, 3))
	assert.Empty(t, Descendants(rows, 42))
}

func TestDescendantsToleratesCycles(t *testing.T) {
	rows := []models.Cause{row(1, ptr(2), 0), row(2, ptr(1), 0)}
	assert.Equal(t, []uint{2}, Descendants(rows, 1))
}

func TestWouldCycle(t *testing.T) {
	rows := sample()

	assert.False(t, WouldCycle(rows, 2, nil))
	assert.True(t, WouldCycle(rows, 2, ptr(2)))
	assert.True(t, WouldCycle(rows, 1, ptr(3)))
	assert.True(t, WouldCycle(rows, 1, ptr(4)))
	assert.False(t, WouldCycle(rows, 2, ptr(4)))
	assert.False(t, WouldCycle(rows, 1, ptr(6)))
}
