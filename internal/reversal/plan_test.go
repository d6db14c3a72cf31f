package reversal

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlan_SwapCount(t *testing.T) {
	for n := 0; n <= 7; n++ {
		paths := make([]string, n)
		for i := range paths {
			paths[i] = fmt.Sprintf("p%d", i)
		}
		assert.Len(t, Plan(paths), n/2, "n=%d", n)
	}
}

func TestPlan_OutermostPairFirst(t *testing.T) {
	swaps := Plan([]string{"a", "b", "c", "d", "e"})

	assert.Equal(t, []Swap{
		{Index1: 0, Index2: 4, Path1: "a", Path2: "e"},
		{Index1: 1, Index2: 3, Path1: "b", Path2: "d"},
	}, swaps)
}

func TestPlan_EmptyAndSingle(t *testing.T) {
	assert.Empty(t, Plan(nil))
	assert.Empty(t, Plan([]string{"only"}))
}

func TestApply_ReversesAndIsAnInvolution(t *testing.T) {
	tests := [][]string{
		{"a", "b"},
		{"a", "b", "c"},
		{"a", "b", "c", "d"},
		{"a", "b", "c", "d", "e", "f", "g"},
	}

	for _, paths := range tests {
		t.Run(fmt.Sprint(len(paths)), func(t *testing.T) {
			reversed := Apply(paths, Plan(paths))

			want := slices.Clone(paths)
			slices.Reverse(want)
			assert.Equal(t, want, reversed)

			if len(paths)%2 == 1 {
				mid := len(paths) / 2
				assert.Equal(t, paths[mid], reversed[mid], "middle element never moves")
			}

			assert.Equal(t, paths, Apply(reversed, Plan(reversed)))
		})
	}
}

func TestApply_DoesNotModifyInput(t *testing.T) {
	paths := []string{"a", "b", "c"}
	_ = Apply(paths, Plan(paths))
	assert.Equal(t, []string{"a", "b", "c"}, paths)
}
