package sortx

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecloudclub/sortkit/datax"
)

var arraySorts = []struct {
	name string
	sort func([]int)
}{
	{"bubble", Bubble[int]},
	{"selection", Selection[int]},
	{"insertion", Insertion[int]},
	{"quick", Quick[int]},
}

func TestArraySorts(t *testing.T) {
	testCases := []struct {
		name  string
		input []int
		want  []int
	}{
		{
			name:  "unsorted",
			input: []int{5, 3, 1, 4, 2},
			want:  []int{1, 2, 3, 4, 5},
		},
		{
			name:  "already sorted",
			input: []int{1, 2, 3, 4, 5},
			want:  []int{1, 2, 3, 4, 5},
		},
		{
			name:  "reversed",
			input: []int{5, 4, 3, 2, 1},
			want:  []int{1, 2, 3, 4, 5},
		},
		{
			name:  "duplicates",
			input: []int{3, 3, 3},
			want:  []int{3, 3, 3},
		},
		{
			name:  "mixed duplicates",
			input: []int{2, 1, 2, 1, 2},
			want:  []int{1, 1, 2, 2, 2},
		},
		{
			name:  "single element",
			input: []int{9},
			want:  []int{9},
		},
		{
			name:  "empty",
			input: []int{},
			want:  []int{},
		},
		{
			name:  "two elements out of order",
			input: []int{2, 1},
			want:  []int{1, 2},
		},
	}

	for _, s := range arraySorts {
		for _, tc := range testCases {
			t.Run(s.name+"/"+tc.name, func(t *testing.T) {
				got := slices.Clone(tc.input)
				s.sort(got)
				assert.Equal(t, tc.want, got)
			})
		}
	}
}

// Every sort must produce the same multiset in ascending order, whatever
// the input distribution.
func TestArraySortsInvariants(t *testing.T) {
	inputs := map[string][]int{
		"random":     datax.Ints(500, datax.WithSeed(1)),
		"sorted":     datax.Ints(500, datax.WithSeed(2), datax.WithSorted()),
		"reversed":   datax.Ints(500, datax.WithSeed(3), datax.WithReversed()),
		"duplicates": datax.Ints(500, datax.WithSeed(4), datax.WithDuplicates(5)),
	}

	for _, s := range arraySorts {
		for name, input := range inputs {
			t.Run(s.name+"/"+name, func(t *testing.T) {
				want := slices.Clone(input)
				slices.Sort(want)

				got := slices.Clone(input)
				s.sort(got)
				assert.Equal(t, want, got)

				// idempotence: a second call changes nothing
				s.sort(got)
				assert.Equal(t, want, got)
			})
		}
	}
}

func TestQuickRange(t *testing.T) {
	t.Run("sorts only the given range", func(t *testing.T) {
		a := []int{9, 5, 3, 1, 4, 2, 0}
		err := QuickRange(a, 1, 5)
		require.NoError(t, err)
		assert.Equal(t, []int{9, 1, 2, 3, 4, 5, 0}, a)
	})

	t.Run("whole slice", func(t *testing.T) {
		a := []int{5, 3, 1, 4, 2}
		err := QuickRange(a, 0, 4)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, a)
	})

	t.Run("single element range", func(t *testing.T) {
		a := []int{2, 1}
		err := QuickRange(a, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, []int{2, 1}, a)
	})

	t.Run("invalid ranges", func(t *testing.T) {
		a := []int{3, 2, 1}
		for _, r := range [][2]int{{-1, 2}, {0, 3}, {2, 1}, {0, 5}} {
			err := QuickRange(a, r[0], r[1])
			assert.ErrorIs(t, err, ErrInvalidRange)
		}
		// the slice must not have been touched
		assert.Equal(t, []int{3, 2, 1}, a)
	})
}

func TestQuickAdversarialDepth(t *testing.T) {
	// already-sorted input drives the last-element pivot to its
	// worst case; make sure a moderate n still completes
	a := datax.Ints(2000, datax.WithSeed(7), datax.WithSorted())
	Quick(a)
	assert.True(t, slices.IsSorted(a))
}

func TestSortsOtherElementTypes(t *testing.T) {
	t.Run("bytes", func(t *testing.T) {
		a := []byte{5, 3, 1, 4, 2}
		Quick(a)
		assert.Equal(t, []byte{1, 2, 3, 4, 5}, a)
	})

	t.Run("strings", func(t *testing.T) {
		a := []string{"pear", "apple", "fig"}
		Insertion(a)
		assert.Equal(t, []string{"apple", "fig", "pear"}, a)
	})
}

func ExampleQuick() {
	a := []int{5, 3, 1, 4, 2}
	Quick(a)
	fmt.Println(a)
	// Output:
	// [1 2 3 4 5]
}

func ExampleBubble() {
	a := []byte{'d', 'b', 'c', 'a'}
	Bubble(a)
	fmt.Println(string(a))
	// Output:
	// abcd
}
