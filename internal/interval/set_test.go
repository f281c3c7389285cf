package interval

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"range-remapper/internal/errkind"
)

func TestFromPairs(t *testing.T) {
	s, err := FromPairs([][2]uint64{{79, 14}, {55, 13}})
	require.NoError(t, err)
	assert.Equal(t, Set{{79, 14}, {55, 13}}, s)
	assert.Equal(t, uint64(27), s.TotalLength())

	_, err = FromPairs([][2]uint64{{1, 1}, {4, 0}})
	assert.ErrorIs(t, err, errkind.ErrInvalidInterval)
}

func TestMin(t *testing.T) {
	_, ok := Set{}.Min()
	assert.False(t, ok)

	m, ok := Set{{79, 14}, {55, 13}, {60, 1}}.Min()
	assert.True(t, ok)
	assert.Equal(t, uint64(55), m)
}

func TestSetValidate(t *testing.T) {
	require.NoError(t, Set{{1, 2}, {3, 4}}.Validate())
	assert.ErrorIs(t, Set{{1, 2}, {3, 0}}.Validate(), errkind.ErrInvalidInterval)
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		name string
		in   Set
		want Set
	}{
		{"empty", Set{}, Set{}},
		{"single", Set{{5, 5}}, Set{{5, 5}}},
		{"unsorted disjoint", Set{{20, 5}, {0, 5}}, Set{{0, 5}, {20, 5}}},
		{"touching", Set{{5, 5}, {0, 5}}, Set{{0, 10}}},
		{"overlapping", Set{{0, 10}, {5, 10}}, Set{{0, 15}}},
		{"duplicate", Set{{3, 2}, {3, 2}}, Set{{3, 2}}},
		{"contained", Set{{0, 100}, {10, 5}, {200, 1}}, Set{{0, 100}, {200, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Canonical()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Canonical(%s) mismatch (-want +got):\n%s", spew.Sdump(tt.in), diff)
			}
		})
	}
}

func TestCanonicalDoesNotMutate(t *testing.T) {
	in := Set{{5, 5}, {0, 5}}
	_ = in.Canonical()

	assert.Equal(t, Set{{5, 5}, {0, 5}}, in)
}

func TestSorted(t *testing.T) {
	got := Set{{5, 1}, {0, 3}, {0, 2}, {5, 1}}.Sorted()
	assert.Equal(t, Set{{0, 2}, {0, 3}, {5, 1}, {5, 1}}, got)
}

func TestSetContains(t *testing.T) {
	s := Set{{79, 14}, {55, 13}}

	assert.True(t, s.Contains(55))
	assert.True(t, s.Contains(92))
	assert.False(t, s.Contains(68))
	assert.False(t, s.Contains(93))
}

func TestSetIntersect(t *testing.T) {
	a := Set{{0, 10}, {20, 10}}
	b := Set{{5, 20}, {28, 100}}

	assert.Equal(t, Set{{5, 5}, {20, 5}, {28, 2}}, a.Intersect(b))
	assert.Empty(t, a.Intersect(Set{{10, 10}}))
	assert.Empty(t, a.Intersect(nil))
}

func TestWindow(t *testing.T) {
	w, err := Window(47)
	require.NoError(t, err)
	assert.Equal(t, Interval{0, 47}, w)

	_, err = Window(0)
	assert.ErrorIs(t, err, errkind.ErrInvalidInterval)
}

func TestSetString(t *testing.T) {
	assert.Equal(t, "{[0, 5) [10, 12)}", Set{{0, 5}, {10, 2}}.String())
}
