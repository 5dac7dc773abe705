package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAddAssignsIncreasingIDs(t *testing.T) {
	var l List
	a, ok := l.Add("  first ")
	require.True(t, ok)
	b, ok := l.Add("second")
	require.True(t, ok)

	assert.Equal(t, Task{ID: 1, Text: "first"}, a)
	assert.Equal(t, Task{ID: 2, Text: "second"}, b)
	assert.Equal(t, 2, l.Len())
}

func TestListAddRejectsBlank(t *testing.T) {
	var l List
	for _, s := range []string{"", " ", "\t\n"} {
		_, ok := l.Add(s)
		assert.False(t, ok, "%q", s)
	}
	assert.Equal(t, 0, l.Len())
}

func TestListIDsNotReusedAfterRemove(t *testing.T) {
	var l List
	a, _ := l.Add("a")
	require.True(t, l.Remove(a.ID))

	b, _ := l.Add("b")
	assert.NotEqual(t, a.ID, b.ID)
}

func TestListSetTextKeepsPosition(t *testing.T) {
	var l List
	l.Add("a")
	b, _ := l.Add("b")
	l.Add("c")

	require.True(t, l.SetText(b.ID, " B "))
	assert.Equal(t, []string{"a", "B", "c"}, texts(l.All()))

	assert.False(t, l.SetText(b.ID, "   "))
	assert.False(t, l.SetText(99, "x"))
}

func TestListRemovePreservesOrder(t *testing.T) {
	var l List
	l.Add("a")
	b, _ := l.Add("b")
	l.Add("c")

	require.True(t, l.Remove(b.ID))
	assert.Equal(t, []string{"a", "c"}, texts(l.All()))
	assert.False(t, l.Remove(b.ID))
}

func TestListAllReturnsCopy(t *testing.T) {
	var l List
	l.Add("a")
	all := l.All()
	all[0].Text = "mutated"

	got, _ := l.Get(1)
	assert.Equal(t, "a", got.Text)
}

func texts(ts []Task) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Text
	}
	return out
}
