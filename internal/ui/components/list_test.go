package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewListStartsWithoutHighlight(t *testing.T) {
	list := NewList(3)

	assert.Equal(t, -1, list.Cursor)
	assert.Equal(t, 3, list.PageSize)
	_, ok := list.Current()
	assert.False(t, ok)
	assert.Nil(t, list.Visible())
}

func TestNewListClampsPageSize(t *testing.T) {
	assert.Equal(t, 1, NewList(0).PageSize)
}

func TestListDownScrollsPage(t *testing.T) {
	list := NewList(2)
	list.SetItems([]string{"a", "b", "c"})

	list.Down()
	cur, ok := list.Current()
	assert.True(t, ok)
	assert.Equal(t, "a", cur)
	assert.Equal(t, []string{"a", "b"}, list.Visible())

	list.Down()
	list.Down()
	cur, _ = list.Current()
	assert.Equal(t, "c", cur)
	assert.Equal(t, 1, list.Offset)
	assert.Equal(t, []string{"b", "c"}, list.Visible())

	list.Down()
	assert.Equal(t, 2, list.Cursor)
}

func TestListUpPastTopClearsHighlight(t *testing.T) {
	list := NewList(2)
	list.SetItems([]string{"a", "b", "c"})
	list.Down()
	list.Down()
	list.Down()

	list.Up()
	list.Up()
	assert.Equal(t, 0, list.Cursor)
	assert.Equal(t, 0, list.Offset)

	list.Up()
	_, ok := list.Current()
	assert.False(t, ok)

	list.Up()
	assert.Equal(t, -1, list.Cursor)
}

func TestListSetItemsResets(t *testing.T) {
	list := NewList(2)
	list.SetItems([]string{"a", "b", "c"})
	list.Down()
	list.Down()
	list.Down()

	list.SetItems([]string{"x"})
	assert.Equal(t, -1, list.Cursor)
	assert.Equal(t, 0, list.Offset)
	assert.Equal(t, 1, list.Len())
}

func TestListRelToAbsAndIsSelected(t *testing.T) {
	list := NewList(2)
	list.SetItems([]string{"a", "b", "c"})
	list.Down()
	list.Down()
	list.Down()

	assert.Equal(t, 2, list.RelToAbs(1))
	assert.True(t, list.IsSelected(2))
	assert.False(t, list.IsSelected(1))
}
