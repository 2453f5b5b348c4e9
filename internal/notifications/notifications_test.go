package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnreadCount(t *testing.T) {
	repo := NewRepository()

	assert.Equal(t, 2, repo.UnreadCount("donor-1"))
	assert.Equal(t, 3, repo.UnreadCount("ngo-1"))
	assert.Equal(t, 0, repo.UnreadCount("admin-1"))
	assert.Equal(t, 0, repo.UnreadCount("nobody"))
}

func TestList(t *testing.T) {
	repo := NewRepository()

	list := repo.List("ngo-1")
	require.Len(t, list, 4)
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i].CreatedAt.After(list[i-1].CreatedAt), "list should be newest first")
	}
	for _, n := range list {
		assert.Equal(t, "ngo-1", n.UserID)
		assert.NotEmpty(t, n.ID)
	}

	// IDs are stable across instances.
	again := NewRepository().List("ngo-1")
	assert.Equal(t, list[0].ID, again[0].ID)

	// Callers cannot mutate the table.
	list[0].Read = true
	assert.Equal(t, 3, repo.UnreadCount("ngo-1"))

	assert.Empty(t, repo.List("nobody"))
}

func TestUserIDs(t *testing.T) {
	assert.Equal(t, []string{"admin-1", "donor-1", "ngo-1"}, NewRepository().UserIDs())
}
