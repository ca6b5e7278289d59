package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreate(t *testing.T) {
	t.Run("identity mapping", func(t *testing.T) {
		c := Create("ACTION_ONE", "ACTION_TWO")

		assert.Equal(t, Constants{
			"ACTION_ONE": "ACTION_ONE",
			"ACTION_TWO": "ACTION_TWO",
		}, c)
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		c := Create("A", "B", "A")
		assert.Len(t, c, 2)
		assert.Equal(t, "A", c["A"])
	})

	t.Run("no names", func(t *testing.T) {
		c := Create()
		assert.NotNil(t, c)
		assert.Empty(t, c)
	})
}

func TestConstants_Has(t *testing.T) {
	c := Create("FETCH_USER_SUCCESS")
	assert.True(t, c.Has("FETCH_USER_SUCCESS"))
	assert.False(t, c.Has("FETCH_USER_ERROR"))
}

func TestConstants_Names(t *testing.T) {
	c := Create("WRITE_NAME_SUCCESS", "FETCH_USER_ERROR", "SAVE_MESSAGE_ERROR")
	assert.Equal(t, []string{"FETCH_USER_ERROR", "SAVE_MESSAGE_ERROR", "WRITE_NAME_SUCCESS"}, c.Names())
}
