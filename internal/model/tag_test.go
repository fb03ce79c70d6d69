package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagValid(t *testing.T) {
	for _, tag := range Tags() {
		assert.True(t, tag.Valid(), "tag %q should be valid", tag)
	}

	for _, raw := range []string{"", "Groceries", "personal", "URGENT", "Work "} {
		assert.False(t, Tag(raw).Valid(), "tag %q should be rejected", raw)
	}
}

func TestTagsIsClosed(t *testing.T) {
	assert.Equal(t, []Tag{TagBirthday, TagNone, TagPersonal, TagUrgent, TagWork}, Tags())
}
