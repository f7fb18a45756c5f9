package morphan

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagString(t *testing.T) {
	tests := []struct {
		tag  Tag
		want string
	}{
		{tagNoun, "noun|n/a|n/a|emphatic|n/a|singular|masculine"},
		{tagVerb, "verb|peal|perfect|n/a|third|singular|masculine"},
		{Tag{}, "verb|n/a|n/a|n/a|n/a|n/a|n/a"},
		{Tag{Category: 99}, "?99|n/a|n/a|n/a|n/a|n/a|n/a"},
	}
	for _, tt := range tests {
		if got := tt.tag.String(); got != tt.want {
			t.Errorf("Tag(%v).String() = %q, want %q", tt.tag.Values(), got, tt.want)
		}
	}
}

func TestParseTag(t *testing.T) {
	for _, want := range []Tag{tagNoun, tagVerb, {Category: 6}, {Category: 1, Conjugation: 28, Aspect: 5, Gender: 3}} {
		got, err := ParseTag(want.String())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, bad := range []string{"", "noun", "noun|n/a|n/a|emphatic|n/a|singular|neuter", "noun|n/a|n/a|emphatic|n/a|singular|masculine|x"} {
		_, err := ParseTag(bad)
		assert.Error(t, err, bad)
	}
}

func TestNewTag(t *testing.T) {
	got, err := NewTag([7]uint8{2, 0, 0, 3, 0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, tagNoun, got)
	assert.Equal(t, [7]uint8{2, 0, 0, 3, 0, 1, 2}, got.Values())

	_, err = NewTag([7]uint8{9, 0, 0, 0, 0, 0, 0})
	assert.ErrorContains(t, err, "grammatical_category")
	_, err = NewTag([7]uint8{0, 0, 0, 0, 0, 3, 0})
	assert.ErrorContains(t, err, "number")
}

func TestTagJSON(t *testing.T) {
	b, err := json.Marshal(map[string]Tag{"tag": tagNoun})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tag":"noun|n/a|n/a|emphatic|n/a|singular|masculine"}`, string(b))

	var got map[string]Tag
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, tagNoun, got["tag"])
}
