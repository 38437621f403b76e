package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, c := range Categories {
		got, err := ParseCategory(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseCategory("audio")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategoryMatches(t *testing.T) {
	assert.True(t, CategoryAll.Matches(KindImage))
	assert.True(t, CategoryAll.Matches(KindVideo))
	assert.True(t, CategoryImage.Matches(KindImage))
	assert.False(t, CategoryImage.Matches(KindVideo))
	assert.True(t, CategoryVideo.Matches(KindVideo))
	assert.False(t, CategoryVideo.Matches(KindImage))
}

func TestEntryDecodeRejectsUnknownKind(t *testing.T) {
	var entries []Entry
	err := json.Unmarshal([]byte(`[{"type":"audio","src":"x","title":"t","description":"d","isDefault":false}]`), &entries)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestEntryWireFormat(t *testing.T) {
	data, err := json.Marshal(Entry{
		Type:        KindVideo,
		Src:         "https://example.com/a.mp4",
		Title:       "A",
		Description: "B",
		IsDefault:   true,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"video","src":"https://example.com/a.mp4","title":"A","description":"B","isDefault":true}`, string(data))
}
