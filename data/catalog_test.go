package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	entries := Catalog()
	require.Len(t, entries, 15)
	assert.Equal(t, NameCamera, entries[0].Name)

	seen := map[string]bool{}
	for _, e := range entries {
		assert.False(t, seen[e.Name], "duplicate %s", e.Name)
		seen[e.Name] = true
		assert.NotEmpty(t, e.Description, e.Name)
		if e.Removed {
			assert.Empty(t, e.Filename, e.Name)
		} else {
			assert.NotEmpty(t, e.Filename, e.Name)
		}
	}

	// Callers get a copy.
	entries[0].Filename = "changed.png"
	camera, ok := Lookup(NameCamera)
	require.True(t, ok)
	assert.Equal(t, "camera.png", camera.Filename)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		gray     bool
		boolean  bool
		removed  bool
	}{
		{NameCheckerboard, "chessboard_GRAY.png", false, false, false},
		{NameClock, "clock_motion.png", false, false, false},
		{NameImmunohistochemistry, "ihc.png", false, false, false},
		{NameHubbleDeepField, "hubble_deep_field.jpg", false, false, false},
		{NameRocket, "rocket.jpg", false, false, false},
		{NameHorse, "horse.png", true, true, false},
		{NameLena, "", false, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, ok := Lookup(tc.name)
			require.True(t, ok)
			assert.Equal(t, tc.filename, e.Filename)
			assert.Equal(t, tc.gray, e.Grayscale)
			assert.Equal(t, tc.boolean, e.Boolean)
			assert.Equal(t, tc.removed, e.Removed)
		})
	}

	_, ok := Lookup("cameraman")
	assert.False(t, ok)
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Len(t, names, 15)
	assert.Contains(t, names, NameLena)
	assert.Equal(t, NameLena, names[len(names)-1])
}
