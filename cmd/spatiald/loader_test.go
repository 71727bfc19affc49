package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "places.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPlaces(t *testing.T) {
	path := writeFile(t, "alpha,1.5,2\nbeta,10,20\n")

	places, err := LoadPlaces(path)
	require.NoError(t, err)
	assert.Equal(t, []Place{
		{Name: "alpha", X: 1.5, Y: 2},
		{Name: "beta", X: 10, Y: 20},
	}, places)
	assert.Equal(t, 1.5, places[0].AsPoint().X)
}

func TestLoadPlacesBadRecord(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad_x", "alpha,notanumber,2\n"},
		{"bad_y", "alpha,1,notanumber\n"},
		{"wrong_field_count", "alpha,1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPlaces(writeFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadPlacesMissingFile(t *testing.T) {
	_, err := LoadPlaces(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
