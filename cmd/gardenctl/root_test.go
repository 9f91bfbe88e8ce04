package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	up, _, err := root.Find([]string{"migrate", "up"})
	require.NoError(t, err)
	assert.Equal(t, "up", up.Name())

	load, _, err := root.Find([]string{"catalog", "load"})
	require.NoError(t, err)
	assert.Equal(t, "load", load.Name())
	assert.NotNil(t, load.Flags().Lookup("file"))
}

func TestCatalogPath_PrefersFlag(t *testing.T) {
	path, err := catalogPath("custom/seeds.yaml")

	require.NoError(t, err)
	assert.Equal(t, "custom/seeds.yaml", path)
}
