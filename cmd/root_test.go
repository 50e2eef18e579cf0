package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/config"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"api", "bot", "migrate", "keys"})

	flag := root.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "config.toml", flag.DefValue)
}

func TestKeysCmd(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"keys"})
	require.NoError(t, root.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "export ROOMBOOK_WEB_HASH_KEY="))
	assert.True(t, strings.HasPrefix(lines[1], "export ROOMBOOK_WEB_BLOCK_KEY="))

	hash := strings.SplitN(lines[0], "=", 2)[1]
	block := strings.SplitN(lines[1], "=", 2)[1]
	assert.Len(t, hash, 64)
	assert.Len(t, block, 32)

	cfg := &config.Config{Web: config.WebConfig{HashKey: hash, BlockKey: block}}
	assert.NoError(t, cfg.ValidateWeb())
}

func TestMigrateCmd_RejectsUnknownAction(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"migrate", "sideways"})

	assert.Error(t, root.Execute())
}
