package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/runvnc/codeclean/rewrite"
)

// test that configs are properly loaded

func TestYamlConfig(t *testing.T) {
	config, err := getConfig("../../testdata/config/sample_config.yaml")
	assert.Nil(t, err)

	assert.True(t, config.Verbose)
	assert.Equal(t, []string{"fmt.Println", "log.Printf"}, config.Clean.Functions)
	assert.True(t, config.Clean.RemoveComments)
	assert.True(t, config.Clean.Recursive)
	assert.Equal(t, "remove", config.Clean.EmptyBlocks)
	assert.Equal(t, []string{"*_test.go"}, config.Clean.FilesToExclude)
	assert.Equal(t, "/tmp/codeclean-backups", config.Backup.Folder)
}

func TestJsonConfig(t *testing.T) {
	config, err := getConfig("../../testdata/config/sample_config.json")
	assert.Nil(t, err)

	assert.Equal(t, []string{"println"}, config.Clean.Functions)
	assert.Equal(t, "keep", config.Clean.EmptyBlocks)
	assert.True(t, config.Backup.Disable)
	assert.Equal(t, []string{"cmd/*.go", "internal/*.go"}, config.Clean.FilesToInclude)
}

func TestConfigDefaults(t *testing.T) {
	config, err := parseConfig([]byte("{}"))
	assert.Nil(t, err)

	assert.Equal(t, defaultFunctions, config.Clean.Functions)
	assert.Equal(t, "pass", config.Clean.EmptyBlocks)
	assert.False(t, config.Backup.Disable)

	assert.Equal(t, defaultConfig(), config)
}

func TestConfigRejectsUnknownPolicy(t *testing.T) {
	_, err := parseConfig([]byte(`{"clean": {"empty_blocks": "explode"}}`))
	assert.NotNil(t, err)
}

func TestTransformOptions(t *testing.T) {
	config := defaultConfig()
	config.Clean.Functions = []string{"debug", "trace.Log"}
	config.Clean.EmptyBlocks = "remove"
	config.Clean.RemoveComments = true

	opts, err := config.transformOptions()
	assert.Nil(t, err)

	assert.Equal(t, rewrite.RemoveConstruct, opts.EmptyBlocks)
	assert.True(t, opts.RemoveComments)
	assert.Equal(t, []string{"debug", "trace.Log"}, opts.Targets.Names())
}

func TestIncludesFilters(t *testing.T) {
	config := defaultConfig()
	config.Clean.FilesToExclude = []string{"*_test.go", "gen"}

	assert.True(t, config.includes("proj", "proj/main.go"))
	assert.False(t, config.includes("proj", "proj/main_test.go"))
	assert.False(t, config.includes("proj", "proj/gen/types.go"))

	config.Clean.FilesToInclude = []string{"cmd/*.go"}
	assert.True(t, config.includes("proj", "proj/cmd/run.go"))
	assert.False(t, config.includes("proj", "proj/main.go"))
}

func TestConsolidateArgsOverrideConfig(t *testing.T) {
	config := defaultConfig()

	opts := &Args{}
	opts.Clean.Functions = "debug,trace.Log"
	opts.Clean.EmptyBlocks = "keep"
	opts.Clean.RemoveComments = true
	opts.Clean.NoBackup = true
	opts.General.Verbose = true

	consolidateArgsIntoConfig(opts, config)

	assert.Equal(t, []string{"debug", "trace.Log"}, config.Clean.Functions)
	assert.Equal(t, "keep", config.Clean.EmptyBlocks)
	assert.True(t, config.Clean.RemoveComments)
	assert.True(t, config.Backup.Disable)
	assert.True(t, config.Verbose)
}
