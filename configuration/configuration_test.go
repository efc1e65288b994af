// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

const testConfiguration = `
local base = "logs"
return {
    display = true,
    check = true,
    count = 25,
    seed = 99,
    insert = { 5, 3, 8, 1 },
    delete = { 3 },
    logging = {
        directory = base,
        file = "test.log",
        size = 2048,
        count = 3,
        levels = { avl = "trace" },
    },
}
`

func writeFile(t *testing.T, content string) string {
	dir, err := ioutil.TempDir("", "avltree-configuration")
	require.Nil(t, err, "temp dir")
	t.Cleanup(func() { os.RemoveAll(dir) })

	fileName := filepath.Join(dir, "avltree.conf")
	require.Nil(t, ioutil.WriteFile(fileName, []byte(content), 0600), "write configuration")
	return fileName
}

func TestGetConfiguration(t *testing.T) {
	fileName := writeFile(t, testConfiguration)

	c, err := configuration.GetConfiguration(fileName)
	require.Nil(t, err, "parse error")

	assert.True(t, c.Display, "display")
	assert.True(t, c.Check, "check")
	assert.Equal(t, 25, c.Count, "count")
	assert.Equal(t, uint64(99), c.Seed, "seed")
	assert.Equal(t, []int{5, 3, 8, 1}, c.Insert, "insert list")
	assert.Equal(t, []int{3}, c.Delete, "delete list")

	assert.Equal(t, filepath.Join(filepath.Dir(fileName), "logs"), c.Logging.Directory, "log directory")
	assert.Equal(t, "test.log", c.Logging.File, "log file")
	assert.Equal(t, 2048, c.Logging.Size, "log size")
	assert.Equal(t, 3, c.Logging.Count, "log count")
	assert.Equal(t, "trace", c.Logging.Levels["avl"], "avl level")
	assert.Equal(t, "info", c.Logging.Levels[logger.DefaultTag], "default level kept")
}

func TestGetConfigurationDefaults(t *testing.T) {
	fileName := writeFile(t, "return {}")

	c, err := configuration.GetConfiguration(fileName)
	require.Nil(t, err, "parse error")

	assert.False(t, c.Display, "display")
	assert.Equal(t, 10, c.Count, "count")
	assert.Equal(t, uint64(1), c.Seed, "seed")
	assert.Empty(t, c.Insert, "insert list")
	assert.Equal(t, filepath.Join(filepath.Dir(fileName), "log"), c.Logging.Directory, "log directory")
	assert.Equal(t, "avltree.log", c.Logging.File, "log file")
}

func TestNotATable(t *testing.T) {
	fileName := writeFile(t, "return 42")

	_, err := configuration.GetConfiguration(fileName)
	assert.Equal(t, fault.ErrMissingConfiguration, err, "wrong error")
}

func TestLuaError(t *testing.T) {
	fileName := writeFile(t, "return {")

	_, err := configuration.GetConfiguration(fileName)
	assert.NotNil(t, err, "syntax error not reported")
}

func TestInvalidStructPointer(t *testing.T) {
	fileName := writeFile(t, "return {}")

	var c configuration.Configuration
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile(fileName, c), "struct value")

	n := 0
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile(fileName, &n), "pointer to int")
}
