// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scriptConfiguration = `
return {
    check = true,
    insert = { 5, 3, 8, 1, 4 },
    delete = { 3, 42 },
    logging = {
        directory = "log",
        file = "script.log",
        size = 50000,
        count = 10,
    },
}
`

func TestScript(t *testing.T) {
	dir, err := ioutil.TempDir("", "avltree-command")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "avltree.conf")
	require.Nil(t, ioutil.WriteFile(fileName, []byte(scriptConfiguration), 0600), "write configuration")

	var w, e bytes.Buffer
	app := newApp(&w, &e)
	require.Nil(t, app.Run([]string{"avltree", "--config", fileName, "script"}), "run error: %s", e.String())

	result := struct {
		Inserts      int   `json:"inserts"`
		Deletes      int   `json:"deletes"`
		EmptyDeletes int   `json:"empty_deletes"`
		Height       int   `json:"height"`
		Keys         []int `json:"keys"`
	}{}
	require.Nil(t, json.Unmarshal(w.Bytes(), &result), "output: %s", w.String())

	assert.Equal(t, 5, result.Inserts, "inserts")
	assert.Equal(t, 2, result.Deletes, "deletes")
	assert.Equal(t, 0, result.EmptyDeletes, "empty deletes")
	assert.Equal(t, 3, result.Height, "height")
	assert.Equal(t, []int{1, 4, 5, 8}, result.Keys, "keys")

	_, err = os.Stat(filepath.Join(dir, "log", "script.log"))
	assert.Nil(t, err, "log file not written")
}

const shuffleConfiguration = `
return {
    count = 3,
    seed = 11,
    logging = {
        directory = "log",
        file = "shuffle.log",
        size = 50000,
        count = 10,
    },
}
`

// write a configuration file into a fresh directory
func configure(t *testing.T, text string) (string, string) {
	dir, err := ioutil.TempDir("", "avltree-command")
	require.Nil(t, err, "temp dir")

	fileName := filepath.Join(dir, "avltree.conf")
	require.Nil(t, ioutil.WriteFile(fileName, []byte(text), 0600), "write configuration")
	return dir, fileName
}

func TestShuffle(t *testing.T) {
	dir, fileName := configure(t, shuffleConfiguration)
	defer os.RemoveAll(dir)

	var w, e bytes.Buffer
	app := newApp(&w, &e)
	arguments := []string{"avltree", "--config", fileName, "shuffle", "--count", "50", "--seed", "3", "--check"}
	require.Nil(t, app.Run(arguments), "run error: %s", e.String())

	result := struct {
		Inserts      int   `json:"inserts"`
		Deletes      int   `json:"deletes"`
		EmptyDeletes int   `json:"empty_deletes"`
		Height       int   `json:"height"`
		Keys         []int `json:"keys"`
	}{}
	require.Nil(t, json.Unmarshal(w.Bytes(), &result), "output: %s", w.String())

	assert.Equal(t, 50, result.Inserts, "flag count overrides configuration")
	assert.Equal(t, 50, result.Deletes, "deletes")
	assert.Equal(t, 0, result.EmptyDeletes, "empty deletes")
	assert.Equal(t, 0, result.Height, "height after deleting every key")
	assert.Empty(t, result.Keys, "keys left")

	_, err := os.Stat(filepath.Join(dir, "log", "shuffle.log"))
	assert.Nil(t, err, "log file not written")
}

func TestShuffleDisplay(t *testing.T) {
	dir, fileName := configure(t, shuffleConfiguration)
	defer os.RemoveAll(dir)

	var w, e bytes.Buffer
	app := newApp(&w, &e)
	require.Nil(t, app.Run([]string{"avltree", "--config", fileName, "shuffle", "--display"}), "run error: %s", e.String())

	// six steps are rendered, the final empty tree has no separator
	assert.Equal(t, 5, strings.Count(w.String(), "*************************************\n"), "renderings: %s", w.String())
	assert.Contains(t, w.String(), `"inserts": 3`, "summary from configuration count")
}

func TestDot(t *testing.T) {
	dir, fileName := configure(t, shuffleConfiguration)
	defer os.RemoveAll(dir)

	var w, e bytes.Buffer
	app := newApp(&w, &e)
	require.Nil(t, app.Run([]string{"avltree", "--config", fileName, "dot", "--count", "7"}), "run error: %s", e.String())

	out := w.String()
	assert.True(t, strings.HasPrefix(out, "digraph"), "not a directed graph: %s", out)
	for _, label := range []string{`"0 (h `, `"6 (h `, `"3 (h `} {
		assert.Contains(t, out, label, "missing node")
	}
}

func TestVersion(t *testing.T) {
	var w, e bytes.Buffer
	app := newApp(&w, &e)
	require.Nil(t, app.Run([]string{"avltree", "version"}), "run error")
	assert.Equal(t, version+"\n", w.String(), "version output")
}
