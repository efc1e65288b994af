// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.
//
// The file must return a table, for example:
//
//	return {
//	    display = true,
//	    insert = { 5, 3, 8, 1 },
//	    delete = { 3 },
//	    logging = {
//	        directory = "log",
//	        file = "avltree.log",
//	        levels = { DEFAULT = "info", avl = "debug" },
//	    },
//	}
package configuration
