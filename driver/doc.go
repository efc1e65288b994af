// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package driver - apply a sequence of inserts and deletes to a tree,
// logging each step and optionally rendering and checking the tree
// after it
package driver
