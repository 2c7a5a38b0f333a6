// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

// Get - fetch the value stored under a key
//
// returns nil for an absent key; use Has or Search when nil is a
// legitimate stored value
func (tree *Tree) Get(key Item) interface{} {
	node := search(key, tree.root)
	if nil == node {
		return nil
	}
	return node.value
}

// Has - true if the key is present in the tree
func (tree *Tree) Has(key Item) bool {
	return nil != search(key, tree.root)
}
