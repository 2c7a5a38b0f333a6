// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

// Copy - shallow copy of the tree
//
// keys are re-inserted in first-insertion order, so the copy carries
// the same entries and the same auxiliary order but not necessarily
// the same physical shape; values are shared, not cloned.  Subsequent
// mutation of either tree leaves the other unchanged.
func (tree *Tree) Copy() *Tree {
	copyTree := New()
	for _, key := range tree.order {
		if node := search(key, tree.root); nil != node {
			copyTree.Insert(node.key, node.value)
		}
	}
	return copyTree
}
