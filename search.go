// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

// Search - find the node for a specific key
func (tree *Tree) Search(key Item) *Node {
	return search(key, tree.root)
}

func search(key Item, tree *Node) *Node {
	if nil == tree {
		return nil
	}

	switch tree.key.Compare(key) {
	case +1: // tree.key > key
		return search(key, tree.left)
	case -1: // tree.key < key
		return search(key, tree.right)
	default:
		return tree
	}
}

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return first(tree.root)
}

// internal: lowest node in a sub-tree
func first(tree *Node) *Node {
	if nil == tree {
		return nil
	}
	for nil != tree.left {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return last(tree.root)
}

// internal: highest node in a sub-tree
func last(tree *Node) *Node {
	if nil == tree {
		return nil
	}
	for nil != tree.right {
		tree = tree.right
	}
	return tree
}
