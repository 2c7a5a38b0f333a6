// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

import (
	"fmt"
	"strings"
)

// KeyValue - a single key/value pair for bulk operations
type KeyValue struct {
	Key   Item
	Value interface{}
}

// Tree - type to hold the root node of a tree
//
// order records keys by first insertion; it supports Copy and String
// and is never consulted by the balancing algorithm.
type Tree struct {
	root  *Node
	count int
	order []Item
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// NewFrom - create a tree populated from a single source
//
// the source is either a map[Item]interface{} or a []KeyValue sequence
// and is applied via repeated Insert
func NewFrom(items interface{}) (*Tree, error) {
	tree := New()
	if err := tree.Update(items); nil != err {
		return nil, err
	}
	return tree, nil
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of entries currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
//
// read-only use by callers for diagnostics; mutating the node links
// externally is undefined behaviour
func (tree *Tree) Root() *Node {
	return tree.root
}

// Clear - empty the tree, releasing every node
func (tree *Tree) Clear() {
	clearNode(tree.root)
	tree.root = nil
	tree.count = 0
	tree.order = nil
}

// internal: post-order release of a sub-tree into the node pool
func clearNode(node *Node) {
	if nil == node {
		return
	}
	clearNode(node.left)
	clearNode(node.right)
	freeNode(node)
}

// String - render the pairs in first-insertion order
func (tree *Tree) String() string {
	s := make([]string, 0, tree.count)
	for _, key := range tree.order {
		if node := search(key, tree.root); nil != node {
			s = append(s, fmt.Sprintf("(%v, %v)", node.key, node.value))
		}
	}
	return "Tree([" + strings.Join(s, ", ") + "])"
}

// internal: drop one key from the insertion-order list
//
// linear scan; removal is not on the hot path
func (tree *Tree) removeOrder(key Item) {
	for i, k := range tree.order {
		if 0 == k.Compare(key) {
			copy(tree.order[i:], tree.order[i+1:])
			tree.order[len(tree.order)-1] = nil
			tree.order = tree.order[:len(tree.order)-1]
			return
		}
	}
}
