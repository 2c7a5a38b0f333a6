// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

// Iterator - lazy in-order walk over the tree
//
// the tree has no parent pointers so the pending path is held on an
// explicit stack of at most tree-height nodes; restart by requesting
// a fresh iterator.  Mutating the tree invalidates the iterator.
type Iterator struct {
	stack   []*Node
	reverse bool
}

// Iterate - create an iterator yielding nodes in ascending key order,
// or descending order if reverse is set
//
// an empty tree yields an immediately exhausted iterator
func (tree *Tree) Iterate(reverse bool) *Iterator {
	it := &Iterator{
		stack:   make([]*Node, 0, 16),
		reverse: reverse,
	}
	it.descend(tree.root)
	return it
}

// internal: push the path to the first pending node of a sub-tree
func (it *Iterator) descend(node *Node) {
	for nil != node {
		it.stack = append(it.stack, node)
		if it.reverse {
			node = node.right
		} else {
			node = node.left
		}
	}
}

// Next - return the next node, or nil when the walk is finished
func (it *Iterator) Next() *Node {
	n := len(it.stack)
	if 0 == n {
		return nil
	}
	node := it.stack[n-1]
	it.stack = it.stack[:n-1]
	if it.reverse {
		it.descend(node.left)
	} else {
		it.descend(node.right)
	}
	return node
}

// Keys - all keys in ascending order, or descending if reverse is set
func (tree *Tree) Keys(reverse bool) []Item {
	keys := make([]Item, 0, tree.count)
	for it := tree.Iterate(reverse); ; {
		node := it.Next()
		if nil == node {
			return keys
		}
		keys = append(keys, node.key)
	}
}

// Values - all values in ascending key order, or descending if
// reverse is set
func (tree *Tree) Values(reverse bool) []interface{} {
	values := make([]interface{}, 0, tree.count)
	for it := tree.Iterate(reverse); ; {
		node := it.Next()
		if nil == node {
			return values
		}
		values = append(values, node.value)
	}
}

// Items - all key/value pairs in ascending key order, or descending
// if reverse is set
func (tree *Tree) Items(reverse bool) []KeyValue {
	items := make([]KeyValue, 0, tree.count)
	for it := tree.Iterate(reverse); ; {
		node := it.Next()
		if nil == node {
			return items
		}
		items = append(items, KeyValue{Key: node.key, Value: node.value})
	}
}
