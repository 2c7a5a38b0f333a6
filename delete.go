// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

// deletion bookkeeping threaded through the recursive descent by
// value, so the recursion carries no shared mutable state
type removal struct {
	last      *Node       // most recently visited node
	candidate *Node       // deepest node on the path with key ≤ search key
	found     *Node       // node spliced out of the tree
	value     interface{} // payload of the removed entry
}

// Delete - remove one entry from the tree
//
// returns the removed value, or nil if the key is not present; absent
// keys cause no structural change
func (tree *Tree) Delete(key Item) interface{} {
	if nil == tree.root {
		return nil
	}
	root, st := deleteNode(key, tree.root, removal{})
	tree.root = root
	if nil == st.found {
		return nil
	}
	freeNode(st.found)
	tree.count -= 1
	tree.removeOrder(key)
	return st.value
}

// DeleteItems - remove several entries, ignoring absent keys
func (tree *Tree) DeleteItems(keys ...Item) {
	for _, key := range keys {
		tree.Delete(key)
	}
}

// internal delete routine
//
// descends without comparing for exact equality: the candidate is
// updated on every "not less" step, so when the bottom of the path is
// reached the candidate holds the node to delete and the bottom node
// is its in-order successor.  The successor's payload is copied into
// the candidate and the successor node is spliced out by its right
// sub-tree.
func deleteNode(key Item, p *Node, st removal) (*Node, removal) {
	if nil == p {
		return nil, st
	}
	st.last = p
	if +1 == p.key.Compare(key) { // p.key > key
		p.left, st = deleteNode(key, p.left, st)
	} else {
		st.candidate = p
		p.right, st = deleteNode(key, p.right, st)
	}

	if p == st.last && nil != st.candidate && 0 == st.candidate.key.Compare(key) {
		st.value = st.candidate.value
		st.candidate.key = p.key
		st.candidate.value = p.value
		st.candidate = nil
		st.found = p
		p = p.right
	} else {
		// rebalance: deletion can shorten a branch by more than
		// insertion ever does, so one skew/split pair is not enough
		leftLevel := 0
		rightLevel := 0
		if nil != p.left {
			leftLevel = p.left.level
		}
		if nil != p.right {
			rightLevel = p.right.level
		}
		if leftLevel < p.level-1 || rightLevel < p.level-1 {
			p.level -= 1
			if rightLevel > p.level {
				p.right.level = p.level
			}
			p = skew(p)
			if nil != p.right {
				p.right = skew(p.right)
				if nil != p.right.right {
					p.right.right = skew(p.right.right)
				}
			}
			p = split(p)
			if nil != p.right {
				p.right = split(p.right)
			}
		}
	}
	return p, st
}
