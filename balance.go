// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

// The two rebalancing primitives.  Both are O(1), purely local and
// idempotent: applied to a node that already satisfies the invariants
// they return it unchanged.  Insert and delete re-apply them bottom-up
// along the modified path only.

// skew - remove a left horizontal link by a right rotation
//
//	  |                    |
//	L ← T        ==>>      L → T
//	 / \   \              /   / \
//	A   B   R            A   B   R
//
// levels are unchanged
func skew(node *Node) *Node {
	if nil == node || nil == node.left || node.left.level != node.level {
		return node
	}
	l := node.left
	node.left = l.right
	l.right = node
	return l
}

// split - remove two consecutive right horizontal links by a left
// rotation, elevating the middle node
//
//	 |                      |
//	 T → R → X    ==>>      R
//	/   /                  / \
//	A  B                  T   X
//	                     / \
//	                    A   B
func split(node *Node) *Node {
	if nil == node || nil == node.right || nil == node.right.right ||
		node.level != node.right.right.level {
		return node
	}
	r := node.right
	node.right = r.left
	r.left = node
	r.level += 1
	return r
}
