// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

import (
	"fmt"
)

// CheckInvariants - verify the AA-tree level rules and key ordering
//
// checks, for every node:
//  1. a leaf has level one
//  2. a left child is exactly one level below its parent
//  3. a right child is at most one level below its parent
//  4. a right grandchild is strictly below its grandparent
//  5. a node above level one has two children
//
// and that an in-order walk yields strictly ascending keys
func (tree *Tree) CheckInvariants() bool {
	if !checkLevels(tree.root) {
		return false
	}
	return checkOrder(tree)
}

// internal: level rule checker
func checkLevels(p *Node) bool {
	if nil == p {
		return true
	}
	if nil == p.left && nil == p.right && 1 != p.level {
		fmt.Printf("leaf level not 1 at node: %v  level: %d\n", p.key, p.level)
		return false
	}
	if nil != p.left && p.left.level != p.level-1 {
		fmt.Printf("left child level not parent-1 at node: %v  %d/%d\n", p.key, p.left.level, p.level)
		return false
	}
	if nil != p.right && p.right.level != p.level && p.right.level != p.level-1 {
		fmt.Printf("right child level invalid at node: %v  %d/%d\n", p.key, p.right.level, p.level)
		return false
	}
	if nil != p.right && nil != p.right.right && p.right.right.level >= p.level {
		fmt.Printf("right grandchild level not below grandparent at node: %v\n", p.key)
		return false
	}
	if p.level > 1 && (nil == p.left || nil == p.right) {
		fmt.Printf("node above level 1 missing a child at node: %v\n", p.key)
		return false
	}
	if !checkLevels(p.left) {
		return false
	}
	return checkLevels(p.right)
}

// internal: strict ascending key order
func checkOrder(tree *Tree) bool {
	it := tree.Iterate(false)
	prev := it.Next()
	if nil == prev {
		return true
	}
	for node := it.Next(); nil != node; node = it.Next() {
		if prev.key.Compare(node.key) >= 0 {
			fmt.Printf("keys out of order: %v before %v\n", prev.key, node.key)
			return false
		}
		prev = node
	}
	return true
}

// CheckCounts - verify the entry count against the actual node count
// and the insertion-order list
func (tree *Tree) CheckCounts() bool {
	n := countNodes(tree.root)
	if n != tree.count {
		fmt.Printf("count mismatch: counted: %d  recorded: %d\n", n, tree.count)
		return false
	}
	if n != len(tree.order) {
		fmt.Printf("order list mismatch: counted: %d  listed: %d\n", n, len(tree.order))
		return false
	}
	return true
}

func countNodes(p *Node) int {
	if nil == p {
		return 0
	}
	return 1 + countNodes(p.left) + countNodes(p.right)
}
