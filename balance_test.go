// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

import (
	"testing"
)

// white-box tests for the rebalancing primitives

type testKey int

func (n testKey) Compare(x interface{}) int {
	m := x.(testKey)
	switch {
	case n < m:
		return -1
	case n > m:
		return +1
	default:
		return 0
	}
}

func TestSkewFixesLeftHorizontalLink(t *testing.T) {
	// b ← a with both at level 1: an illegal left horizontal link
	b := &Node{key: testKey(1), level: 1}
	a := &Node{key: testKey(2), level: 1, left: b}

	p := skew(a)
	if p != b {
		t.Fatalf("skew root: actual: %v  expected: %v", p.key, b.key)
	}
	if b.right != a {
		t.Fatal("old root not rotated to right child")
	}
	if nil != a.left {
		t.Fatal("left link not taken over")
	}
	if 1 != a.level || 1 != b.level {
		t.Fatal("skew changed a level")
	}
}

func TestSkewMovesInnerSubtree(t *testing.T) {
	//  b ← a with b holding a right sub-tree m: m must become a's left
	m := &Node{key: testKey(3), level: 1}
	b := &Node{key: testKey(1), level: 2, right: m, left: &Node{key: testKey(0), level: 1}}
	a := &Node{key: testKey(5), level: 2, left: b, right: &Node{key: testKey(9), level: 1}}

	p := skew(a)
	if p != b {
		t.Fatalf("skew root: actual: %v  expected: %v", p.key, b.key)
	}
	if a.left != m {
		t.Fatal("inner sub-tree not moved")
	}
	if b.right != a {
		t.Fatal("old root not rotated to right child")
	}
}

func TestSkewIsNoopOnValidNodes(t *testing.T) {
	if nil != skew(nil) {
		t.Fatal("skew of nil")
	}

	leaf := &Node{key: testKey(1), level: 1}
	if p := skew(leaf); p != leaf {
		t.Fatal("skew changed a leaf")
	}

	// valid: left child exactly one level below
	l := &Node{key: testKey(1), level: 1}
	r := &Node{key: testKey(9), level: 1}
	root := &Node{key: testKey(5), level: 2, left: l, right: r}
	if p := skew(root); p != root || root.left != l || root.right != r {
		t.Fatal("skew changed a valid node")
	}
}

func TestSplitFixesDoubleRightHorizontalLink(t *testing.T) {
	// x → y → z all at level 1: two consecutive right horizontal links
	z := &Node{key: testKey(3), level: 1}
	y := &Node{key: testKey(2), level: 1, right: z}
	x := &Node{key: testKey(1), level: 1, right: y}

	p := split(x)
	if p != y {
		t.Fatalf("split root: actual: %v  expected: %v", p.key, y.key)
	}
	if 2 != y.level {
		t.Fatalf("middle node level: actual: %d  expected: 2", y.level)
	}
	if y.left != x || y.right != z {
		t.Fatal("children not rearranged")
	}
	if nil != x.right {
		t.Fatal("middle node's left link not taken over")
	}
	if 1 != x.level || 1 != z.level {
		t.Fatal("split changed an outer level")
	}
}

func TestSplitIsNoopOnValidNodes(t *testing.T) {
	if nil != split(nil) {
		t.Fatal("split of nil")
	}

	leaf := &Node{key: testKey(1), level: 1}
	if p := split(leaf); p != leaf {
		t.Fatal("split changed a leaf")
	}

	// a single right horizontal link is legal
	r := &Node{key: testKey(9), level: 1}
	root := &Node{key: testKey(5), level: 1, right: r}
	if p := split(root); p != root || root.right != r {
		t.Fatal("split changed a valid single horizontal link")
	}
}

// applying skew or split anywhere in a valid tree must change nothing
func TestSkewSplitIdempotentOnValidTree(t *testing.T) {
	tree := New()
	for i := 0; i < 64; i += 1 {
		tree.Insert(testKey(i*37%64), i)
	}
	if !tree.CheckInvariants() {
		t.Fatal("inconsistent tree")
	}

	tree.Traverse(PrefixLeftRight, func(node *Node) {
		l := node.left
		r := node.right
		lv := node.level
		if p := skew(node); p != node || node.left != l || node.right != r || node.level != lv {
			t.Fatalf("skew changed valid node: %v", node.key)
		}
		if p := split(node); p != node || node.left != l || node.right != r || node.level != lv {
			t.Fatalf("split changed valid node: %v", node.key)
		}
	})
}

// a freed node returns to the pool and is handed out again
func TestAllocatorRecycle(t *testing.T) {
	n1 := newNode(testKey(1), "one")
	if 1 != n1.level {
		t.Fatalf("new node level: %d", n1.level)
	}
	freeNode(n1)

	n2 := newNode(testKey(2), "two")
	if n1 != n2 {
		t.Fatal("freed node not recycled")
	}
	if nil != n2.left || nil != n2.right {
		t.Fatal("recycled node carries stale links")
	}
	if 1 != n2.level {
		t.Fatalf("recycled node level: %d", n2.level)
	}
	if 0 != n2.key.Compare(testKey(2)) || "two" != n2.value {
		t.Fatal("recycled node carries stale payload")
	}
	freeNode(n2)
}

// the level of a node only rises on insert and only falls on delete
func TestLevelLifecycle(t *testing.T) {
	tree := New()
	for i := 0; i < 15; i += 1 {
		tree.Insert(testKey(i), i)
	}

	rootLevel := tree.root.level
	if rootLevel < 2 {
		t.Fatalf("root level: %d", rootLevel)
	}

	for i := 0; i < 14; i += 1 {
		tree.Delete(testKey(i))
	}
	if 1 != tree.root.level {
		t.Fatalf("single node level: %d", tree.root.level)
	}
}
