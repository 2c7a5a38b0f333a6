// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/aatree"
)

// keys {5, 6, 4} build the smallest non-trivial balanced tree:
//
//	  5 (level 2)
//	 / \
//	4   6 (level 1)
//
// which makes all six visit sequences distinct enough to verify by
// hand
func traverseTree(t *testing.T) *aatree.Tree {
	tree := aatree.New()
	for _, k := range []int{5, 6, 4} {
		tree.Insert(intItem(k), k)
	}
	if !tree.CheckInvariants() {
		t.Fatal("inconsistent tree")
	}
	return tree
}

func visitKeys(t *testing.T, tree *aatree.Tree, order aatree.TraverseOrder) []int {
	keys := []int{}
	err := tree.Traverse(order, func(node *aatree.Node) {
		keys = append(keys, int(node.Key().(intItem)))
	})
	assert.NoError(t, err, "traverse failed")
	return keys
}

func TestTraverseOrders(t *testing.T) {
	tree := traverseTree(t)

	expected := map[aatree.TraverseOrder][]int{
		aatree.InfixLeftRight:   {4, 5, 6},
		aatree.InfixRightLeft:   {6, 5, 4},
		aatree.PrefixLeftRight:  {5, 4, 6},
		aatree.PrefixRightLeft:  {5, 6, 4},
		aatree.PostfixLeftRight: {4, 6, 5},
		aatree.PostfixRightLeft: {6, 4, 5},
	}

	for order, keys := range expected {
		assert.Equal(t, keys, visitKeys(t, tree, order), "wrong visit sequence for order %d", order)
	}
}

func TestTraverseInvalidOrder(t *testing.T) {
	tree := traverseTree(t)

	visited := 0
	err := tree.Traverse(aatree.TraverseOrder(17), func(node *aatree.Node) {
		visited += 1
	})
	assert.Equal(t, aatree.ErrInvalidTraverseOrder, err, "unexpected error")
	assert.Equal(t, 0, visited, "visitor ran for an invalid order")

	err = tree.Traverse(aatree.TraverseOrder(-1), func(node *aatree.Node) {
		visited += 1
	})
	assert.Equal(t, aatree.ErrInvalidTraverseOrder, err, "unexpected error")
	assert.Equal(t, 0, visited, "visitor ran for an invalid order")
}

func TestTraverseEmpty(t *testing.T) {
	tree := aatree.New()

	visited := 0
	err := tree.Traverse(aatree.InfixLeftRight, func(node *aatree.Node) {
		visited += 1
	})
	assert.NoError(t, err, "traverse failed")
	assert.Equal(t, 0, visited, "visitor ran on an empty tree")
}

// the default in-order walk must visit every entry exactly once
func TestTraverseComplete(t *testing.T) {
	tree := aatree.New()
	for i := 0; i < 60; i += 1 {
		tree.Insert(intItem(i*13%60), i)
	}

	keys := visitKeys(t, tree, aatree.InfixLeftRight)
	assert.Equal(t, tree.Count(), len(keys), "wrong visit count")
	for i, k := range keys {
		assert.Equal(t, i, k, "wrong key at position %d", i)
	}
}
