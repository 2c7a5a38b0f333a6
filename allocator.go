// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

import (
	"sync"
)

// Item - a key must implement the Compare function
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Node - a node in the tree
type Node struct {
	left  *Node       // left sub-tree
	right *Node       // right sub-tree
	key   Item        // key part for ordering
	value interface{} // value part for data storage
	level int         // leaf = 1, only a right child may share its parent's level
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Level - read the balance level of a node
func (p *Node) Level() int {
	return p.level
}

// Left - left sub-tree of a node, nil if none
func (p *Node) Left() *Node {
	return p.left
}

// Right - right sub-tree of a node, nil if none
func (p *Node) Right() *Node {
	return p.right
}

// global data for allocator
var m sync.Mutex   // to keep values in sync
var pool *Node     // linked list of reclaimed nodes
var totalNodes int // total nodes created
var freeNodes int  // number of nodes in the pool

// allocate a new level 1 node, reuses reclaimed nodes if any are available
func newNode(key Item, value interface{}) *Node {
	m.Lock()
	if nil == pool {
		if 0 != freeNodes {
			panic("pool corrupt")
		}
		totalNodes += 1
		m.Unlock()
		return &Node{
			key:   key,
			value: value,
			level: 1,
		}
	}
	p := pool
	pool = p.right
	p.key = key
	p.value = value
	p.level = 1
	p.left = nil
	p.right = nil // ensure freelist pointer is cleared
	freeNodes -= 1
	m.Unlock()
	return p
}

// reclaim a node and keep it in a pool
func freeNode(node *Node) {
	m.Lock()
	node.right = pool // use as free list pointer

	node.left = nil
	node.key = nil
	node.value = nil
	node.level = 0
	freeNodes += 1

	pool = node
	m.Unlock()
}
