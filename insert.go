// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

// Insert - insert a new entry into the tree
//
// if the key already exists its value is overwritten in place and the
// entry count is unchanged; returns true if a new node was added
func (tree *Tree) Insert(key Item, value interface{}) bool {
	added := false
	tree.root, added = insert(key, value, tree.root)
	if added {
		tree.count += 1
		tree.order = append(tree.order, key)
	}
	return added
}

// internal routine for insert
//
// normal binary tree insertion, then skew and split on the way back
// up; whether or not a rotation occurs is determined inside skew and
// split
func insert(key Item, value interface{}, p *Node) (*Node, bool) {
	if nil == p {
		return newNode(key, value), true
	}
	added := false
	switch p.key.Compare(key) {
	case +1: // p.key > key
		p.left, added = insert(key, value, p.left)
	case -1: // p.key < key
		p.right, added = insert(key, value, p.right)
	default:
		p.value = value
	}
	p = skew(p)
	p = split(p)
	return p, added
}

// Update - bulk insert from zero or more sources
//
// each source is either a map[Item]interface{} or a []KeyValue
// sequence; sources are applied in argument order and, for a
// sequence, in element order
func (tree *Tree) Update(sources ...interface{}) error {
	for _, source := range sources {
		switch items := source.(type) {
		case map[Item]interface{}:
			for key, value := range items {
				tree.Insert(key, value)
			}
		case []KeyValue:
			for _, item := range items {
				tree.Insert(item.Key, item.Value)
			}
		default:
			return ErrInvalidUpdateSource
		}
	}
	return nil
}
