// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

// TraverseOrder - selects one of the six tree-walk orders
//
// infix visits a node between its sub-trees, prefix before them and
// postfix after them; RightLeft variants walk the right sub-tree
// before the left one
type TraverseOrder int

// the six defined visit sequences
const (
	InfixLeftRight TraverseOrder = iota
	InfixRightLeft
	PrefixLeftRight
	PrefixRightLeft
	PostfixLeftRight
	PostfixRightLeft
)

// Traverse - apply a visitor function to every node in the selected
// order
//
// an unknown order is rejected before any node is visited
func (tree *Tree) Traverse(order TraverseOrder, visit func(*Node)) error {
	if order < InfixLeftRight || order > PostfixRightLeft {
		return ErrInvalidTraverseOrder
	}
	traverse(tree.root, order, visit)
	return nil
}

func traverse(node *Node, order TraverseOrder, visit func(*Node)) {
	if nil == node {
		return
	}
	switch order {
	case InfixLeftRight:
		traverse(node.left, order, visit)
		visit(node)
		traverse(node.right, order, visit)
	case InfixRightLeft:
		traverse(node.right, order, visit)
		visit(node)
		traverse(node.left, order, visit)
	case PrefixLeftRight:
		visit(node)
		traverse(node.left, order, visit)
		traverse(node.right, order, visit)
	case PrefixRightLeft:
		visit(node)
		traverse(node.right, order, visit)
		traverse(node.left, order, visit)
	case PostfixLeftRight:
		traverse(node.left, order, visit)
		traverse(node.right, order, visit)
		visit(node)
	case PostfixRightLeft:
		traverse(node.right, order, visit)
		traverse(node.left, order, visit)
		visit(node)
	}
}
