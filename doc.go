// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package aatree - an ordered map backed by an Andersson (AA) balanced
// binary search tree
//
// An AA tree is a simplification of the red-black tree: instead of a
// colour, each node carries a positive integer "level" and the only
// permitted horizontal link (child at the same level as its parent) is
// a single right link.  Rebalancing after insert and delete reduces to
// two local O(1) operations, skew and split, re-applied bottom-up
// along the modified path.
//
// The following invariants hold after every operation:
//
//  1. the level of every leaf node is one
//  2. the level of every left child is exactly one less than that of
//     its parent
//  3. the level of every right child is equal to or one less than that
//     of its parent
//  4. the level of every right grandchild is strictly less than that
//     of its grandparent
//  5. every node of level greater than one has two children
//
// Keys are unique; inserting an existing key overwrites its value in
// place.  Keys only need to implement the Compare function to provide
// a strict total order.
//
// In addition to tree order the map remembers the order in which keys
// were first inserted; this auxiliary order drives Copy and String and
// plays no part in balancing.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The base algorithm was described by Arne Andersson in
// "Balanced Search Trees Made Simple" (WADS 1993).
package aatree
