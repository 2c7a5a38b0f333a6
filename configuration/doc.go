// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// the file is executed as a Lua program and must leave a table on the
// stack; the table is mapped onto the caller's structure using the
// gluamapper field tags.  Most of base Lua is available such as
// reading files to set key data and getenv to extract environment
// supplied items.
package configuration
