// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/aatree"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// key type for the tree
type stringItem string

// Compare - string ordering for the tree interface
func (s stringItem) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(stringItem)))
}

func (s stringItem) String() string {
	return string(s)
}

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "reverse", HasArg: getoptions.NO_ARGUMENT, Short: 'r'},
		{Long: "tree", HasArg: getoptions.NO_ARGUMENT, Short: 't'},
		{Long: "delete", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || (0 == len(arguments) && 0 == len(options["file"])) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--reverse] [--tree] [--delete=KEY] [--file=FILE] key=value…", program)
	}

	verbose := len(options["verbose"]) > 0
	reverse := len(options["reverse"]) > 0
	asTree := len(options["tree"]) > 0

	logging := logger.Configuration{
		Directory: ".",
		File:      "aatree-dump.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	tree := aatree.New()

	for _, fileName := range options["file"] {
		if err := loadFile(tree, fileName); nil != err {
			exitwithstatus.Message("%s: cannot load file: %q  error: %s", program, fileName, err)
		}
	}

	for _, argument := range arguments {
		key, value := splitPair(argument)
		tree.Insert(stringItem(key), value)
	}

	for _, key := range options["delete"] {
		if nil == tree.Delete(stringItem(key)) {
			fmt.Printf("no such key: %q\n", key)
		}
	}

	if verbose {
		fmt.Printf("entries: %d  height: %d\n", tree.Count(), tree.Height())
	}

	if asTree {
		depth := tree.Print(verbose)
		if verbose {
			fmt.Printf("depth: %d\n", depth)
		}
		return
	}

	for it := tree.Iterate(reverse); ; {
		node := it.Next()
		if nil == node {
			break
		}
		fmt.Printf("%v → %v\n", node.Key(), node.Value())
	}
}

// read key=value lines from a file, blank lines and '#' comments are
// skipped
func loadFile(tree *aatree.Tree, fileName string) error {
	f, err := os.Open(fileName)
	if nil != err {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}
		key, value := splitPair(line)
		tree.Insert(stringItem(key), value)
	}
	return scanner.Err()
}

// split "key=value"; a missing '=' stores the whole text as key with
// an empty value
func splitPair(s string) (string, string) {
	i := strings.IndexByte(s, '=')
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}
