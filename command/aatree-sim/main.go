// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// aatree-sim - randomised insert/delete soak for the aatree package
//
// runs the configured number of insert/delete cycles against a tree,
// verifying the balancing invariants and the entry count after every
// mutation, with a plain Go map as the reference.
package main

import (
	"math/rand"

	"github.com/bitmark-inc/aatree"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// key type for the tree
type intItem int

// Compare - integer ordering for the tree interface
func (n intItem) Compare(x interface{}) int {
	m := x.(intItem)
	switch {
	case n < m:
		return -1
	case n > m:
		return +1
	default:
		return 0
	}
}

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, _, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 1 != len(options["config-file"]) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] --config-file=FILE", program)
	}

	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")

	sim := theConfiguration.Simulation
	log.Infof("seed: %d  key range: %d  insertions: %d  deletions: %d  cycles: %d",
		sim.Seed, sim.KeyRange, sim.Insertions, sim.Deletions, sim.Cycles)

	rng := rand.New(rand.NewSource(sim.Seed))
	tree := aatree.New()
	reference := make(map[intItem]int)

	for cycle := 1; cycle <= sim.Cycles; cycle += 1 {

		for i := 0; i < sim.Insertions; i += 1 {
			key := intItem(rng.Intn(sim.KeyRange))
			value := rng.Int()
			tree.Insert(key, value)
			reference[key] = value
			verify(log, tree, "insert", key)
		}
		log.Infof("cycle: %d  after insert: entries: %d  height: %d", cycle, tree.Count(), tree.Height())

		for i := 0; i < sim.Deletions; i += 1 {
			key := intItem(rng.Intn(sim.KeyRange))
			removed := tree.Delete(key)
			if expected, ok := reference[key]; ok {
				if removed != expected {
					log.Criticalf("delete: %v returned: %v  expected: %v", key, removed, expected)
					exitwithstatus.Message("%s: delete returned wrong value for key: %v", program, key)
				}
				delete(reference, key)
			} else if nil != removed {
				log.Criticalf("delete of absent key: %v returned: %v", key, removed)
				exitwithstatus.Message("%s: delete of absent key: %v returned a value", program, key)
			}
			verify(log, tree, "delete", key)
		}
		log.Infof("cycle: %d  after delete: entries: %d  height: %d", cycle, tree.Count(), tree.Height())

		if tree.Count() != len(reference) {
			log.Criticalf("entry count: %d  reference count: %d", tree.Count(), len(reference))
			exitwithstatus.Message("%s: entry count diverged from reference", program)
		}

		for key, value := range reference {
			if tree.Get(key) != value {
				log.Criticalf("get: %v returned: %v  expected: %v", key, tree.Get(key), value)
				exitwithstatus.Message("%s: stored value diverged from reference", program)
			}
		}
	}

	tree.Clear()
	if !tree.IsEmpty() || 0 != tree.Count() {
		exitwithstatus.Message("%s: clear left entries behind", program)
	}
}

// invariant and count verification after one mutation
func verify(log *logger.L, tree *aatree.Tree, operation string, key intItem) {
	if !tree.CheckInvariants() {
		tree.Print(true)
		log.Criticalf("invariants violated after %s of: %v", operation, key)
		exitwithstatus.Message("aatree-sim: invariants violated after %s of: %v", operation, key)
	}
	if !tree.CheckCounts() {
		log.Criticalf("counts inconsistent after %s of: %v", operation, key)
		exitwithstatus.Message("aatree-sim: counts inconsistent after %s of: %v", operation, key)
	}
}
