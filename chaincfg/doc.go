// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines chain configuration parameters.
//
// In addition to the main Devcoin network there also exists a local
// regression test network.  These networks are incompatible with each other
// and software should handle errors where input intended for one network is
// used on an application instance running on a different network.
//
// For main packages, a (typically global) var may be assigned the result of
// one of the standard Params functions for use as the application's "active"
// network.  The parameters are then passed to every function that decodes or
// validates merge-mined headers.
//
//	package main
//
//	import (
//		"flag"
//		"fmt"
//
//		"github.com/devcoin/dvcd/auxpow"
//		"github.com/devcoin/dvcd/chaincfg"
//	)
//
//	func main() {
//		var regnet = flag.Bool("regnet", false, "operate on the regression test network")
//		flag.Parse()
//
//		// By default (without -regnet), use mainnet.
//		var chainParams = chaincfg.MainNetParams()
//
//		// Modify active network parameters if operating on regnet.
//		if *regnet {
//			chainParams = chaincfg.RegNetParams()
//		}
//
//		// later...
//
//		batch, err := auxpow.ParseHeaderBatch(chainParams, msgPayload)
//		if err != nil {
//			fmt.Println(err)
//			return
//		}
//		fmt.Println(len(batch.BlockHeaders()))
//	}
//
// If an application does not use one of the standard Devcoin networks, a new
// Params struct may be created which defines the parameters for the
// non-standard network.
package chaincfg
