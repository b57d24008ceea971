// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The Bitcoin Global developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "github.com/btcsuite/btclog"

// log is this package's library-style logger, following the same
// convention every btcsuite package uses: silent by default, wired up
// by whatever application imports the package via UseLogger.
var log = btclog.Disabled

// UseLogger sets the package-wide logger used by
// updateActivationParametersFromArgs. Call this before Select if you
// want to see which regtest activation parameters were overridden.
func UseLogger(logger btclog.Logger) {
	log = logger
}
