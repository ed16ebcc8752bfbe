// Copyright (c) 2018-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

// sampleConfigFileContents is a string containing the commented example config
// for auxpowcheck.
const sampleConfigFileContents = `[Application Options]

; ------------------------------------------------------------------------------
; Network settings
; ------------------------------------------------------------------------------

; Check headers of the regression test network instead of the main network.
; regnet=1


; ------------------------------------------------------------------------------
; Verification settings
; ------------------------------------------------------------------------------

; Verify the merkle branches of every auxiliary proof of work even on networks
; that do not require it.
; strictauxpow=1

; Number of verified auxiliary proofs of work to remember so that headers seen
; in several files are only checked once.
; cachesize=4096


; ------------------------------------------------------------------------------
; Input and output
; ------------------------------------------------------------------------------

; Input files contain hex encoded headers messages instead of raw bytes.
; hex=1

; Dump every decoded header along with its auxiliary proof of work.
; dump=1


; ------------------------------------------------------------------------------
; Debug
; ------------------------------------------------------------------------------

; Debug logging level.
; Valid levels are {trace, debug, info, warn, error, critical}
; You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set
; log level for individual subsystems.  Use auxpowcheck --debuglevel=show to
; list available subsystems.
; debuglevel=info

; Directory to log output.
; logdir=~/.auxpowcheck/logs

; Disable file logging.
; nofilelogging=1
`
