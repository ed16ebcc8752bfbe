// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/devcoin/dvcd/auxpow"
	"github.com/devcoin/dvcd/internal/progresslog"
	flags "github.com/jessevdk/go-flags"
)

// errRejected is returned by run when at least one header or file failed
// verification.
var errRejected = errors.New("one or more headers were rejected")

// fileStats houses the outcome of checking all headers of a single file.
type fileStats struct {
	headers    int
	mergeMined int
	cached     int
	rejected   int
}

// readHeadersMessage returns the headers message payload stored in the file at
// the provided path.  Hex encoded files may contain arbitrary whitespace.
func readHeadersMessage(path string, isHex bool) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !isHex {
		return data, nil
	}
	return hex.DecodeString(strings.Join(strings.Fields(string(data)), ""))
}

// checkFile decodes the headers message stored in the file at the provided
// path and verifies every header it contains.
func checkFile(cfg *config, verifier *auxpow.HeaderVerifier, progress *progresslog.Logger, path string) (*fileStats, error) {
	payload, err := readHeadersMessage(path, cfg.Hex)
	if err != nil {
		return nil, err
	}
	batch, err := auxpow.ParseHeaderBatch(cfg.params, payload)
	if err != nil {
		return nil, err
	}

	var stats fileStats
	results := verifier.VerifyBatch(batch)
	for i, h := range batch.BlockHeaders() {
		result := &results[i]
		stats.headers++
		if result.MergeMined {
			stats.mergeMined++
		}
		if result.Cached {
			stats.cached++
		}
		if result.Err != nil {
			stats.rejected++
			achkLog.Warnf("Rejected header %d (%v) of %s: %v", i,
				result.Hash, filepath.Base(path), result.Err)
		}
		if cfg.Dump {
			achkLog.Infof("Header %d of %s:\n%s", i, filepath.Base(path),
				spew.Sdump(h.Header()))
			if payload := h.AuxPow(); payload != nil {
				achkLog.Infof("Auxiliary proof of work of header %d:\n%s", i,
					spew.Sdump(payload))
			}
		}

		header := h.Header()
		progress.LogProgress(&header, result.Err != nil,
			i == batch.Len()-1)
	}
	return &stats, nil
}

// run checks every input file and returns errRejected when any of them
// contained a header that failed verification.
func run(ctx context.Context, cfg *config, files []string) error {
	verifier := auxpow.NewHeaderVerifier(cfg.params, cfg.CacheSize)
	progress := progresslog.New("Verified", achkLog)

	achkLog.Infof("Checking %d files on %s", len(files), cfg.params.Name)
	var totals fileStats
	var failedFiles int
	for _, path := range files {
		if shutdownRequested(ctx) {
			break
		}

		stats, err := checkFile(cfg, verifier, progress, path)
		if err != nil {
			achkLog.Errorf("Unable to check %s: %v", path, err)
			failedFiles++
			continue
		}
		achkLog.Debugf("Checked %s: %d headers, %d merge-mined, %d rejected",
			path, stats.headers, stats.mergeMined, stats.rejected)
		totals.headers += stats.headers
		totals.mergeMined += stats.mergeMined
		totals.cached += stats.cached
		totals.rejected += stats.rejected
	}

	achkLog.Infof("Checked %d headers (%d merge-mined, %d rejected, %d "+
		"cached, %0.2f%% cache hit ratio) in %d files, %d unreadable",
		totals.headers, totals.mergeMined, totals.rejected, totals.cached,
		verifier.HitRatio(), len(files), failedFiles)
	if totals.rejected > 0 || failedFiles > 0 {
		return errRejected
	}
	return nil
}

func main() {
	cfg, files, err := loadConfig(os.Args[1:])
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) {
			if e.Type == flags.ErrHelp {
				os.Exit(0)
			}
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}

	if !cfg.NoFileLogging {
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := initLogRotator(logFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	err = run(shutdownListener(), cfg, files)
	if logRotator != nil {
		logRotator.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}
