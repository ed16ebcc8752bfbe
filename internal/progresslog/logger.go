// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package progresslog

import (
	"sync"
	"time"

	"github.com/decred/slog"
	"github.com/devcoin/dvcd/wire"
)

// pickNoun returns the singular or plural form of a noun depending on the
// provided count.
func pickNoun(n uint64, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// Logger provides periodic logging of progress towards some action such as
// verifying the headers of a chain.
type Logger struct {
	sync.Mutex
	subsystemLogger slog.Logger
	progressAction  string

	// lastLogTime tracks the last time a log statement was shown.
	lastLogTime time.Time

	// These fields accumulate information about headers between log
	// statements.
	receivedHeaders    uint64
	receivedMergeMined uint64
	receivedRejected   uint64
}

// New returns a new header progress logger.
func New(progressAction string, logger slog.Logger) *Logger {
	return &Logger{
		lastLogTime:     time.Now(),
		progressAction:  progressAction,
		subsystemLogger: logger,
	}
}

// LogProgress accumulates details for the provided header and periodically
// (every 10 seconds) logs an information message to show progress to the user
// along with duration and totals included.
//
// The force flag may be used to force a log message to be shown regardless of
// the time the last one was shown.
//
// The progress message is templated as follows:
//  {progressAction} {numProcessed} {headers|header} in the last {timePeriod}
//  ({numMergeMined} merge-mined, {numRejected} {rejections|rejection},
//  {lastHeaderTimeStamp})
func (l *Logger) LogProgress(header *wire.BlockHeader, rejected, forceLog bool) {
	l.Lock()
	defer l.Unlock()

	l.receivedHeaders++
	if header.IsAuxPow() {
		l.receivedMergeMined++
	}
	if rejected {
		l.receivedRejected++
	}
	now := time.Now()
	duration := now.Sub(l.lastLogTime)
	if !forceLog && duration < time.Second*10 {
		return
	}

	l.subsystemLogger.Infof("%s %d %s in the last %0.2fs (%d merge-mined, "+
		"%d %s, %s)", l.progressAction,
		l.receivedHeaders, pickNoun(l.receivedHeaders, "header", "headers"),
		duration.Seconds(), l.receivedMergeMined,
		l.receivedRejected, pickNoun(l.receivedRejected, "rejection", "rejections"),
		header.Timestamp)

	l.receivedHeaders = 0
	l.receivedMergeMined = 0
	l.receivedRejected = 0
	l.lastLogTime = now
}

// SetLastLogTime updates the last time data was logged to the provided time.
func (l *Logger) SetLastLogTime(time time.Time) {
	l.Lock()
	l.lastLogTime = time
	l.Unlock()
}
