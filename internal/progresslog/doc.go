// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package progresslog provides periodic logging for header verification.

Tests are included to ensure proper functionality.

## Feature Overview

- Maintains cumulative totals about headers between each logging interval
  - Total number of headers
  - Total number of merge-mined headers
  - Total number of rejected headers
- Logs all cumulative data every 10 seconds
- Immediately logs any outstanding data when forced
*/
package progresslog
