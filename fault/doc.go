// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// The classes form a closed set:
//   InvalidError  - malformed record or value (transaction, script, amount)
//   ParseError    - command line misuse, carries its own message
//   NotFoundError - missing external resource (configuration file)
//   ProcessError  - failure of a surrounding process step
package fault
