// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

// Package lock implements the pin pad controllers behind the lock screens.
//
// Entry asks for an existing pin and reports whether it was correct.
// Creation asks for a new pin, requires it to be repeated and optionally
// persists its digest. Both are plain state machines driven by Event values
// (or the equivalent methods); a renderer reads View after each event and
// never owns any pin state itself.
//
// Controllers are not safe for concurrent use. Each screen builds its own
// controller with its own listener, so several screens can coexist.
package lock
