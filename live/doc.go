// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package live is the live-update registry and its WebSocket transport.

Registry tracks the currently connected clients and provides best-effort
fan-out of vote and newPoll events. One bad connection never aborts a
broadcast: a failed send drops only that client.

Handler serves GET /ws. Identity is resolved from the session cookie at
handshake and carried on the connection for its whole lifetime; inbound
vote messages from unauthenticated connections are dropped (and logged)
unless anonymous live voting is explicitly enabled.

The connected-client set is process memory only and is rebuilt from
scratch on restart - clients simply reconnect.
*/
package live
