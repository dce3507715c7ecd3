// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the shared types for Pollwave.

# Domain Types

Poll, Option, User, and Session mirror the persisted shapes:

	Poll:   {id, question, options: [{answer, votes}]}
	User:   {id, username, passwordHash} plus a participation set of poll ids
	Session: ephemeral token → user binding, never persisted

Option identity within a poll is its answer text, so the pair
(poll id, answer) addresses exactly one counter.

# Live-Channel Messages

The WebSocket protocol is JSON text frames tagged by a "type" field:

	Client→Server: VoteMessage  {type:"vote", pollId, selectedOption}
	Server→Client: VoteEvent    {type:"vote", pollId, selectedOption, votes}
	Server→Client: NewPollEvent {type:"newPoll", poll}
*/
package models
