// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting is the vote mutation engine.

Both entry points into poll state - the HTTP form handlers and the live
WebSocket channel - call through Engine, which persists the mutation and
then broadcasts the matching event to every connected client. That single
funnel is the consistency contract between stored poll state and the live
client views: a client never sees an event for a mutation that did not
commit, and every committed mutation produces exactly one event.

# Operations

	result, err := engine.ApplyVote(pollID, selectedOption, userID)
	poll, err := engine.CreatePoll(question, answers, createdBy)

ApplyVote errors distinguish ErrPollNotFound (HTTP 404) from
ErrOptionNotFound (logged no-op, matching the form-redirect behavior).
CreatePoll returns *ValidationError for user-correctable input problems;
anything else is a storage failure.
*/
package voting
