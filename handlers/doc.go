// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handlers for the Pollwave pages.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - AuthHandler: signup, login, logout
  - PageHandler: landing page, dashboard, profile
  - PollHandler: poll creation form
  - VoteHandler: vote form submission

# Flow

All pages are server-rendered. Form posts follow the redirect-after-post
pattern: successful mutations redirect to /dashboard (login lands on
/profile, matching the original flow), while validation and auth failures
re-render the submitting form with an error message.

Poll mutations go through voting.Engine, never straight to the store, so
every vote and new poll is also broadcast on the live channel.
*/
package handlers
