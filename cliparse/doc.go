// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables. Flags win; env variables fill the gaps.

	-p / PORT                             server port (default 3000)
	-d / DATABASE_URL                     database URL (required)
	-t / DATABASE_TYPE                    sqlite (default) or postgres
	-allow-anon-votes / ALLOW_ANONYMOUS_VOTES
	                                      accept unauthenticated live votes
*/
package cliparse
