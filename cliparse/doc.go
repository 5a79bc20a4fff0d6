// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags, environment variables
and an optional .env file.

# Configuration Sources

Precedence, highest first:

 1. CLI flags
 2. Environment variables
 3. Variables from the env file (default .env, missing file ignored)
 4. Built-in defaults

# Settings

	Flag         Env              Default
	-p           PORT             8088
	-u           PREDICT_URL      (required)
	-timeout     PREDICT_TIMEOUT  10s
	-rate        RATE_LIMIT       2 (per second per client, 0 disables)
	-burst       RATE_BURST       5
	-log-level   LOG_LEVEL        info
	-trace       TRACE_STDOUT     false
	-env-file    ENV_FILE         .env

# Usage

Standalone:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

With cobra, graft the flag set onto a command and finalize in RunE:

	var cfg cliparse.Config
	cmd.Flags().AddGoFlagSet(cliparse.NewFlagSet(&cfg))
	...
	err := cliparse.Finalize(&cfg, cmd.Flags().Changed)
*/
package cliparse
