// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	_ = cliparse.LoadEnvFile(".env")
	cfg, err := cliparse.ParseFlags(os.Args[1:])

LoadEnvFile reads a dotenv file into the environment first. Variables
already set in the process environment win over the file.

# CLI Flags

	-p               Server port (default 3318)
	-d               Database URL (default file:popvote.db for sqlite)
	-t               Database type: sqlite or postgres (default sqlite)
	-admin-salt      Admin key salt
	-population      Default population record name (default "default")
	-chamber         Default chamber label (default "Senate")
	-chart-width     Chart width in pixels (default 400)
	-chart-height    Chart height in pixels (default 400)
	-print-admin-key Print the admin key for a scope and exit

# Environment Variables

Flags fall back to environment variables:

	PORT               → -p
	DATABASE_URL       → -d
	DATABASE_TYPE      → -t
	ADMIN_KEY_SALT     → -admin-salt
	DEFAULT_POPULATION → -population
	CHAMBER            → -chamber
	CHART_WIDTH        → -chart-width
	CHART_HEIGHT       → -chart-height

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error when:

  - DATABASE_TYPE is neither sqlite nor postgres
  - postgres is selected without DATABASE_URL
  - a numeric setting does not parse or is negative

An empty ADMIN_KEY_SALT is allowed; the server then rejects every write.
*/
package cliparse
