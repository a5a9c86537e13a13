// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Database connection string (empty keeps polls in memory)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - AdminUsername: Admin login name (required)
  - AdminPassword / AdminPasswordHash: Admin secret, plain or bcrypt (one required)
  - ParticipantPassword: Shared participant secret (optional)
  - AllowedOrigins: CORS origins (default: *)

# CLI Flags

	-p                    Server port
	-d                    Database URL
	-t                    Database type
	-origins              Allowed CORS origins, comma-separated
	-env-file             Dotenv file to load (default: .env)
	-admin-user           Admin username
	-admin-password       Admin password
	-participant-password Participant password

# Environment Variables

Flags fall back to environment variables:

	PORT                 → -p
	DATABASE_URL         → -d
	DATABASE_TYPE        → -t
	ALLOWED_ORIGINS      → -origins
	ADMIN_USERNAME       → -admin-user
	ADMIN_PASSWORD       → -admin-password
	ADMIN_PASSWORD_HASH  (no flag; bcrypt hashes do not belong on a command line)
	PARTICIPANT_PASSWORD → -participant-password

CLI flags take precedence over environment variables, which take
precedence over the dotenv file. A missing dotenv file is ignored.
*/
package cliparse
