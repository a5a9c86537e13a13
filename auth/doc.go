// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth resolves callers to a role and a participant identity.

# Credentials

Admins log in with a username and password. The password may be given
in plain text or as a bcrypt hash:

	creds := auth.Credentials{
		AdminUsername:     "admin",
		AdminPasswordHash: "$2a$10$...",
	}
	err := creds.Check(auth.RoleAdmin, username, password)

Participants present a single shared password. When no participant
password is configured, anyone may join as a participant.

Plain secrets are compared in constant time.

# Sessions

A successful login creates a session:

	sessions := auth.NewSessions(creds)
	s, err := sessions.Login(auth.RoleParticipant, "", password)

Each session carries:

  - Token: random UUID presented on later requests
  - Role: "participant" or "admin"
  - ParticipantID: 128-bit random hex identity used as the vote ledger key

Sessions live only in memory. Logout removes the session; the next
request with that token is unauthenticated.

	Unauthenticated → Participant (participant password)
	Unauthenticated → Admin       (admin username + password)
	Participant/Admin → Unauthenticated (logout)

# ID Generation

Random hex IDs:

	id, err := auth.GenerateID(16)  // 32 hex characters
*/
package auth
