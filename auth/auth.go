// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrNoSession          = errors.New("no such session")
)

// Roles
const (
	RoleParticipant = "participant"
	RoleAdmin       = "admin"
)

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateParticipantID creates a 128-bit random participant identity
func GenerateParticipantID() (string, error) {
	return GenerateID(16)
}

// Credentials holds the shared secrets that grant each role
type Credentials struct {
	AdminUsername string
	AdminPassword string
	// AdminPasswordHash is a bcrypt hash; when set it is used instead of AdminPassword
	AdminPasswordHash string
	// ParticipantPassword may be empty, in which case anyone can join as a participant
	ParticipantPassword string
}

// Check verifies the credentials presented for role
func (c Credentials) Check(role, username, password string) error {
	switch role {
	case RoleAdmin:
		userOK := secretEqual(username, c.AdminUsername)
		var passOK bool
		if c.AdminPasswordHash != "" {
			passOK = bcrypt.CompareHashAndPassword([]byte(c.AdminPasswordHash), []byte(password)) == nil
		} else {
			passOK = c.AdminPassword != "" && secretEqual(password, c.AdminPassword)
		}
		if c.AdminUsername == "" || !userOK || !passOK {
			return ErrInvalidCredentials
		}
		return nil
	case RoleParticipant:
		if c.ParticipantPassword == "" {
			return nil
		}
		if !secretEqual(password, c.ParticipantPassword) {
			return ErrInvalidCredentials
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
}

// secretEqual compares in constant time
func secretEqual(given, want string) bool {
	return hmac.Equal([]byte(given), []byte(want))
}
