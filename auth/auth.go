// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidReceipt = errors.New("invalid vote receipt")

// GenerateReceipt creates an HMAC-based receipt for a recorded vote.
// The receipt is deterministic over the vote's identifying fields, so
// a voter can later re-derive it and match it against the audit log.
func GenerateReceipt(electionID int64, candidateID int, voterID string, timestamp int64, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	fmt.Fprintf(h, "%d|%d|%s|%d", electionID, candidateID, voterID, timestamp)
	sum := h.Sum(nil)
	// URL-safe base64 and trim padding for cleaner receipts
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// VerifyReceipt checks that a receipt matches the given vote fields.
func VerifyReceipt(receipt string, electionID int64, candidateID int, voterID string, timestamp int64, salt string) error {
	expected := GenerateReceipt(electionID, candidateID, voterID, timestamp, salt)
	if !hmac.Equal([]byte(receipt), []byte(expected)) {
		return ErrInvalidReceipt
	}
	return nil
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for deduplication
	return hex.EncodeToString(sum[:8])
}
