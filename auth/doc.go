// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides vote receipts and privacy hashing.

# Vote Receipts

A receipt is an HMAC-SHA256 over the vote's identifying fields, keyed
with the server's receipt salt:

	receipt := auth.GenerateReceipt(electionID, candidateID, voterID, ts, salt)

Receipts are deterministic: the same vote always produces the same
receipt, so a voter holding one can verify that the vote in the audit
log is theirs:

	err := auth.VerifyReceipt(receipt, electionID, candidateID, voterID, ts, salt)

Receipts carry no secret material of their own; the salt never leaves
the server.

# IP Hashing

HashIP produces a salted, truncated one-way hash of a client IP for
request logging without storing raw addresses.
*/
package auth
