// Package password provides one-way credential hashing for account passwords.
//
// It implements Argon2id with a PHC-like encoded string format:
//
//	$argon2id$v=19$m=<mem>,t=<iter>,p=<par>$<salt_b64>$<hash_b64>
//
// The salt is random per call and embedded in the encoded output, so
// verification needs no separate salt storage.
//
// Security notes:
//   - Cost parameters are fixed at process start and never derived from
//     request input.
//   - Encoded hashes are treated as untrusted during Verify; hashes carrying
//     parameters far above the configured maxima are refused.
//   - A mismatching password is not an error. Only a malformed or
//     undecodable hash yields ErrInvalidHash.
package password
