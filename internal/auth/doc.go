// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

/*
Package auth provides credential hashing and the plain email/password check
behind POST /login.

There is no session or token layer: a successful login only confirms that
the presented password verifies against the stored bcrypt digest.

Key Components:

  - Hasher: produce and verify salted password digests
  - BcryptHasher: golang.org/x/crypto/bcrypt implementation (default cost 12)
  - Authenticator: looks up a user by email and verifies the password

Usage Example:

	hasher, err := auth.NewBcryptHasher(cfg.Security.BcryptCost)
	if err != nil {
	    return err
	}
	authn := auth.NewAuthenticator(store, hasher)

	user, err := authn.Login(ctx, email, password)
	switch {
	case errors.Is(err, models.ErrInvalidCredentials):
	    // "Incorrect Email" or "Incorrect Password"
	case err != nil:
	    // store failure
	}

Security:

  - Plaintext passwords are never stored or compared directly
  - bcrypt.CompareHashAndPassword is constant-time with respect to the digest
  - Inputs longer than 72 bytes are rejected by bcrypt and surface as hash errors
*/
package auth
