// Copyright (c) 2026 BrandBiography <hello@brandbiography.io>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"crypto/subtle"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

// AdminLogin handles POST /api/admin/login. The dashboard sends the
// password as JSON; it is checked against the environment-configured
// secret: a bcrypt hash when ADMIN_PASSWORD_HASH is set, the plaintext
// ADMIN_PASSWORD otherwise.
func (a *API) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}

	if a.checkPassword(in.Password) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
		return
	}
	writeJSON(w, http.StatusUnauthorized, map[string]any{
		"success": false,
		"error":   "Incorrect password",
	})
}

// checkPassword validates the submitted password against the configured
// secret without leaking timing information.
func (a *API) checkPassword(password string) bool {
	if a.adminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(a.adminPasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(a.adminPassword), []byte(password)) == 1
}
