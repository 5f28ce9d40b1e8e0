// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ocserve

import (
	"errors"
	"time"

	"github.com/MKhiriev/oc-serve/internal/config"
	"github.com/MKhiriev/oc-serve/internal/utils"
	"github.com/MKhiriev/oc-serve/models"
)

// DefaultIssuer is the "iss" claim of issued tokens when auth has no issuer.
const DefaultIssuer = "oc-serve"

// ErrAuthDisabled is returned by IssueToken when auth has no sign key.
var ErrAuthDisabled = errors.New("auth is disabled: no sign key configured")

// IssueToken signs a bearer token for subject that the auth middleware of a
// gateway started with the same auth settings will accept.
func IssueToken(auth config.Auth, subject string, ttl time.Duration) (models.Token, error) {
	if !auth.Enabled() {
		return models.Token{}, ErrAuthDisabled
	}

	issuer := auth.Issuer
	if issuer == "" {
		issuer = DefaultIssuer
	}
	return utils.GenerateJWTToken(issuer, subject, ttl, auth.SignKey)
}
