package common

import (
	"context"
	"errors"
	"strings"

	"github.com/ronin-planets/backend/pkg/xcontext"
)

// AdminVerifier compares wallet addresses against the single configured
// admin address, ignoring case.
type AdminVerifier struct {
	adminAddress string
}

func NewAdminVerifier(adminAddress string) *AdminVerifier {
	return &AdminVerifier{adminAddress: strings.TrimSpace(adminAddress)}
}

func (verifier *AdminVerifier) IsAdmin(address string) bool {
	if verifier.adminAddress == "" || address == "" {
		return false
	}

	return strings.EqualFold(verifier.adminAddress, strings.TrimSpace(address))
}

// Verify checks the authenticated caller carried by ctx.
func (verifier *AdminVerifier) Verify(ctx context.Context) error {
	address := xcontext.RequestUserID(ctx)
	if address == "" {
		return errors.New("user is not authenticated")
	}

	if !verifier.IsAdmin(address) {
		return errors.New("user is not the admin")
	}

	return nil
}
