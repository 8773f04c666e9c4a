package domain

import (
	"context"
	"time"

	"github.com/ronin-planets/backend/config"
	"github.com/ronin-planets/backend/internal/common"
	"github.com/ronin-planets/backend/internal/entity"
	"github.com/ronin-planets/backend/pkg/errorx"
	"github.com/ronin-planets/backend/pkg/numberutil"
	"github.com/ronin-planets/backend/pkg/xcontext"
)

// gameConfigs fills unset values with the catalog defaults.
func gameConfigs(ctx context.Context) config.GameConfigs {
	cfg := xcontext.Configs(ctx).Game
	if cfg.CooldownDuration <= 0 {
		cfg.CooldownDuration = common.CooldownDuration
	}
	if cfg.MaxKnowledgeLevel <= 0 {
		cfg.MaxKnowledgeLevel = common.MaxKnowledgeLevel
	}
	if cfg.ClaimDeadline <= 0 {
		cfg.ClaimDeadline = common.ClaimDeadline
	}

	return cfg
}

// resolveAddress picks the account an operation targets. An empty address
// means the caller. Only the admin may target another account.
func resolveAddress(ctx context.Context, verifier *common.AdminVerifier, address string) (string, error) {
	caller := xcontext.RequestUserID(ctx)
	if address == "" {
		address = caller
	}

	if address == "" {
		return "", errorx.New(errorx.BadRequest, "Address is required")
	}

	if caller != "" && address != caller && !verifier.IsAdmin(caller) {
		return "", errorx.New(errorx.PermissionDenied, "Cannot access another account")
	}

	return address, nil
}

// requireUser returns the account stored at address.
func requireUser(doc *entity.Document, address string) (*entity.UserAccount, error) {
	u, ok := doc.Users.Get(address)
	if !ok {
		return nil, errorx.New(errorx.NotFound, "User not found")
	}

	return u, nil
}

// newUserAccount builds a fresh account: level 1 for every token and
// resource pair, and every resource at zero.
func newUserAccount(tokenIDs []string) *entity.UserAccount {
	u := &entity.UserAccount{
		NFTs:      make([]string, 0, len(tokenIDs)),
		Knowledge: make(map[string]map[string]int, len(tokenIDs)),
		Resources: make(map[string]int64, len(common.Resources)),
	}

	for _, tokenID := range tokenIDs {
		if _, ok := u.Knowledge[tokenID]; ok {
			continue
		}

		u.NFTs = append(u.NFTs, tokenID)
		u.Knowledge[tokenID] = newKnowledge()
	}

	for _, r := range common.Resources {
		u.Resources[r] = 0
	}

	u.Normalize()
	return u
}

func newKnowledge() map[string]int {
	knowledge := make(map[string]int, len(common.Resources))
	for _, r := range common.Resources {
		knowledge[r] = 1
	}

	return knowledge
}

// addBalance adds a non-negative amount to a balance, refusing sums that do
// not fit in an int64.
func addBalance(balance, amount int64) (int64, error) {
	total, err := numberutil.AddNonNegative(balance, amount)
	if err != nil {
		return 0, errorx.New(errorx.BadRequest, "Adding %d to %d overflows the balance", amount, balance)
	}

	return total, nil
}

func nowMs() int64 {
	return time.Now().UnixMilli()
}
