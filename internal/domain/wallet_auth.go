package domain

import (
	"context"

	"github.com/ronin-planets/backend/internal/common"
	"github.com/ronin-planets/backend/internal/model"
	"github.com/ronin-planets/backend/pkg/crypto"
	"github.com/ronin-planets/backend/pkg/errorx"
	"github.com/ronin-planets/backend/pkg/ethutil"
	"github.com/ronin-planets/backend/pkg/xcontext"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

type WalletAuthDomain interface {
	Login(context.Context, *model.WalletLoginRequest) (*model.WalletLoginResponse, error)
	Verify(context.Context, *model.WalletVerifyRequest) (*model.WalletVerifyResponse, error)
}

type walletAuthDomain struct {
	adminVerifier *common.AdminVerifier
}

func NewWalletAuthDomain(adminVerifier *common.AdminVerifier) WalletAuthDomain {
	return &walletAuthDomain{adminVerifier: adminVerifier}
}

// Login hands out a nonce the wallet has to sign. The pair is kept in the
// session cookie until Verify.
func (d *walletAuthDomain) Login(
	ctx context.Context, req *model.WalletLoginRequest,
) (*model.WalletLoginResponse, error) {
	if !ethcommon.IsHexAddress(req.Address) {
		return nil, errorx.New(errorx.BadRequest, "Invalid wallet address")
	}

	nonce, err := crypto.GenerateRandomString()
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate random string: %v", err)
		return nil, errorx.Unknown
	}

	return &model.WalletLoginResponse{
		Address: ethcommon.HexToAddress(req.Address).Hex(),
		Nonce:   nonce,
	}, nil
}

func (d *walletAuthDomain) Verify(
	ctx context.Context, req *model.WalletVerifyRequest,
) (*model.WalletVerifyResponse, error) {
	session, err := xcontext.SessionStore(ctx).Get(xcontext.HTTPRequest(ctx))
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot get the session: %v", err)
		return nil, errorx.New(errorx.Unauthenticated, "Login session is invalid")
	}

	address, ok := session.Values[model.SessionKeyAddress].(string)
	if !ok || address == "" {
		return nil, errorx.New(errorx.Unauthenticated, "Login first")
	}

	nonce, ok := session.Values[model.SessionKeyNonce].(string)
	if !ok || nonce == "" {
		return nil, errorx.New(errorx.Unauthenticated, "Login first")
	}

	recovered, err := ethutil.RecoverText(nonce, req.Signature)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot recover signature: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid signature")
	}

	if recovered != ethcommon.HexToAddress(address) {
		return nil, errorx.New(errorx.BadRequest, "Mismatched address")
	}

	token, err := xcontext.TokenEngine(ctx).Generate(address, model.AccessToken{Address: address})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.WalletVerifyResponse{
		AccessToken: token,
		Address:     address,
		IsAdmin:     d.adminVerifier.IsAdmin(address),
	}, nil
}
