package model

// AccessToken is the payload signed into the JWT handed out after a wallet
// proves ownership of its address.
type AccessToken struct {
	Address string `json:"address"`
}

type WalletLoginRequest struct {
	Address string `json:"address"`
}

type WalletLoginResponse struct {
	Address string `json:"address"`
	Nonce   string `json:"nonce"`
}

type WalletVerifyRequest struct {
	Signature string `json:"signature"`
}

type WalletVerifyResponse struct {
	AccessToken string `json:"access_token"`
	Address     string `json:"address"`
	IsAdmin     bool   `json:"is_admin"`
}

// Session keys holding the pending login between WalletLogin and
// WalletVerify.
const (
	SessionKeyAddress = "wallet_address"
	SessionKeyNonce   = "wallet_nonce"
)

func (r *WalletLoginResponse) SessionInfo() map[string]any {
	return map[string]any{
		SessionKeyAddress: r.Address,
		SessionKeyNonce:   r.Nonce,
	}
}

func (r *WalletVerifyResponse) AccessTokenInfo() string {
	return r.AccessToken
}
