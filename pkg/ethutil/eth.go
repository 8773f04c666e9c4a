package ethutil

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/sha256"
	"errors"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// GeneratePrivateKey derives a deterministic key from secret and nonce.
func GeneratePrivateKey(secret, nonce []byte) (*ecdsa.PrivateKey, error) {
	seed := sha256.Sum256(append(secret, nonce...))
	randomSeed := bytes.Repeat(seed[:], 2)
	reader := bytes.NewReader(randomSeed)
	return ecdsa.GenerateKey(ethcrypto.S256(), reader)
}

func GeneratePublicKey(secret, nonce []byte) (common.Address, error) {
	walletPrivateKey, err := GeneratePrivateKey(secret, nonce)
	if err != nil {
		return common.Address{}, err
	}

	return ethcrypto.PubkeyToAddress(walletPrivateKey.PublicKey), nil
}

// SignText produces a personal_sign signature (V in 27/28) of message.
func SignText(key *ecdsa.PrivateKey, message string) (string, error) {
	signature, err := ethcrypto.Sign(accounts.TextHash([]byte(message)), key)
	if err != nil {
		return "", err
	}

	signature[ethcrypto.RecoveryIDOffset] += 27
	return hexutil.Encode(signature), nil
}

// RecoverText returns the address that produced a personal_sign signature
// of message. Both 0/1 and 27/28 recovery ids are accepted.
func RecoverText(message, signatureHex string) (common.Address, error) {
	signature, err := hexutil.Decode(signatureHex)
	if err != nil {
		return common.Address{}, err
	}

	if len(signature) != ethcrypto.SignatureLength {
		return common.Address{}, errors.New("invalid signature length")
	}

	if signature[ethcrypto.RecoveryIDOffset] == 27 || signature[ethcrypto.RecoveryIDOffset] == 28 {
		signature[ethcrypto.RecoveryIDOffset] -= 27
	}

	recovered, err := ethcrypto.SigToPub(accounts.TextHash([]byte(message)), signature)
	if err != nil {
		return common.Address{}, err
	}

	return ethcrypto.PubkeyToAddress(*recovered), nil
}
