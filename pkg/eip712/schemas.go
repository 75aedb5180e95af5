package eip712

import "math/big"

// Domain constants for the two signing domains this client uses.
const (
	OrderDomainName    = "Polymarket CTF Exchange"
	OrderDomainVersion = "1"

	ClobAuthDomainName    = "ClobAuthDomain"
	ClobAuthDomainVersion = "1"

	// ClobAuthMessage is the fixed attestation string signed for L1 auth.
	ClobAuthMessage = "This message attests that I control the given wallet"
)

// OrderTypes is the exchange order schema. Field order matches the
// on-chain verifier and must never change.
var OrderTypes = Types{
	"Order": {
		{Name: "salt", Type: "uint256"},
		{Name: "maker", Type: "address"},
		{Name: "signer", Type: "address"},
		{Name: "taker", Type: "address"},
		{Name: "tokenId", Type: "uint256"},
		{Name: "makerAmount", Type: "uint256"},
		{Name: "takerAmount", Type: "uint256"},
		{Name: "expiration", Type: "uint256"},
		{Name: "nonce", Type: "uint256"},
		{Name: "feeRateBps", Type: "uint256"},
		{Name: "side", Type: "uint8"},
		{Name: "signatureType", Type: "uint8"},
	},
}

// ClobAuthTypes is the L1 auth attestation schema.
var ClobAuthTypes = Types{
	"ClobAuth": {
		{Name: "address", Type: "address"},
		{Name: "timestamp", Type: "string"},
		{Name: "nonce", Type: "uint256"},
		{Name: "message", Type: "string"},
	},
}

// OrderDomain returns the exchange signing domain for a chain and verifying
// contract.
func OrderDomain(chainID uint64, verifyingContract string) Domain {
	return Domain{
		Name:              OrderDomainName,
		Version:           OrderDomainVersion,
		ChainID:           new(big.Int).SetUint64(chainID),
		VerifyingContract: verifyingContract,
	}
}

// ClobAuthDomain returns the chain-scoped L1 auth domain. It intentionally
// carries no verifying contract.
func ClobAuthDomain(chainID uint64) Domain {
	return Domain{
		Name:    ClobAuthDomainName,
		Version: ClobAuthDomainVersion,
		ChainID: new(big.Int).SetUint64(chainID),
	}
}

// Order is a fully assembled exchange order ready for signing. All numeric
// fields are decimal strings, matching the wire representation.
type Order struct {
	Salt          string
	Maker         string
	Signer        string
	Taker         string
	TokenID       string
	MakerAmount   string
	TakerAmount   string
	Expiration    string
	Nonce         string
	FeeRateBps    string
	Side          uint8
	SignatureType uint8
}

// Message maps the order onto the Order schema fields.
func (o Order) Message() Message {
	return Message{
		"salt":          o.Salt,
		"maker":         o.Maker,
		"signer":        o.Signer,
		"taker":         o.Taker,
		"tokenId":       o.TokenID,
		"makerAmount":   o.MakerAmount,
		"takerAmount":   o.TakerAmount,
		"expiration":    o.Expiration,
		"nonce":         o.Nonce,
		"feeRateBps":    o.FeeRateBps,
		"side":          o.Side,
		"signatureType": o.SignatureType,
	}
}
