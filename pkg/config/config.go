// Package config holds chain identifiers, the per-chain exchange contract
// tables, and the environment variable names the CLI reads.
package config

import "fmt"

// Environment variable names for the polysign CLI.
const (
	EnvPrivateKey = "POLYSIGN_PRIVATE_KEY"
	EnvChainID    = "POLYSIGN_CHAIN_ID"
	EnvAPIKey     = "POLYSIGN_API_KEY"
	EnvAPISecret  = "POLYSIGN_API_SECRET"
	EnvPassphrase = "POLYSIGN_PASSPHRASE"
)

type ChainId uint64

const (
	ChainId_PolygonMainnet ChainId = 137
	ChainId_AmoyTestnet    ChainId = 80002
)

type ChainName string

const (
	ChainName_PolygonMainnet ChainName = "polygon"
	ChainName_AmoyTestnet    ChainName = "amoy"
)

var ChainIdToName = map[ChainId]ChainName{
	ChainId_PolygonMainnet: ChainName_PolygonMainnet,
	ChainId_AmoyTestnet:    ChainName_AmoyTestnet,
}

// ContractConfig names the exchange contracts a signer targets on one chain.
type ContractConfig struct {
	Exchange          string
	Collateral        string
	ConditionalTokens string
}

var polygonConfig = ContractConfig{
	Exchange:          "0x4bFb41d5B3570DeFd03C39a9A4D8dE6Bd8B8982E",
	Collateral:        "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174",
	ConditionalTokens: "0x4D97DCd97eC945f40cF65F87097ACe5EA0476045",
}

var polygonNegRiskConfig = ContractConfig{
	Exchange:          "0xC5d563A36AE78145C45a50134d48A1215220f80a",
	Collateral:        "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174",
	ConditionalTokens: "0x4D97DCd97eC945f40cF65F87097ACe5EA0476045",
}

var amoyConfig = ContractConfig{
	Exchange:          "0xdFE02Eb6733538f8Ea35D585af8DE5958AD99E40",
	Collateral:        "0x9c4e1703476e875070ee25b56a58b008cfb8fa78",
	ConditionalTokens: "0x69308FB512518e39F9b16112fA8d994F4e2Bf8bB",
}

var amoyNegRiskConfig = ContractConfig{
	Exchange:          "0xd91E80cF2E7be2e162c6513ceD06f1dD0dA35296",
	Collateral:        "0x9c4e1703476e875070ee25b56a58b008cfb8fa78",
	ConditionalTokens: "0x69308FB512518e39F9b16112fA8d994F4e2Bf8bB",
}

// GetContractConfig returns the contract table for a chain. The neg-risk
// variant swaps the exchange for the neg-risk adapter.
func GetContractConfig(chainId ChainId, negRisk bool) (ContractConfig, error) {
	switch chainId {
	case ChainId_PolygonMainnet:
		if negRisk {
			return polygonNegRiskConfig, nil
		}
		return polygonConfig, nil
	case ChainId_AmoyTestnet:
		if negRisk {
			return amoyNegRiskConfig, nil
		}
		return amoyConfig, nil
	default:
		return ContractConfig{}, fmt.Errorf("no contract config for chain id %d", chainId)
	}
}
