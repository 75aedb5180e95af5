// Package abi encodes the ERC20/ERC1155 calldata the approval
// transactions carry.
package abi

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/GoPolymarket/polysign/pkg/keccak"
	"github.com/GoPolymarket/polysign/pkg/util"
)

// MaxUint256 is the unlimited-approval amount.
var MaxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

var (
	addressType, _ = ethabi.NewType("address", "", nil)
	uint256Type, _ = ethabi.NewType("uint256", "", nil)
	boolType, _    = ethabi.NewType("bool", "", nil)
)

// selector returns the 4-byte function selector for a signature.
func selector(signature string) []byte {
	digest := keccak.Sum256([]byte(signature))
	return digest[:4]
}

// encodeCall packs arguments behind the function selector and renders the
// calldata as a hex string.
func encodeCall(signature string, args ethabi.Arguments, values ...interface{}) (string, error) {
	packed, err := args.Pack(values...)
	if err != nil {
		return "", errors.Wrapf(err, "packing arguments for %s", signature)
	}
	return util.BytesToHex(append(selector(signature), packed...)), nil
}

// EncodeApprove builds approve(address,uint256) calldata.
func EncodeApprove(spender common.Address, amount *big.Int) (string, error) {
	return encodeCall("approve(address,uint256)",
		ethabi.Arguments{{Type: addressType}, {Type: uint256Type}},
		spender, amount)
}

// EncodeSetApprovalForAll builds setApprovalForAll(address,bool) calldata.
func EncodeSetApprovalForAll(operator common.Address, approved bool) (string, error) {
	return encodeCall("setApprovalForAll(address,bool)",
		ethabi.Arguments{{Type: addressType}, {Type: boolType}},
		operator, approved)
}

// EncodeAllowance builds allowance(address,address) calldata for eth_call.
func EncodeAllowance(owner, spender common.Address) (string, error) {
	return encodeCall("allowance(address,address)",
		ethabi.Arguments{{Type: addressType}, {Type: addressType}},
		owner, spender)
}

// EncodeIsApprovedForAll builds isApprovedForAll(address,address) calldata
// for eth_call.
func EncodeIsApprovedForAll(account, operator common.Address) (string, error) {
	return encodeCall("isApprovedForAll(address,address)",
		ethabi.Arguments{{Type: addressType}, {Type: addressType}},
		account, operator)
}
