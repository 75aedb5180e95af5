// Package txsigner assembles, hashes, and signs replay-protected legacy
// Ethereum transactions (EIP-155) used to authorize on-chain token
// approvals.
package txsigner

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/GoPolymarket/polysign/pkg/keccak"
	"github.com/GoPolymarket/polysign/pkg/rlp"
	"github.com/GoPolymarket/polysign/pkg/signer"
	"github.com/GoPolymarket/polysign/pkg/util"
)

// ErrEncoding reports a transaction field that cannot be encoded.
var ErrEncoding = errors.New("txsigner: invalid transaction field")

// UnsignedTransaction carries the fields of a legacy transaction before
// signing. GasPrice, Value, and Data are hex quantities as returned by
// JSON-RPC ("0x0" is a valid zero).
type UnsignedTransaction struct {
	Nonce    uint64
	GasPrice string
	GasLimit uint64
	To       string
	Value    string
	Data     string
	ChainID  uint64
}

// fieldBytes decodes the variable-length fields into canonical byte form.
func (tx *UnsignedTransaction) fieldBytes() (gasPrice, to, value, data []byte, err error) {
	// Numeric quantities must drop leading zero bytes; RLP's canonical
	// integer form forbids them and "0x0" must reduce to the empty string.
	gasPrice, err = util.QuantityToBytes(tx.GasPrice)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("%w: gasPrice: %v", ErrEncoding, err)
	}
	value, err = util.QuantityToBytes(tx.Value)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("%w: value: %v", ErrEncoding, err)
	}
	to, err = util.HexToBytes(tx.To)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("%w: to: %v", ErrEncoding, err)
	}
	if len(to) != 20 {
		return nil, nil, nil, nil, fmt.Errorf("%w: to must be 20 bytes, got %d", ErrEncoding, len(to))
	}
	data, err = util.HexToBytes(tx.Data)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("%w: data: %v", ErrEncoding, err)
	}
	return gasPrice, to, value, data, nil
}

// BuildUnsignedPayload RLP-encodes the EIP-155 pre-signing 9-tuple
// [nonce, gasPrice, gasLimit, to, value, data, chainId, "", ""]. The two
// empty strings stand in for the signature fields.
func BuildUnsignedPayload(tx *UnsignedTransaction) ([]byte, error) {
	gasPrice, to, value, data, err := tx.fieldBytes()
	if err != nil {
		return nil, err
	}
	return rlp.EncodeList([][]byte{
		rlp.EncodeUint64(tx.Nonce),
		rlp.EncodeString(gasPrice),
		rlp.EncodeUint64(tx.GasLimit),
		rlp.EncodeString(to),
		rlp.EncodeString(value),
		rlp.EncodeString(data),
		rlp.EncodeUint64(tx.ChainID),
		rlp.EncodeString(nil),
		rlp.EncodeString(nil),
	}), nil
}

// SigningHash returns the Keccak-256 digest of the unsigned payload.
func SigningHash(tx *UnsignedTransaction) ([32]byte, error) {
	payload, err := BuildUnsignedPayload(tx)
	if err != nil {
		return [32]byte{}, err
	}
	return keccak.Sum256(payload), nil
}

// Sign hashes and signs the transaction, folds the chain id into v per
// EIP-155 (v = chainId*2 + 35 + recoveryId), and returns the hex of the
// signed 9-field RLP list ready for eth_sendRawTransaction.
func Sign(tx *UnsignedTransaction, s *signer.Signer) (string, error) {
	gasPrice, to, value, data, err := tx.fieldBytes()
	if err != nil {
		return "", err
	}

	hash, err := SigningHash(tx)
	if err != nil {
		return "", err
	}
	sig, err := s.Sign(hash)
	if err != nil {
		return "", err
	}

	v := tx.ChainID*2 + 35 + uint64(sig.RecoveryID)

	// r and s are integers in the signed list, so their fixed 32-byte
	// forms lose any leading zero bytes here.
	signed := rlp.EncodeList([][]byte{
		rlp.EncodeUint64(tx.Nonce),
		rlp.EncodeString(gasPrice),
		rlp.EncodeUint64(tx.GasLimit),
		rlp.EncodeString(to),
		rlp.EncodeString(value),
		rlp.EncodeString(data),
		rlp.EncodeUint64(v),
		rlp.EncodeBig(new(big.Int).SetBytes(sig.R[:])),
		rlp.EncodeBig(new(big.Int).SetBytes(sig.S[:])),
	})
	return util.BytesToHex(signed), nil
}
