// Package eip712 implements the typed structured-data hashing used to sign
// CLOB orders and auth attestations.
//
// The encoder deliberately covers only the flat schemas this client ships
// (see schemas.go): type strings are built strictly in declared field order
// and referenced sub-types are never sorted alphabetically. The general
// EIP-712 rule requires sorting when a struct references multiple distinct
// nested types; neither shipped schema does, so the narrowing is safe here
// and must not be generalized.
package eip712

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/GoPolymarket/polysign/pkg/keccak"
	"github.com/GoPolymarket/polysign/pkg/util"
)

var (
	// ErrUnknownType reports a primary or nested type missing from the schema.
	ErrUnknownType = errors.New("eip712: unknown struct type")
	// ErrMissingField reports a declared field absent from the message.
	ErrMissingField = errors.New("eip712: missing field")
	// ErrUnsupportedType reports a field type tag the encoder cannot handle.
	ErrUnsupportedType = errors.New("eip712: unsupported field type")
	// ErrEncoding reports a value that cannot be encoded into 32 bytes.
	ErrEncoding = errors.New("eip712: encoding failed")
)

// maxUint256 bounds every numeric field value, exclusive.
var maxUint256 = new(big.Int).Lsh(big.NewInt(1), 256)

// Field is one declared (name, type) pair of a struct type.
type Field struct {
	Name string
	Type string
}

// Types maps struct-type names to their declared field lists. Field order
// is the declaration order and is significant.
type Types map[string][]Field

// Message holds the field values of one struct. Numeric fields accept
// decimal strings, Go integers, or *big.Int; nested structs are Message
// values.
type Message map[string]interface{}

// Domain describes the signing domain. Zero-valued fields are treated as
// absent and excluded from both the domain type string and its encoding.
type Domain struct {
	Name              string
	Version           string
	ChainID           *big.Int
	VerifyingContract string
	Salt              []byte
}

// TypeHash hashes the canonical type string "Name(type1 name1,...)" built
// strictly in declared field order.
func TypeHash(typeName string, types Types) ([32]byte, error) {
	fields, ok := types[typeName]
	if !ok {
		return [32]byte{}, fmt.Errorf("%w: %s", ErrUnknownType, typeName)
	}

	var b strings.Builder
	b.WriteString(typeName)
	b.WriteByte('(')
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(f.Type)
		b.WriteByte(' ')
		b.WriteString(f.Name)
	}
	b.WriteByte(')')

	return keccak.Sum256([]byte(b.String())), nil
}

// EncodeValue encodes one field value into its 32-byte representation.
func EncodeValue(fieldType string, value interface{}, types Types) ([]byte, error) {
	switch {
	case fieldType == "string":
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: string field wants string value, got %T", ErrEncoding, value)
		}
		digest := keccak.Sum256([]byte(s))
		return digest[:], nil

	case fieldType == "address":
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: address field wants hex string, got %T", ErrEncoding, value)
		}
		return encodeAddress(s)

	case fieldType == "bytes":
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: bytes field wants hex string, got %T", ErrEncoding, value)
		}
		raw, err := util.HexToBytes(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
		}
		digest := keccak.Sum256(raw)
		return digest[:], nil

	case strings.HasPrefix(fieldType, "uint"), strings.HasPrefix(fieldType, "int"):
		return encodeUint256(value)

	default:
		// A type matching a schema struct name recurses per the nested-struct rule.
		if _, ok := types[fieldType]; ok {
			nested, err := asMessage(value)
			if err != nil {
				return nil, err
			}
			digest, err := HashStruct(fieldType, nested, types)
			if err != nil {
				return nil, err
			}
			return digest[:], nil
		}
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, fieldType)
	}
}

// HashStruct hashes typeHash ‖ encodeValue(field) over the declared fields.
func HashStruct(typeName string, message Message, types Types) ([32]byte, error) {
	typeHash, err := TypeHash(typeName, types)
	if err != nil {
		return [32]byte{}, err
	}

	encoded := make([]byte, 0, 32*(1+len(types[typeName])))
	encoded = append(encoded, typeHash[:]...)

	for _, f := range types[typeName] {
		value, ok := message[f.Name]
		if !ok {
			return [32]byte{}, fmt.Errorf("%w: %s.%s", ErrMissingField, typeName, f.Name)
		}
		enc, err := EncodeValue(f.Type, value, types)
		if err != nil {
			return [32]byte{}, fmt.Errorf("field %s.%s: %w", typeName, f.Name, err)
		}
		encoded = append(encoded, enc...)
	}

	return keccak.Sum256(encoded), nil
}

// HashDomain hashes the EIP712Domain struct built from the present fields,
// in the fixed order name, version, chainId, verifyingContract, salt.
func HashDomain(domain Domain) ([32]byte, error) {
	// The type string and value encoding are built together so presence
	// decisions cannot drift apart.
	var typeParts []string
	var values []byte
	if domain.Name != "" {
		typeParts = append(typeParts, "string name")
		d := keccak.Sum256([]byte(domain.Name))
		values = append(values, d[:]...)
	}
	if domain.Version != "" {
		typeParts = append(typeParts, "string version")
		d := keccak.Sum256([]byte(domain.Version))
		values = append(values, d[:]...)
	}
	if domain.ChainID != nil {
		typeParts = append(typeParts, "uint256 chainId")
		enc, err := encodeUint256(domain.ChainID)
		if err != nil {
			return [32]byte{}, err
		}
		values = append(values, enc...)
	}
	if domain.VerifyingContract != "" {
		typeParts = append(typeParts, "address verifyingContract")
		enc, err := encodeAddress(domain.VerifyingContract)
		if err != nil {
			return [32]byte{}, err
		}
		values = append(values, enc...)
	}
	if domain.Salt != nil {
		if len(domain.Salt) != 32 {
			return [32]byte{}, fmt.Errorf("%w: domain salt must be 32 bytes, got %d", ErrEncoding, len(domain.Salt))
		}
		typeParts = append(typeParts, "bytes32 salt")
		values = append(values, domain.Salt...)
	}

	typeString := "EIP712Domain(" + strings.Join(typeParts, ",") + ")"
	typeHash := keccak.Sum256([]byte(typeString))

	return keccak.Sum256Concat(typeHash[:], values), nil
}

// SigningHash computes keccak(0x19 ‖ 0x01 ‖ hashDomain ‖ hashStruct), the
// exact 32-byte preimage handed to the signer.
func SigningHash(domain Domain, primaryType string, message Message, types Types) ([32]byte, error) {
	domainHash, err := HashDomain(domain)
	if err != nil {
		return [32]byte{}, err
	}
	structHash, err := HashStruct(primaryType, message, types)
	if err != nil {
		return [32]byte{}, err
	}
	return keccak.Sum256Concat([]byte{0x19, 0x01}, domainHash[:], structHash[:]), nil
}

// encodeAddress left-pads a 20-byte address into a 32-byte word.
func encodeAddress(address string) ([]byte, error) {
	raw, err := util.HexToBytes(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	if len(raw) != 20 {
		return nil, fmt.Errorf("%w: address must be 20 bytes, got %d", ErrEncoding, len(raw))
	}
	word := make([]byte, 32)
	copy(word[12:], raw)
	return word, nil
}

// encodeUint256 big-endian encodes a numeric value into a 32-byte word.
// Decimal strings of arbitrary size are accepted; values outside
// [0, 2^256) are rejected.
func encodeUint256(value interface{}) ([]byte, error) {
	n := new(big.Int)
	switch v := value.(type) {
	case string:
		if _, ok := n.SetString(v, 10); !ok {
			return nil, fmt.Errorf("%w: %q is not a decimal integer", ErrEncoding, v)
		}
	case *big.Int:
		if v == nil {
			return nil, fmt.Errorf("%w: nil big.Int", ErrEncoding)
		}
		n.Set(v)
	case uint8:
		n.SetUint64(uint64(v))
	case uint32:
		n.SetUint64(uint64(v))
	case uint64:
		n.SetUint64(v)
	case uint:
		n.SetUint64(uint64(v))
	case int:
		n.SetInt64(int64(v))
	case int64:
		n.SetInt64(v)
	default:
		return nil, fmt.Errorf("%w: cannot encode %T as uint256", ErrEncoding, value)
	}

	if n.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative value %s", ErrEncoding, n)
	}
	if n.Cmp(maxUint256) >= 0 {
		return nil, fmt.Errorf("%w: value %s does not fit in 256 bits", ErrEncoding, n)
	}

	word := make([]byte, 32)
	n.FillBytes(word)
	return word, nil
}

// asMessage coerces a nested struct value into a Message.
func asMessage(value interface{}) (Message, error) {
	switch v := value.(type) {
	case Message:
		return v, nil
	case map[string]interface{}:
		return Message(v), nil
	default:
		return nil, fmt.Errorf("%w: nested struct wants a message map, got %T", ErrEncoding, value)
	}
}
