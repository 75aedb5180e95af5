package main

import (
	"fmt"
	"log"
	"math/big"
	"os"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/GoPolymarket/polysign/pkg/abi"
	"github.com/GoPolymarket/polysign/pkg/auth"
	"github.com/GoPolymarket/polysign/pkg/config"
	"github.com/GoPolymarket/polysign/pkg/eip712"
	"github.com/GoPolymarket/polysign/pkg/logger"
	"github.com/GoPolymarket/polysign/pkg/signer"
	"github.com/GoPolymarket/polysign/pkg/txsigner"
	"github.com/GoPolymarket/polysign/pkg/util"
)

func main() {
	app := &cli.App{
		Name:  "polysign",
		Usage: "CLOB signing tool: addresses, order signatures, approval transactions, auth headers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "private-key",
				Usage:   "Hex private key (0x prefix optional)",
				EnvVars: []string{config.EnvPrivateKey},
			},
			&cli.Uint64Flag{
				Name:    "chain-id",
				Usage:   "Target chain id",
				Value:   uint64(config.ChainId_PolygonMainnet),
				EnvVars: []string{config.EnvChainID},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "address",
				Usage:  "Derive the account address from the private key",
				Action: addressCommand,
			},
			{
				Name:  "sign-order",
				Usage: "Sign an assembled exchange order",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "salt", Required: true},
					&cli.StringFlag{Name: "maker", Required: true},
					&cli.StringFlag{Name: "taker", Value: "0x0000000000000000000000000000000000000000"},
					&cli.StringFlag{Name: "token-id", Required: true},
					&cli.StringFlag{Name: "maker-amount", Required: true},
					&cli.StringFlag{Name: "taker-amount", Required: true},
					&cli.StringFlag{Name: "expiration", Value: "0"},
					&cli.StringFlag{Name: "nonce", Value: "0"},
					&cli.StringFlag{Name: "fee-rate-bps", Value: "0"},
					&cli.UintFlag{Name: "side", Usage: "0 = buy, 1 = sell"},
					&cli.UintFlag{Name: "signature-type"},
					&cli.BoolFlag{Name: "neg-risk", Usage: "Sign against the neg-risk adapter"},
				},
				Action: signOrderCommand,
			},
			{
				Name:  "sign-approval",
				Usage: "Sign a token approval transaction for the exchange",
				Flags: []cli.Flag{
					&cli.Uint64Flag{Name: "nonce", Required: true},
					&cli.StringFlag{Name: "gas-price", Usage: "Hex gas price from eth_gasPrice", Required: true},
					&cli.Uint64Flag{Name: "gas-limit", Value: 100000},
					&cli.BoolFlag{Name: "conditional-tokens", Usage: "Approve the CTF via setApprovalForAll instead of USDC"},
					&cli.BoolFlag{Name: "neg-risk", Usage: "Approve the neg-risk adapter"},
				},
				Action: signApprovalCommand,
			},
			{
				Name:  "auth-l1",
				Usage: "Build signature-based (L1) auth headers",
				Flags: []cli.Flag{
					&cli.Uint64Flag{Name: "nonce"},
					&cli.Int64Flag{Name: "timestamp", Usage: "Unix seconds (defaults to now)"},
				},
				Action: authL1Command,
			},
			{
				Name:  "auth-l2",
				Usage: "Build shared-secret (L2) auth headers",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "api-key", EnvVars: []string{config.EnvAPIKey}, Required: true},
					&cli.StringFlag{Name: "secret", EnvVars: []string{config.EnvAPISecret}, Required: true},
					&cli.StringFlag{Name: "passphrase", EnvVars: []string{config.EnvPassphrase}, Required: true},
					&cli.StringFlag{Name: "method", Value: "GET"},
					&cli.StringFlag{Name: "path", Value: "/"},
					&cli.StringFlag{Name: "body"},
					&cli.Int64Flag{Name: "timestamp", Usage: "Unix seconds (defaults to now)"},
				},
				Action: authL2Command,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newSigner(c *cli.Context) (*signer.Signer, *zap.Logger, error) {
	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: c.Bool("verbose")})
	if err != nil {
		return nil, nil, err
	}
	key := c.String("private-key")
	if key == "" {
		return nil, nil, fmt.Errorf("missing private key (set --private-key or %s)", config.EnvPrivateKey)
	}
	s, err := signer.New(key, c.Uint64("chain-id"), l)
	if err != nil {
		return nil, nil, err
	}
	return s, l, nil
}

func addressCommand(c *cli.Context) error {
	s, _, err := newSigner(c)
	if err != nil {
		return err
	}
	defer s.Close()

	checksummed, err := util.ChecksumAddress(s.Address())
	if err != nil {
		return err
	}
	fmt.Println(s.Address())
	fmt.Println(checksummed)
	return nil
}

func signOrderCommand(c *cli.Context) error {
	s, l, err := newSigner(c)
	if err != nil {
		return err
	}
	defer s.Close()

	contracts, err := config.GetContractConfig(config.ChainId(s.ChainID()), c.Bool("neg-risk"))
	if err != nil {
		return err
	}

	order := eip712.Order{
		Salt:          c.String("salt"),
		Maker:         c.String("maker"),
		Signer:        s.Address(),
		Taker:         c.String("taker"),
		TokenID:       c.String("token-id"),
		MakerAmount:   c.String("maker-amount"),
		TakerAmount:   c.String("taker-amount"),
		Expiration:    c.String("expiration"),
		Nonce:         c.String("nonce"),
		FeeRateBps:    c.String("fee-rate-bps"),
		Side:          uint8(c.Uint("side")),
		SignatureType: uint8(c.Uint("signature-type")),
	}

	domain := eip712.OrderDomain(s.ChainID(), contracts.Exchange)
	signature, err := s.SignTypedData(domain, "Order", order.Message(), eip712.OrderTypes)
	if err != nil {
		return err
	}

	l.Debug("order signed", zap.String("exchange", contracts.Exchange))
	fmt.Println(signature)
	return nil
}

func signApprovalCommand(c *cli.Context) error {
	s, l, err := newSigner(c)
	if err != nil {
		return err
	}
	defer s.Close()

	contracts, err := config.GetContractConfig(config.ChainId(s.ChainID()), c.Bool("neg-risk"))
	if err != nil {
		return err
	}

	var to, data string
	if c.Bool("conditional-tokens") {
		to = contracts.ConditionalTokens
		data, err = abi.EncodeSetApprovalForAll(common.HexToAddress(contracts.Exchange), true)
	} else {
		to = contracts.Collateral
		data, err = abi.EncodeApprove(common.HexToAddress(contracts.Exchange), new(big.Int).Set(abi.MaxUint256))
	}
	if err != nil {
		return err
	}

	raw, err := txsigner.Sign(&txsigner.UnsignedTransaction{
		Nonce:    c.Uint64("nonce"),
		GasPrice: c.String("gas-price"),
		GasLimit: c.Uint64("gas-limit"),
		To:       to,
		Value:    "0x0",
		Data:     data,
		ChainID:  s.ChainID(),
	}, s)
	if err != nil {
		return err
	}

	l.Debug("approval transaction signed", zap.String("to", to))
	fmt.Println(raw)
	return nil
}

func timestampOrNow(c *cli.Context) int64 {
	if ts := c.Int64("timestamp"); ts != 0 {
		return ts
	}
	return time.Now().Unix()
}

func printHeaders(headers map[string]string) {
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s: %s\n", k, headers[k])
	}
}

func authL1Command(c *cli.Context) error {
	s, l, err := newSigner(c)
	if err != nil {
		return err
	}
	defer s.Close()

	headers, err := auth.NewBuilder(s, l).L1Headers(timestampOrNow(c), c.Uint64("nonce"))
	if err != nil {
		return err
	}
	printHeaders(headers)
	return nil
}

func authL2Command(c *cli.Context) error {
	s, l, err := newSigner(c)
	if err != nil {
		return err
	}
	defer s.Close()

	creds := auth.Credentials{
		APIKey:     c.String("api-key"),
		Secret:     c.String("secret"),
		Passphrase: c.String("passphrase"),
	}
	headers, err := auth.NewBuilder(s, l).L2Headers(
		creds, timestampOrNow(c), c.String("method"), c.String("path"), c.String("body"))
	if err != nil {
		return err
	}
	printHeaders(headers)
	return nil
}
