package identity

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"github.com/go-resty/resty/v2"
	"log/slog"
	"net/http"
	"strings"
	"tickto/common"
	"tickto/common/constant"
	"tickto/common/errs"
	"tickto/common/otel"
	"tickto/model"
	"time"
)

const (
	walletClientTypePrivy = "privy"
	linkedAccountWallet   = "wallet"
	rpcMethodSignTx       = "signTransaction"
	encodingBase64        = "base64"
	maxErrorBodySize      = 4 << 10
)

// ProviderError is a non-2xx answer from the wallet provider.
type ProviderError struct {
	Status int
	Body   string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("wallet provider responded %d: %s", e.Status, e.Body)
}

type errorResponse struct {
	Error string `json:"error"`
}

// PrivyClient talks to the auth provider's REST API. Users and their linked wallets live on the
// auth host, server managed wallets and their signing RPC on the api host.
type PrivyClient struct {
	auth *resty.Client
	api  *resty.Client
}

func NewPrivyClient(authURL, apiURL, appID, appSecret string, timeout time.Duration) *PrivyClient {
	return &PrivyClient{
		auth: newProviderClient(authURL, appID, appSecret, timeout),
		api:  newProviderClient(apiURL, appID, appSecret, timeout),
	}
}

func newProviderClient(baseURL, appID, appSecret string, timeout time.Duration) *resty.Client {
	return resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetBasicAuth(appID, appSecret).
		SetHeader("privy-app-id", appID).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)
}

type linkedAccount struct {
	Type             string `json:"type"`
	ID               string `json:"id"`
	Address          string `json:"address"`
	ChainType        string `json:"chain_type"`
	WalletClientType string `json:"wallet_client_type"`
}

type userResponse struct {
	ID             string          `json:"id"`
	LinkedAccounts []linkedAccount `json:"linked_accounts"`
}

type walletOwner struct {
	UserID string `json:"user_id"`
}

type createWalletRequest struct {
	ChainType string      `json:"chain_type"`
	Owner     walletOwner `json:"owner"`
}

type walletResponse struct {
	ID        string `json:"id"`
	Address   string `json:"address"`
	ChainType string `json:"chain_type"`
}

type signParams struct {
	Transaction string `json:"transaction"`
	Encoding    string `json:"encoding"`
}

type signRequest struct {
	Method string     `json:"method"`
	Params signParams `json:"params"`
}

type signResponse struct {
	Method string `json:"method"`
	Data   struct {
		SignedTransaction string `json:"signed_transaction"`
		Encoding          string `json:"encoding"`
	} `json:"data"`
}

func (out *PrivyClient) ListWallets(ctx context.Context, userID string) ([]model.SigningWallet, error) {
	ctx, span := otel.Tracer.Start(ctx, "PrivyClient.ListWallets")
	defer span.End()

	var user userResponse
	err := out.send(ctx, out.auth.R().
		SetPathParam("userId", userID).
		SetResult(&user), http.MethodGet, "/api/v1/users/{userId}")
	if err != nil {
		common.UtilSpanError(span, err)
		return nil, fmt.Errorf("get user %s: %w", userID, err)
	}

	wallets := make([]model.SigningWallet, 0, len(user.LinkedAccounts))
	for _, account := range user.LinkedAccounts {
		if account.Type != linkedAccountWallet || account.Address == "" {
			continue
		}

		kind := model.WalletClientExternal
		if account.WalletClientType == walletClientTypePrivy {
			kind = model.WalletClientCustodial
		}

		wallets = append(wallets, model.SigningWallet{
			ID:         account.ID,
			Address:    account.Address,
			ChainKind:  account.ChainType,
			ClientKind: kind,
			OwnerID:    userID,
		})
	}

	return wallets, nil
}

func (out *PrivyClient) CreateWallet(ctx context.Context, userID string, chainKind string) (model.SigningWallet, error) {
	ctx, span := otel.Tracer.Start(ctx, "PrivyClient.CreateWallet")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	var wallet walletResponse
	err := out.send(ctx, out.api.R().
		SetBody(createWalletRequest{
			ChainType: chainKind,
			Owner:     walletOwner{UserID: userID},
		}).
		SetResult(&wallet), http.MethodPost, "/v1/wallets")
	if err != nil {
		common.UtilSpanError(span, err)
		return model.SigningWallet{}, fmt.Errorf("create %s wallet: %w", chainKind, err)
	}

	slog.InfoContext(ctx, "created custodial wallet", traceIdAttr,
		slog.String(constant.LogFieldBuyerId, userID),
		slog.String("address", wallet.Address))

	return model.SigningWallet{
		ID:         wallet.ID,
		Address:    wallet.Address,
		ChainKind:  wallet.ChainType,
		ClientKind: model.WalletClientCustodial,
		OwnerID:    userID,
	}, nil
}

// RequestSignature signs with a server managed wallet. A 403 means the wallet policy refused to sign.
func (out *PrivyClient) RequestSignature(ctx context.Context, wallet model.SigningWallet, transaction []byte) ([]byte, error) {
	ctx, span := otel.Tracer.Start(ctx, "PrivyClient.RequestSignature")
	defer span.End()

	if wallet.ID == "" {
		return nil, errors.New("wallet has no provider id")
	}

	var resp signResponse
	err := out.send(ctx, out.api.R().
		SetPathParam("walletId", wallet.ID).
		SetBody(signRequest{
			Method: rpcMethodSignTx,
			Params: signParams{
				Transaction: base64.StdEncoding.EncodeToString(transaction),
				Encoding:    encodingBase64,
			},
		}).
		SetResult(&resp), http.MethodPost, "/v1/wallets/{walletId}/rpc")
	if err != nil {
		common.UtilSpanError(span, err)

		var providerErr *ProviderError
		if errors.As(err, &providerErr) && providerErr.Status == http.StatusForbidden {
			return nil, fmt.Errorf("%w: %s", errs.ErrSignatureRejected, providerErr.Body)
		}

		return nil, err
	}

	signed, err := base64.StdEncoding.DecodeString(resp.Data.SignedTransaction)
	if err != nil {
		common.UtilSpanError(span, err)
		return nil, fmt.Errorf("decode signed transaction: %w", err)
	}

	return signed, nil
}

func (out *PrivyClient) send(ctx context.Context, req *resty.Request, method, path string) error {
	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	var failure errorResponse
	resp, err := req.SetContext(ctx).SetError(&failure).Execute(method, path)
	if err != nil {
		slog.ErrorContext(ctx, "wallet provider request failed", traceIdAttr,
			slog.String("path", path),
			slog.Any(constant.LogFieldErr, err))
		return err
	}

	if resp.IsError() {
		body := failure.Error
		if body == "" {
			body = strings.TrimSpace(resp.String())
		}
		if len(body) > maxErrorBodySize {
			body = body[:maxErrorBodySize]
		}

		err = &ProviderError{Status: resp.StatusCode(), Body: body}
		slog.WarnContext(ctx, "wallet provider rejected request", traceIdAttr,
			slog.String("path", path),
			slog.Any(constant.LogFieldErr, err))
		return err
	}

	return nil
}
