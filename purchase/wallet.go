package purchase

import (
	"context"
	"fmt"
	"golang.org/x/sync/singleflight"
	"log/slog"
	"strings"
	"tickto/common"
	"tickto/common/constant"
	"tickto/common/errs"
	"tickto/common/otel"
	"tickto/model"
)

// WalletResolver picks the signing wallet for a buyer. Selection order: the declared primary
// wallet, then the first wallet on the target chain, then a newly created custodial wallet.
type WalletResolver struct {
	Identity Identity
	Profiles ProfileLookup
	Chain    string

	group singleflight.Group
}

func (r *WalletResolver) Resolve(ctx context.Context, userID string) (model.SigningWallet, error) {
	ctx, span := otel.Tracer.Start(ctx, "WalletResolver.Resolve")
	defer span.End()

	// Concurrent purchases by one buyer share a single lookup, so at most one wallet gets created.
	// The lookup outlives any one caller; each caller only stops waiting on its own cancellation.
	ch := r.group.DoChan(userID, func() (any, error) {
		return r.resolve(context.WithoutCancel(ctx), userID)
	})

	select {
	case <-ctx.Done():
		common.UtilSpanError(span, ctx.Err())
		return model.SigningWallet{}, errs.NewPurchaseError(errs.KindCanceled, nil, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			common.UtilSpanError(span, res.Err)
			return model.SigningWallet{}, res.Err
		}

		return res.Val.(model.SigningWallet), nil
	}
}

func (r *WalletResolver) resolve(ctx context.Context, userID string) (model.SigningWallet, error) {
	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	buyerAttr := slog.String(constant.LogFieldBuyerId, userID)

	wallets, err := r.Identity.ListWallets(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list wallets", traceIdAttr, buyerAttr, slog.Any(constant.LogFieldErr, err))
		return model.SigningWallet{}, errs.NewPurchaseError(errs.KindWalletUnavailable, nil, fmt.Errorf("list wallets: %w", err))
	}

	candidates := make([]model.SigningWallet, 0, len(wallets))
	for _, wallet := range wallets {
		if r.onChain(wallet) {
			candidates = append(candidates, wallet)
		}
	}

	if primary := r.primaryAddress(ctx, userID); primary != "" {
		for _, wallet := range candidates {
			if wallet.Address == primary {
				slog.DebugContext(ctx, "resolved primary wallet", traceIdAttr, buyerAttr)
				return wallet, nil
			}
		}
	}

	if len(candidates) > 0 {
		slog.DebugContext(ctx, "resolved first chain wallet", traceIdAttr, buyerAttr)
		return candidates[0], nil
	}

	created, err := r.Identity.CreateWallet(ctx, userID, r.Chain)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create wallet", traceIdAttr, buyerAttr, slog.Any(constant.LogFieldErr, err))
		return model.SigningWallet{}, errs.NewPurchaseError(errs.KindWalletUnavailable, nil, fmt.Errorf("create wallet: %w", err))
	}

	if !r.onChain(created) {
		err = fmt.Errorf("created wallet %q is not a %s wallet", created.Address, r.Chain)
		slog.ErrorContext(ctx, "created wallet unusable", traceIdAttr, buyerAttr, slog.Any(constant.LogFieldErr, err))
		return model.SigningWallet{}, errs.NewPurchaseError(errs.KindWalletUnavailable, nil, err)
	}

	slog.InfoContext(ctx, "created custodial wallet", traceIdAttr, buyerAttr, slog.String("address", created.Address))

	return created, nil
}

func (r *WalletResolver) onChain(wallet model.SigningWallet) bool {
	if !strings.EqualFold(wallet.ChainKind, r.Chain) {
		return false
	}

	_, err := ParseAddress(wallet.Address)
	return err == nil
}

// primaryAddress is best effort: a failed profile lookup only skips the first selection rule.
func (r *WalletResolver) primaryAddress(ctx context.Context, userID string) string {
	if r.Profiles == nil {
		return ""
	}

	address, err := r.Profiles.PrimaryWalletAddress(ctx, userID)
	if err != nil {
		slog.WarnContext(ctx, "failed to load primary wallet address", common.ExtractTraceIDFromCtx(ctx), slog.Any(constant.LogFieldErr, err))
		return ""
	}

	return address
}
