package usecase

import (
	"context"
	"time"

	"dispute-core/internal/domain/entity"
	"dispute-core/internal/domain/repository"

	"go.uber.org/zap"
)

// DisputeIdentity is the key a historical dispute attempt is filed under.
type DisputeIdentity struct {
	ClientID string
	Bureau   string
	Identity string // account number, else creditor name
}

// Resolvable reports whether the identity is specific enough for history
// lookups. Without a bureau and an account/creditor identifier there is
// nothing to match against.
func (d DisputeIdentity) Resolvable() bool {
	return d.Bureau != "" && d.Identity != "" && d.ClientID != ""
}

// ResolveIdentity extracts the dispute identity from a request: account number
// preferred over creditor name, bureau from the item or the context, client id
// from client data falling back to the requesting user.
func ResolveIdentity(req entity.DisputeRequest) DisputeIdentity {
	id := DisputeIdentity{ClientID: req.UserID}
	dctx := req.Context
	if dctx == nil {
		return id
	}
	if cid := dctx.ClientData["client_id"]; cid != "" {
		id.ClientID = cid
	}
	id.Bureau = dctx.Bureau
	if item := dctx.FirstItem(); item != nil {
		if item.Bureau != "" {
			id.Bureau = item.Bureau
		}
		if item.AccountNumber != "" {
			id.Identity = item.AccountNumber
		} else {
			id.Identity = item.CreditorName
		}
	}
	return id
}

type CooldownDecision struct {
	Suppressed bool
	Attempts   int
	Identity   DisputeIdentity
}

// CooldownPolicy suppresses re-recommendation when recent attempts against
// the same item reach the configured threshold.
type CooldownPolicy struct {
	store       repository.InteractionStore
	window      time.Duration
	maxAttempts int
	logger      *zap.Logger
}

func NewCooldownPolicy(store repository.InteractionStore, window time.Duration, maxAttempts int, logger *zap.Logger) *CooldownPolicy {
	return &CooldownPolicy{
		store:       store,
		window:      window,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

func (p *CooldownPolicy) Check(ctx context.Context, req entity.DisputeRequest) CooldownDecision {
	identity := ResolveIdentity(req)
	if !identity.Resolvable() {
		return CooldownDecision{Identity: identity}
	}

	records, err := p.store.RecentDisputes(ctx, identity.ClientID, identity.Bureau, identity.Identity, p.window)
	if err != nil {
		// A history outage must not block the request; the attempt simply
		// proceeds without suppression.
		p.logger.Warn("dispute history read failed", zap.Error(err))
		return CooldownDecision{Identity: identity}
	}

	return CooldownDecision{
		Suppressed: len(records) >= p.maxAttempts,
		Attempts:   len(records),
		Identity:   identity,
	}
}
