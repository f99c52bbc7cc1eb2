package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/kith-app/kith/pkg/domain"
	derrors "github.com/kith-app/kith/pkg/domain-errors"
	"github.com/kith-app/kith/pkg/platform/audit"
)

// DeleteAccount runs the deletion protocol for the identity the bearer
// credential resolves to. The acting identity is always derived from the
// credential, never from caller input.
//
// Step order is load-bearing: owned data goes before the identity record so
// a retry after a step-3 failure re-runs the cascade as a no-op. The reverse
// order would strand owned data with no identity left to re-target a
// cleanup.
func (s *Service) DeleteAccount(ctx context.Context, bearer string) error {
	s.metrics.IncRequested()

	// Step 1: authenticate. No state is mutated on failure.
	ident, err := s.directory.VerifyBearer(ctx, bearer)
	if err != nil {
		s.metrics.IncFailed(string(derrors.CodeUnauthorized))
		return derrors.Wrap(err, derrors.CodeUnauthorized, "invalid or missing credential")
	}

	jti, expiresAt, err := s.directory.CredentialInfo(bearer)
	if err != nil {
		s.metrics.IncFailed(string(derrors.CodeUnauthorized))
		return derrors.Wrap(err, derrors.CodeUnauthorized, "invalid or missing credential")
	}

	// Once the destructive steps start they run to completion or explicit
	// failure; a caller hanging up must not abandon a half-run protocol.
	// Concurrent requests for the same identity collapse into one run.
	protoCtx := context.WithoutCancel(ctx)
	_, err, _ = s.inflight.Do(ident.ID.String(), func() (any, error) {
		return nil, s.runProtocol(protoCtx, ident.ID, ident.Email, jti, expiresAt)
	})
	if err != nil {
		s.metrics.IncFailed(string(derrors.CodeOf(err)))
		return err
	}

	s.metrics.IncSucceeded()
	return nil
}

func (s *Service) runProtocol(ctx context.Context, userID domain.UserID, email, jti string, expiresAt time.Time) error {
	ctx, span := s.tracer.Start(ctx, "account.delete")
	defer span.End()
	span.SetAttributes(attribute.String("user_id", userID.String()))

	// Step 2: cascade. Idempotent; failure leaves the identity untouched
	// and the request safely retryable.
	start := time.Now()
	result, err := s.purge.PurgeUserData(ctx, userID)
	s.metrics.ObserveCascade(time.Since(start).Seconds())
	if err != nil {
		s.logger.ErrorContext(ctx, "cascading delete failed",
			"user_id", userID.String(),
			"error", err,
		)
		s.emitAudit(ctx, audit.Event{
			UserID: userID,
			Action: audit.ActionAccountDeletionFailed,
			Reason: "cascading delete failed",
			Email:  email,
		})
		return derrors.Wrap(err, derrors.CodeDataDeletionFailed, "failed to delete user data")
	}

	// Step 3: identity removal via the privileged admin capability.
	// Deleting an already-deleted identity reports success, so a retry
	// after a prior step-3 failure converges.
	if err := s.admin.DeleteIdentity(ctx, userID); err != nil {
		s.logger.ErrorContext(ctx, "identity deletion failed; owned data already purged",
			"user_id", userID.String(),
			"error", err,
		)
		s.emitAudit(ctx, audit.Event{
			UserID: userID,
			Action: audit.ActionAccountDeletionFailed,
			Reason: "identity deletion failed",
			Email:  email,
		})
		if derrors.HasCode(err, derrors.CodeIdentityDeletionFailed) {
			return err
		}
		return derrors.Wrap(err, derrors.CodeIdentityDeletionFailed, "failed to delete identity")
	}

	// The identity is gone; revoke the presenting credential so the
	// remainder of its lifetime cannot authenticate anywhere. Best-effort:
	// verification already fails against the missing identity record.
	if s.revocations != nil {
		if ttl := time.Until(expiresAt); ttl > 0 {
			if err := s.revocations.Revoke(ctx, jti, ttl); err != nil {
				s.logger.WarnContext(ctx, "credential revocation failed",
					"user_id", userID.String(),
					"error", err,
				)
			}
		}
	}

	// Best-effort entitlement dissociation; never fails the protocol.
	if s.reconciler != nil {
		s.reconciler.Reconcile(ctx, userID.String())
	}

	// A cascade that removed nothing means the identity record was the only
	// artifact left, an orphan from a run that failed after step 2.
	action := audit.ActionAccountDeleted
	if result.Total() == 0 {
		action = audit.ActionIdentityOrphanResolved
	}
	s.emitAudit(ctx, audit.Event{
		UserID:      userID,
		Action:      action,
		Email:       email,
		RowsDeleted: result.RowsDeleted,
	})

	s.logger.InfoContext(ctx, "account deleted",
		"user_id", userID.String(),
		"rows_deleted", result.Total(),
	)
	return nil
}

func (s *Service) emitAudit(ctx context.Context, event audit.Event) {
	event.Timestamp = time.Now()
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "audit emission failed",
			"action", string(event.Action),
			"error", err,
		)
	}
}
