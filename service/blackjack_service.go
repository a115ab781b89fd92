package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"casino/events"
	"casino/games"
	"casino/models"
)

// blackjackService implements the BlackjackService interface. The bet is
// debited when the hand starts; the credit, if any, is applied when the
// hand settles (player stand, bust, natural, or idle timeout).
type blackjackService struct {
	uowFactory UnitOfWorkFactory
	rng        games.Rand
	sessions   *SessionRegistry
}

// NewBlackjackService creates a new blackjack service. Hands left idle
// for timeout are stood automatically and settled against the dealer.
func NewBlackjackService(uowFactory UnitOfWorkFactory, rng games.Rand) BlackjackService {
	s := &blackjackService{
		uowFactory: uowFactory,
		rng:        rng,
	}
	s.sessions = NewSessionRegistry(BlackjackTimeout, s.handleTimeout)
	return s
}

// Start debits the bet and deals a new hand. A natural on either side
// settles immediately inside the same transaction as the debit; otherwise
// the hand is registered and waits for Hit or Stand.
func (s *blackjackService) Start(ctx context.Context, userID, username, betToken string) (*BlackjackSnapshot, error) {
	// reserve the user's slot before touching the ledger so a second
	// start cannot place a second bet
	if err := s.sessions.Reserve(userID); err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		s.sessions.Release(userID)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	bet, balance, err := placeWager(ctx, uow, userID, username, betToken, models.GameTypeBlackjack)
	if err != nil {
		s.sessions.Release(userID)
		return nil, err
	}

	game := games.NewBlackjack(bet, s.rng)
	sess := &BlackjackSession{
		GameID:   uuid.NewString(),
		UserID:   userID,
		Username: username,
		Game:     game,
	}

	if game.Status().Terminal() {
		// natural blackjack or push, settled in the same transaction
		// as the debit
		newBalance, err := settleInto(ctx, uow, sess, "")
		if err != nil {
			s.sessions.Release(userID)
			return nil, err
		}
		if err := uow.Commit(); err != nil {
			s.sessions.Release(userID)
			return nil, fmt.Errorf("failed to commit transaction: %w", err)
		}
		s.sessions.Release(userID)
		return snapshot(sess, newBalance), nil
	}

	if err := uow.Commit(); err != nil {
		s.sessions.Release(userID)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.sessions.Put(sess)
	return snapshot(sess, balance-bet), nil
}

// Hit draws a card for the actor's active hand. A bust settles the hand
// immediately; otherwise the idle timer restarts.
func (s *blackjackService) Hit(ctx context.Context, userID, actorID string) (*BlackjackSnapshot, error) {
	sess, err := s.sessions.Get(userID, actorID)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()

	// a terminal hand still registered means an earlier settlement
	// attempt failed; resubmitting retries it instead of drawing
	if sess.Game.Status().Terminal() {
		return s.finish(ctx, sess, "")
	}

	if err := sess.Game.Hit(); err != nil {
		return nil, ErrNoActiveGame
	}

	if sess.Game.Status().Terminal() {
		return s.finish(ctx, sess, "")
	}

	s.sessions.Touch(userID)
	return snapshot(sess, 0), nil
}

// Stand plays out the dealer's hand and settles the bet
func (s *blackjackService) Stand(ctx context.Context, userID, actorID string) (*BlackjackSnapshot, error) {
	sess, err := s.sessions.Get(userID, actorID)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()

	// retry the settlement if a previous attempt left the hand terminal
	if !sess.Game.Status().Terminal() {
		if err := sess.Game.Stand(); err != nil {
			return nil, ErrNoActiveGame
		}
	}
	return s.finish(ctx, sess, "")
}

// handleTimeout stands an abandoned hand on the player's behalf. It runs
// on the timer goroutine, so any action holding the session lock wins the
// race and the terminal status check below turns this into a no-op.
func (s *blackjackService) handleTimeout(userID string) {
	sess, ok := s.sessions.lookup(userID)
	if !ok {
		return
	}

	sess.Lock()
	defer sess.Unlock()

	suffix := " (timeout)"
	if sess.Game.Status().Terminal() {
		// the hand ended but its settlement failed; retry it as is
		suffix = ""
	} else if err := sess.Game.Stand(); err != nil {
		return
	}

	if _, err := s.finish(context.Background(), sess, suffix); err != nil && !errors.Is(err, ErrNoActiveGame) {
		log.WithError(err).WithField("user_id", userID).Error("Failed to settle timed out blackjack hand")
	}
}

// finish settles a terminal hand in a fresh transaction and removes the
// session. The caller holds the session lock. On failure the session is
// kept so the player (or the timeout) can resubmit the settlement.
func (s *blackjackService) finish(ctx context.Context, sess *BlackjackSession, detailSuffix string) (*BlackjackSnapshot, error) {
	// a concurrent action may have settled and released this hand between
	// the registry lookup and taking the session lock
	if cur, ok := s.sessions.lookup(sess.UserID); !ok || cur != sess {
		return nil, ErrNoActiveGame
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	newBalance, err := settleInto(ctx, uow, sess, detailSuffix)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.sessions.Release(sess.UserID)
	return snapshot(sess, newBalance), nil
}

// settleInto applies the payout of a terminal hand inside the given unit
// of work. The bet was already debited at start, so a non-losing hand
// credits the stake back plus the net payout; a loss credits nothing.
func settleInto(ctx context.Context, uow UnitOfWork, sess *BlackjackSession, detailSuffix string) (int64, error) {
	payout := sess.Game.Settle()
	details := fmt.Sprintf("Result: %s%s [game %s]", sess.Game.Status(), detailSuffix, sess.GameID)

	var newBalance int64
	if credit := sess.Game.Bet() + payout; credit > 0 {
		user, err := applyDelta(ctx, uow, sess.UserID, sess.Username, credit, models.GameTypeBlackjack, details)
		if err != nil {
			return 0, err
		}
		newBalance = user.Balance
	} else {
		user, err := uow.Users().GetByID(ctx, sess.UserID)
		if err != nil {
			return 0, fmt.Errorf("failed to get user: %w", err)
		}
		if user != nil {
			newBalance = user.Balance
		}
	}

	uow.EventBus().Publish(events.GamePlayedEvent{
		UserID:   sess.UserID,
		GameType: models.GameTypeBlackjack,
		Bet:      sess.Game.Bet(),
		Winnings: sess.Game.Bet() + payout,
	})

	return newBalance, nil
}

// snapshot captures the hand as the caller should present it. NewBalance
// is only meaningful once the hand is terminal; while the hand is active
// the dealer's hole card stays hidden at the presentation layer.
func snapshot(sess *BlackjackSession, newBalance int64) *BlackjackSnapshot {
	game := sess.Game
	snap := &BlackjackSnapshot{
		GameID:      sess.GameID,
		UserID:      sess.UserID,
		Bet:         game.Bet(),
		PlayerHand:  game.PlayerHand(),
		DealerHand:  game.DealerHand(),
		PlayerTotal: games.HandValue(game.PlayerHand()),
		DealerTotal: games.HandValue(game.DealerHand()),
		Status:      game.Status(),
		NewBalance:  newBalance,
	}
	if game.Status().Terminal() {
		snap.Payout = game.Settle()
	}
	return snap
}
