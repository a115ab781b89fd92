package service

import (
	"context"
	"fmt"

	"casino/events"
	"casino/games"
	"casino/models"
)

// gamblingService implements the GamblingService interface
type gamblingService struct {
	uowFactory UnitOfWorkFactory
	slots      *games.SlotMachine
	reels      *games.ReelMachine
	rng        games.Rand
}

// NewGamblingService creates a new gambling service. The random source
// is shared by all of its games; tests inject a deterministic one.
func NewGamblingService(uowFactory UnitOfWorkFactory, rng games.Rand) GamblingService {
	return &gamblingService{
		uowFactory: uowFactory,
		slots:      games.NewSlotMachine(rng),
		reels:      games.NewReelMachine(rng),
		rng:        rng,
	}
}

// placeWager locks the user's row, parses and validates the bet against
// the current balance, and debits it as one transaction. Validation
// failures happen before the debit so a rollback leaves no trace.
func placeWager(ctx context.Context, uow UnitOfWork, userID, username, betToken string, gameType models.GameType) (bet int64, balance int64, err error) {
	user, err := uow.Users().GetForUpdate(ctx, userID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get user: %w", err)
	}
	if user != nil {
		balance = user.Balance
	}

	bet, err = ParseBet(betToken, balance)
	if err != nil {
		return 0, 0, err
	}
	if bet <= 0 {
		return 0, 0, ErrNonPositiveBet
	}
	if bet > balance {
		return 0, 0, ErrInsufficientFunds
	}

	if _, err := applyDelta(ctx, uow, userID, username, -bet, gameType, "Bet placed"); err != nil {
		return 0, 0, err
	}
	return bet, balance, nil
}

func (s *gamblingService) PlaySlots(ctx context.Context, userID, username, betToken string) (*SlotsResult, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	bet, balance, err := placeWager(ctx, uow, userID, username, betToken, models.GameTypeSlots)
	if err != nil {
		return nil, err
	}

	grid := s.slots.Spin()
	multiplier, detail := games.Score(grid)
	winnings := games.Winnings(bet, multiplier)

	if winnings > 0 {
		if _, err := applyDelta(ctx, uow, userID, username, winnings, models.GameTypeSlots, "Win: "+detail); err != nil {
			return nil, err
		}
	}

	uow.EventBus().Publish(events.GamePlayedEvent{
		UserID:   userID,
		GameType: models.GameTypeSlots,
		Bet:      bet,
		Winnings: winnings,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &SlotsResult{
		Bet:        bet,
		Grid:       grid,
		Multiplier: multiplier,
		Detail:     detail,
		Winnings:   winnings,
		NewBalance: balance - bet + winnings,
	}, nil
}

func (s *gamblingService) PlayAnimatedSlots(ctx context.Context, userID, username, betToken string) (*ReelsResult, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	bet, balance, err := placeWager(ctx, uow, userID, username, betToken, models.GameTypeAnimatedSlots)
	if err != nil {
		return nil, err
	}

	row := s.reels.Spin()
	multiplier, detail := games.ScoreLine(row)
	winnings := games.Winnings(bet, multiplier)

	if winnings > 0 {
		if _, err := applyDelta(ctx, uow, userID, username, winnings, models.GameTypeAnimatedSlots, "Win: "+detail); err != nil {
			return nil, err
		}
	}

	uow.EventBus().Publish(events.GamePlayedEvent{
		UserID:   userID,
		GameType: models.GameTypeAnimatedSlots,
		Bet:      bet,
		Winnings: winnings,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &ReelsResult{
		Bet:        bet,
		Row:        row,
		Multiplier: multiplier,
		Detail:     detail,
		Winnings:   winnings,
		NewBalance: balance - bet + winnings,
	}, nil
}

func (s *gamblingService) PlayCoinflip(ctx context.Context, userID, username, betToken string, choice games.CoinSide) (*CoinflipResult, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	bet, balance, err := placeWager(ctx, uow, userID, username, betToken, models.GameTypeCoinflip)
	if err != nil {
		return nil, err
	}

	outcome := games.Flip(s.rng)
	won := choice == outcome

	var winnings int64
	if won {
		winnings = bet * games.CoinflipPayout
		detail := fmt.Sprintf("Win: %s", outcome)
		if _, err := applyDelta(ctx, uow, userID, username, winnings, models.GameTypeCoinflip, detail); err != nil {
			return nil, err
		}
	}

	uow.EventBus().Publish(events.GamePlayedEvent{
		UserID:   userID,
		GameType: models.GameTypeCoinflip,
		Bet:      bet,
		Winnings: winnings,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &CoinflipResult{
		Bet:        bet,
		Choice:     choice,
		Outcome:    outcome,
		Won:        won,
		Winnings:   winnings,
		NewBalance: balance - bet + winnings,
	}, nil
}
