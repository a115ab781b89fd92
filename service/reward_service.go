package service

import (
	"context"
	"fmt"
	"time"

	"casino/events"
	"casino/games"
	"casino/models"
)

var workMessages = []string{
	"You worked hard at the casino and earned %d coins!",
	"You helped clean the slot machines and earned %d coins!",
	"You served drinks to gamblers and received %d coins in tips!",
	"You fixed a broken slot machine and got paid %d coins!",
	"You dealt cards at the blackjack table and earned %d coins!",
	"You welcomed guests at the casino entrance and earned %d coins!",
	"You worked as a cashier and earned %d coins!",
}

// rewardService implements the RewardService interface
type rewardService struct {
	uowFactory UnitOfWorkFactory
	rng        games.Rand
	now        func() time.Time
}

// NewRewardService creates a new reward service
func NewRewardService(uowFactory UnitOfWorkFactory, rng games.Rand) RewardService {
	return &rewardService{
		uowFactory: uowFactory,
		rng:        rng,
		now:        time.Now,
	}
}

// ClaimDaily grants the daily reward if the 20 hour window has elapsed
// since the last claim. A user who never claimed is eligible immediately.
func (s *rewardService) ClaimDaily(ctx context.Context, userID, username string) (*RewardResult, error) {
	return s.claim(ctx, userID, username, claimSpec{
		gameType: models.GameTypeDaily,
		window:   DailyRewardWindow,
		min:      DailyRewardMin,
		max:      DailyRewardMax,
		last:     func(u *models.User) *time.Time { return u.LastDaily },
		stamp: func(ctx context.Context, uow UnitOfWork, id string, t time.Time) error {
			return uow.Users().SetLastDaily(ctx, id, t)
		},
		details: "Daily reward",
		granted: func(amount int64) string {
			return fmt.Sprintf("You claimed %d coins as your daily reward!", amount)
		},
		wait: formatDailyWait,
	})
}

// ClaimWork grants the work reward if the 10 minute window has elapsed
// since the last claim.
func (s *rewardService) ClaimWork(ctx context.Context, userID, username string) (*RewardResult, error) {
	return s.claim(ctx, userID, username, claimSpec{
		gameType: models.GameTypeWork,
		window:   WorkRewardWindow,
		min:      WorkRewardMin,
		max:      WorkRewardMax,
		last:     func(u *models.User) *time.Time { return u.LastWork },
		stamp: func(ctx context.Context, uow UnitOfWork, id string, t time.Time) error {
			return uow.Users().SetLastWork(ctx, id, t)
		},
		details: "Work reward",
		granted: func(amount int64) string {
			return fmt.Sprintf(workMessages[int(amount)%len(workMessages)], amount)
		},
		wait: formatWorkWait,
	})
}

// claimSpec captures how the two cooldown tracks differ.
type claimSpec struct {
	gameType models.GameType
	window   time.Duration
	min, max int
	last     func(*models.User) *time.Time
	stamp    func(ctx context.Context, uow UnitOfWork, id string, t time.Time) error
	details  string
	granted  func(amount int64) string
	wait     func(remaining time.Duration) string
}

func (s *rewardService) claim(ctx context.Context, userID, username string, spec claimSpec) (*RewardResult, error) {
	now := s.now()

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	user, err := getOrCreateForUpdate(ctx, uow, userID, username)
	if err != nil {
		return nil, err
	}

	if last := spec.last(user); last != nil && now.Sub(*last) < spec.window {
		remaining := spec.window - now.Sub(*last)
		// still cooling down; not an error, nothing to commit
		return &RewardResult{
			Granted: false,
			Wait:    remaining,
			Message: spec.wait(remaining),
		}, nil
	}

	amount := int64(spec.min + s.rng.Intn(spec.max-spec.min+1))

	user, err = applyDelta(ctx, uow, userID, username, amount, spec.gameType, spec.details)
	if err != nil {
		return nil, err
	}
	if err := spec.stamp(ctx, uow, userID, now); err != nil {
		return nil, fmt.Errorf("failed to stamp claim time: %w", err)
	}

	uow.EventBus().Publish(events.RewardClaimedEvent{
		UserID:   userID,
		GameType: spec.gameType,
		Amount:   amount,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &RewardResult{
		Granted:    true,
		Amount:     amount,
		NewBalance: user.Balance,
		Message:    spec.granted(amount),
	}, nil
}

func formatDailyWait(remaining time.Duration) string {
	secs := int(remaining.Seconds())
	return fmt.Sprintf("You can claim your next daily reward in %dh %dm", secs/3600, secs%3600/60)
}

func formatWorkWait(remaining time.Duration) string {
	secs := int(remaining.Seconds())
	return fmt.Sprintf("You can work again in %dm %ds", secs/60, secs%60)
}
