package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Waitlist tracks actors waiting for a court+start time to free up, keyed in
// redis. Draining is SMEMBERS followed by DEL, so a crash in between leaves
// the list intact and notifications stay at-least-once.
type Waitlist struct {
	rdb *redis.Client
}

func NewWaitlist(rdb *redis.Client) *Waitlist {
	return &Waitlist{rdb: rdb}
}

func waitlistKey(courtID uint, start time.Time) string {
	return fmt.Sprintf("waitlist:court:%d:%d", courtID, start.Unix())
}

func (w *Waitlist) Join(ctx context.Context, courtID uint, start time.Time, email string) error {
	return w.rdb.SAdd(ctx, waitlistKey(courtID, start), email).Err()
}

// Drain returns all waiting emails for the court+start and clears the list.
func (w *Waitlist) Drain(ctx context.Context, courtID uint, start time.Time) ([]string, error) {
	key := waitlistKey(courtID, start)
	emails, err := w.rdb.SMembers(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if len(emails) == 0 {
		return nil, nil
	}
	if err := w.rdb.Del(ctx, key).Err(); err != nil {
		return emails, err
	}
	return emails, nil
}
