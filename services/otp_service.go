package services

import (
	"context"
	"time"

	"frontdesk-backend/utils"

	"github.com/redis/go-redis/v9"
)

const (
	otpKeyPrefix = "otp:"
	otpTTL       = 5 * time.Minute
	otpLength    = 6
)

// OTPStore is the ephemeral code store. Redis backs it in production;
// tests substitute an in-memory fake.
type OTPStore interface {
	Set(ctx context.Context, identifier, code string, ttl time.Duration) error
	// ConsumeIfMatch atomically deletes the stored code when it matches,
	// so a code can be spent at most once even under concurrent verifies.
	// A mismatch leaves the stored code in place.
	ConsumeIfMatch(ctx context.Context, identifier, code string) (bool, error)
}

// consumeScript compares and deletes in one round trip; GET-then-DEL from
// the client would let two concurrent verifies both succeed.
var consumeScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisOTPStore stores codes under otp:<identifier> with a Redis-native
// TTL; expiry needs no application-side cleanup.
type RedisOTPStore struct {
	Client *redis.Client
}

func (r *RedisOTPStore) Set(ctx context.Context, identifier, code string, ttl time.Duration) error {
	return r.Client.Set(ctx, otpKeyPrefix+identifier, code, ttl).Err()
}

func (r *RedisOTPStore) ConsumeIfMatch(ctx context.Context, identifier, code string) (bool, error) {
	n, err := consumeScript.Run(ctx, r.Client, []string{otpKeyPrefix + identifier}, code).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// OTPService issues and verifies one-time codes gating guest check-in and
// online-booking confirmation.
type OTPService struct {
	Store OTPStore

	// Send delivers the code (SMS/email gateway); injectable for tests.
	Send func(identifier, code string) error
}

func NewOTPService(client *redis.Client) *OTPService {
	return &OTPService{
		Store: &RedisOTPStore{Client: client},
		Send:  utils.SendOTPMessage,
	}
}

// Issue generates a fresh 6-digit code for the identifier, replacing any
// earlier one, and hands it to the delivery gateway.
func (s *OTPService) Issue(ctx context.Context, identifier string) error {
	code, err := utils.GenerateOTPCode(otpLength)
	if err != nil {
		return err
	}
	if err := s.Store.Set(ctx, identifier, code, otpTTL); err != nil {
		return err
	}
	return s.Send(identifier, code)
}

// Verify spends the identifier's code. Expired, unknown and wrong codes
// all come back as the same ErrInvalidOTP.
func (s *OTPService) Verify(ctx context.Context, identifier, code string) error {
	if identifier == "" || code == "" {
		return ErrInvalidOTP
	}
	ok, err := s.Store.ConsumeIfMatch(ctx, identifier, code)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidOTP
	}
	return nil
}
