package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

type RedisLimiterSuite struct {
	suite.Suite
	ctx       context.Context
	container *tcredis.RedisContainer
	rdb       *redis.Client
}

func TestRedisLimiterSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis integration tests in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	suite.Run(t, new(RedisLimiterSuite))
}

func (s *RedisLimiterSuite) SetupSuite() {
	s.ctx = context.Background()

	var err error
	s.container, err = tcredis.Run(s.ctx, "redis:7-alpine")
	s.Require().NoError(err)

	uri, err := s.container.ConnectionString(s.ctx)
	s.Require().NoError(err)

	opts, err := redis.ParseURL(uri)
	s.Require().NoError(err)
	s.rdb = redis.NewClient(opts)
}

func (s *RedisLimiterSuite) TearDownSuite() {
	if s.rdb != nil {
		_ = s.rdb.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *RedisLimiterSuite) SetupTest() {
	s.Require().NoError(s.rdb.FlushAll(s.ctx).Err())
}

func (s *RedisLimiterSuite) TestAllowWithinWindow() {
	rl := NewRedisLimiter(s.rdb, 2, time.Minute)

	ok, _ := rl.Allow("10.0.0.1")
	s.True(ok)
	ok, _ = rl.Allow("10.0.0.1")
	s.True(ok)

	ok, retry := rl.Allow("10.0.0.1")
	s.False(ok)
	s.Greater(retry, time.Duration(0))
	s.LessOrEqual(retry, time.Minute)
}

func (s *RedisLimiterSuite) TestKeysAreIndependent() {
	rl := NewRedisLimiter(s.rdb, 1, time.Minute)

	ok, _ := rl.Allow("10.0.0.1")
	s.True(ok)
	ok, _ = rl.Allow("10.0.0.1")
	s.False(ok)

	ok, _ = rl.Allow("10.0.0.2")
	s.True(ok)
}

func (s *RedisLimiterSuite) TestWindowExpires() {
	rl := NewRedisLimiter(s.rdb, 1, time.Second)

	ok, _ := rl.Allow("10.0.0.3")
	s.True(ok)
	ok, _ = rl.Allow("10.0.0.3")
	s.False(ok)

	s.Eventually(func() bool {
		ok, _ := rl.Allow("10.0.0.3")
		return ok
	}, 5*time.Second, 200*time.Millisecond)
}
