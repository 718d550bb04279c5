package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	repositoryContractSuite
	mr     *miniredis.Miniredis
	client *redis.Client
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&RedisConfig{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestDocumentStoredUnderDefaultKey() {
	s.Require().NoError(s.repo.Save(s.ctx, &SaveInput{Store: sampleStore()}))

	raw, err := s.mr.Get(DefaultRedisKey)
	s.Require().NoError(err)
	s.Contains(raw, `"rush_hour"`)
	s.Contains(raw, `"roundNumber": 4`)
}

func (s *RedisRepositoryTestSuite) TestCustomKey() {
	repo, err := NewRedis(&RedisConfig{RedisClient: s.client, Key: "guild:queues"})
	s.Require().NoError(err)

	s.Require().NoError(repo.Save(s.ctx, &SaveInput{Store: sampleStore()}))
	s.True(s.mr.Exists("guild:queues"))
	s.False(s.mr.Exists(DefaultRedisKey))
}

func (s *RedisRepositoryTestSuite) TestCorruptDocument() {
	s.Require().NoError(s.mr.Set(DefaultRedisKey, "{not json"))

	_, err := s.repo.Load(s.ctx)
	s.ErrorIs(err, ErrCorruptStore)
}

func (s *RedisRepositoryTestSuite) TestLoadWhenRedisIsDown() {
	s.mr.Close()

	_, err := s.repo.Load(s.ctx)
	s.Error(err)
	s.NotErrorIs(err, ErrCorruptStore)
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&RedisConfig{})
	s.Error(err)
}
