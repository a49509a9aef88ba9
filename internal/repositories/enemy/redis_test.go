package enemy_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/repoquest/repoquest/internal/entities"
	"github.com/repoquest/repoquest/internal/errors"
	redisclient "github.com/repoquest/repoquest/internal/redis"
	"github.com/repoquest/repoquest/internal/repositories/enemy"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    redisclient.Client
	repo      enemy.Repository
	ctx       context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.miniRedis.Addr(),
	})

	repo, err := enemy.NewRedis(&enemy.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.miniRedis.Close()
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	e := &entities.Enemy{
		ID:      "enemy_001",
		WorldID: "world_001",
		Name:    "Neural Archon",
		Level:   31,
		HP:      520,
		Attack:  76,
		Defense: 40,
		Speed:   12,
		Tags:    []string{"ai", "backend"},
	}

	_, err := s.repo.Create(s.ctx, enemy.CreateInput{Enemy: e})
	s.Require().NoError(err)
	s.True(s.miniRedis.Exists("enemy:enemy_001"))

	getOut, err := s.repo.Get(s.ctx, enemy.GetInput{ID: "enemy_001"})
	s.Require().NoError(err)
	s.Equal("Neural Archon", getOut.Enemy.Name)
	s.Equal([]string{"ai", "backend"}, getOut.Enemy.Tags)
	s.False(getOut.Enemy.IsBoss)
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, enemy.GetInput{ID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListByWorldID() {
	for i := 0; i < 3; i++ {
		_, err := s.repo.Create(s.ctx, enemy.CreateInput{Enemy: &entities.Enemy{
			ID:      fmt.Sprintf("enemy_%03d", i),
			WorldID: "world_001",
			Name:    fmt.Sprintf("Shade %d", i),
			Level:   i + 1,
		}})
		s.Require().NoError(err)
	}
	_, err := s.repo.Create(s.ctx, enemy.CreateInput{Enemy: &entities.Enemy{
		ID:      "enemy_other",
		WorldID: "world_002",
		Name:    "Stray",
		Level:   1,
	}})
	s.Require().NoError(err)

	listOut, err := s.repo.ListByWorldID(s.ctx, enemy.ListByWorldIDInput{WorldID: "world_001"})
	s.Require().NoError(err)
	s.Len(listOut.Enemies, 3)
}

func (s *RedisRepositoryTestSuite) TestDeleteByWorldID() {
	for i := 0; i < 3; i++ {
		_, err := s.repo.Create(s.ctx, enemy.CreateInput{Enemy: &entities.Enemy{
			ID:      fmt.Sprintf("enemy_%03d", i),
			WorldID: "world_001",
			Name:    "Shade",
		}})
		s.Require().NoError(err)
	}

	delOut, err := s.repo.DeleteByWorldID(s.ctx, enemy.DeleteByWorldIDInput{WorldID: "world_001"})
	s.Require().NoError(err)
	s.Equal(3, delOut.Deleted)

	listOut, err := s.repo.ListByWorldID(s.ctx, enemy.ListByWorldIDInput{WorldID: "world_001"})
	s.Require().NoError(err)
	s.Empty(listOut.Enemies)

	_, err = s.repo.Get(s.ctx, enemy.GetInput{ID: "enemy_000"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDeleteByWorldIDEmpty() {
	delOut, err := s.repo.DeleteByWorldID(s.ctx, enemy.DeleteByWorldIDInput{WorldID: "world_bare"})
	s.Require().NoError(err)
	s.Zero(delOut.Deleted)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
