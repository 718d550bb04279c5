package store

import (
	"context"

	"github.com/KirkDiggler/matchqueue/internal/models"
	"github.com/stretchr/testify/suite"
)

// repositoryContractSuite holds the behavior every backend shares.
// Backend suites embed it and set repo in SetupTest.
type repositoryContractSuite struct {
	suite.Suite
	repo Repository
	ctx  context.Context
}

func sampleStore() *models.Store {
	s := models.NewStore()

	panel := models.NewPanel("test-channel-id", models.CategoryStumble, 150)
	panel.PinnedMessageID = models.StringRef("test-message-id")
	panel.Round = 4
	q, _ := panel.Queues.Upsert("rush_hour", "Rush Hour", 8)
	q.Participants = []string{"user-2", "user-1"}
	q.MessageID = models.StringRef("test-message-id")
	panel.Queues.Upsert("block_dash", "Block Dash", 8)
	s.Panels[panel.VenueID] = panel

	s.Rankings.Increment(models.CategoryStumble, "user-1")
	s.Rankings.Increment(models.CategoryStumble, "user-2")
	s.Rankings.Increment(models.CategoryStumble, "user-2")
	return s
}

func (s *repositoryContractSuite) TestLoadWithoutStateReturnsEmptyStore() {
	loaded, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(models.NewStore(), loaded)
}

func (s *repositoryContractSuite) TestSaveAndLoad() {
	expected := sampleStore()

	err := s.repo.Save(s.ctx, &SaveInput{Store: expected})
	s.Require().NoError(err)

	loaded, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(expected, loaded)

	panel, ok := loaded.Panel("test-channel-id")
	s.Require().True(ok)
	s.Equal([]string{"rush_hour", "block_dash"}, panel.Queues.Keys())
}

func (s *repositoryContractSuite) TestSaveOfLoadIsStable() {
	s.Require().NoError(s.repo.Save(s.ctx, &SaveInput{Store: sampleStore()}))

	first, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Require().NoError(s.repo.Save(s.ctx, &SaveInput{Store: first}))

	second, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(first, second)
}

func (s *repositoryContractSuite) TestSaveReplacesWholeDocument() {
	s.Require().NoError(s.repo.Save(s.ctx, &SaveInput{Store: sampleStore()}))

	empty := models.NewStore()
	s.Require().NoError(s.repo.Save(s.ctx, &SaveInput{Store: empty}))

	loaded, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Empty(loaded.Panels)
	s.Empty(loaded.Rankings[models.CategoryStumble])
}

func (s *repositoryContractSuite) TestSaveNilInput() {
	s.ErrorIs(s.repo.Save(s.ctx, nil), ErrNilStore)
	s.ErrorIs(s.repo.Save(s.ctx, &SaveInput{}), ErrNilStore)
}
