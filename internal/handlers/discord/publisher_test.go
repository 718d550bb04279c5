package discord

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/KirkDiggler/matchqueue/internal/models"
	"github.com/KirkDiggler/matchqueue/internal/services/queue"
	queueMocks "github.com/KirkDiggler/matchqueue/internal/services/queue/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PublisherTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockService *queueMocks.MockService
	api         *fakeChannelAPI
	publisher   *panelPublisher
	ctx         context.Context
	panel       *models.Panel
}

func (s *PublisherTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = queueMocks.NewMockService(s.mockCtrl)
	s.api = newFakeChannelAPI()
	s.ctx = context.Background()

	s.publisher = &panelPublisher{
		api:     s.api,
		service: s.mockService,
		render:  RenderConfig{FeePerEntrant: 100},
		logger:  slog.Default(),
	}

	s.panel = models.NewPanel("chan-1", models.CategoryStumble, 150)
	s.panel.Queues.Upsert("block_dash", "Block Dash", 8)
}

func (s *PublisherTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPublisherTestSuite(t *testing.T) {
	suite.Run(t, new(PublisherTestSuite))
}

func (s *PublisherTestSuite) TestPublishPinsAndReplacesPrevious() {
	s.mockService.EXPECT().
		SetPanelMessage(gomock.Any(), &queue.SetPanelMessageInput{VenueID: "chan-1", MessageID: "msg-1"}).
		Return(&queue.SetPanelMessageOutput{PreviousMessageID: "msg-old", Panel: s.panel}, nil)

	s.Require().NoError(s.publisher.Publish(s.ctx, s.panel))

	s.Require().Len(s.api.complex["chan-1"], 1)
	s.Equal("🎮 Painel • Stumble Guys", s.api.complex["chan-1"][0].Embeds[0].Title)
	s.Equal([]string{"msg-1"}, s.api.pinned)
	s.Equal([]string{"msg-old"}, s.api.unpinned)
}

func (s *PublisherTestSuite) TestPublishFirstPanel() {
	s.mockService.EXPECT().
		SetPanelMessage(gomock.Any(), gomock.Any()).
		Return(&queue.SetPanelMessageOutput{Panel: s.panel}, nil)

	s.Require().NoError(s.publisher.Publish(s.ctx, s.panel))
	s.Empty(s.api.unpinned)
}

func (s *PublisherTestSuite) TestPublishKeepsGoingWhenPinFails() {
	s.api.pinErr = errors.New("missing permissions")
	s.mockService.EXPECT().
		SetPanelMessage(gomock.Any(), gomock.Any()).
		Return(&queue.SetPanelMessageOutput{Panel: s.panel}, nil)

	s.NoError(s.publisher.Publish(s.ctx, s.panel))
}

func (s *PublisherTestSuite) TestPublishSendFailure() {
	s.api.sendErr = errors.New("rate limited")

	s.Error(s.publisher.Publish(s.ctx, s.panel))
	s.Empty(s.api.pinned)
}

func (s *PublisherTestSuite) TestRefresh() {
	s.panel.PinnedMessageID = models.StringRef("msg-9")
	s.mockService.EXPECT().
		GetPanel(gomock.Any(), &queue.GetPanelInput{VenueID: "chan-1"}).
		Return(&queue.GetPanelOutput{Panel: s.panel}, nil)

	s.Require().NoError(s.publisher.Refresh(s.ctx, "chan-1"))
	s.Require().Len(s.api.edits, 1)
	s.Equal("msg-9", s.api.edits[0].ID)
	s.Equal("chan-1", s.api.edits[0].Channel)
	s.NotNil(s.api.edits[0].Components)
}

func (s *PublisherTestSuite) TestRefreshWithoutPinnedMessage() {
	s.mockService.EXPECT().
		GetPanel(gomock.Any(), gomock.Any()).
		Return(&queue.GetPanelOutput{Panel: s.panel}, nil)

	s.Require().NoError(s.publisher.Refresh(s.ctx, "chan-1"))
	s.Empty(s.api.edits)
}

func (s *PublisherTestSuite) TestRefreshMissingPanel() {
	s.mockService.EXPECT().
		GetPanel(gomock.Any(), gomock.Any()).
		Return(nil, queue.ErrPanelNotFound)

	s.ErrorIs(s.publisher.Refresh(s.ctx, "chan-1"), queue.ErrPanelNotFound)
}
