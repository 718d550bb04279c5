package discord

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/matchqueue/internal/models"
	storeRepo "github.com/KirkDiggler/matchqueue/internal/repositories/store"
	"github.com/KirkDiggler/matchqueue/internal/services/queue"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
)

// interactionCall is one answer sent through fakeInteractionAPI
type interactionCall struct {
	kind    string // respond, edit or followup
	content string
	flags   discordgo.MessageFlags
	resp    discordgo.InteractionResponseType
}

type fakeInteractionAPI struct {
	mu    sync.Mutex
	calls []interactionCall
}

func (f *fakeInteractionAPI) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	call := interactionCall{kind: "respond", resp: resp.Type}
	if resp.Data != nil {
		call.content = resp.Data.Content
		call.flags = resp.Data.Flags
	}
	f.calls = append(f.calls, call)
	return nil
}

func (f *fakeInteractionAPI) InteractionResponseEdit(_ *discordgo.Interaction, newresp *discordgo.WebhookEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, interactionCall{kind: "edit", content: models.Deref(newresp.Content)})
	return &discordgo.Message{}, nil
}

func (f *fakeInteractionAPI) FollowupMessageCreate(_ *discordgo.Interaction, _ bool, data *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, interactionCall{kind: "followup", content: data.Content, flags: data.Flags})
	return &discordgo.Message{}, nil
}

func (f *fakeInteractionAPI) Calls() []interactionCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]interactionCall(nil), f.calls...)
}

// heldNotifier blocks every completion until release is closed
type heldNotifier struct {
	started chan struct{}
	release chan struct{}
}

func (n *heldNotifier) QueueCompleted(context.Context, *models.QueueCompleted) error {
	n.started <- struct{}{}
	<-n.release
	return nil
}

var _ InteractionAPI = (*fakeInteractionAPI)(nil)
var _ InteractionAPI = (*discordgo.Session)(nil)

type JoinHandlerTestSuite struct {
	suite.Suite
	notifier *heldNotifier
	flush    func(context.Context) error
	bot      *Bot
	ctx      context.Context
}

func (s *JoinHandlerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.notifier = &heldNotifier{started: make(chan struct{}, 1), release: make(chan struct{})}

	repo, err := storeRepo.NewFile(&storeRepo.FileConfig{Path: filepath.Join(s.T().TempDir(), "dados.json")})
	s.Require().NoError(err)

	svc, err := queue.New(&queue.Config{Store: repo, Notifier: s.notifier, FeePerEntrant: 100})
	s.Require().NoError(err)
	s.flush = svc.Flush

	_, err = svc.CreatePanel(s.ctx, &queue.CreatePanelInput{
		VenueID:   "chan-1",
		Category:  models.CategoryStumble,
		UnitPrice: 150,
		Modes:     []queue.ModeInput{{Label: "Block Dash", Capacity: 2}},
	})
	s.Require().NoError(err)

	s.bot = &Bot{
		queueService: svc,
		publisher: &panelPublisher{
			api:     newFakeChannelAPI(),
			service: svc,
			logger:  slog.Default(),
		},
		config: &Config{},
		logger: slog.Default(),
	}
}

func (s *JoinHandlerTestSuite) TearDownTest() {
	select {
	case <-s.notifier.release:
	default:
		close(s.notifier.release)
	}
	ctx, cancel := context.WithTimeout(s.ctx, 5*time.Second)
	defer cancel()
	s.NoError(s.flush(ctx))
}

func TestJoinHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(JoinHandlerTestSuite))
}

func (s *JoinHandlerTestSuite) join(userID string) *fakeInteractionAPI {
	api := &fakeInteractionAPI{}
	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{ID: "interaction-" + userID, ChannelID: "chan-1"}}
	action := ComponentAction{Kind: ComponentJoin, VenueID: "chan-1", ModeKey: "block_dash"}

	s.Require().NoError(s.bot.handleJoin(s.ctx, api, i, action, userID))
	return api
}

func (s *JoinHandlerTestSuite) TestJoinDefersThenAnswers() {
	calls := s.join("111").Calls()

	s.Require().Len(calls, 2)
	s.Equal("respond", calls[0].kind)
	s.Equal(discordgo.InteractionResponseDeferredChannelMessageWithSource, calls[0].resp)
	s.Equal(discordgo.MessageFlagsEphemeral, calls[0].flags)
	s.Equal(interactionCall{kind: "edit", content: "✅ Você entrou na fila **Block Dash**!"}, calls[1])
}

func (s *JoinHandlerTestSuite) TestFillingJoinAnswersWhileTicketIsPending() {
	s.join("111")

	done := make(chan *fakeInteractionAPI, 1)
	go func() {
		api := &fakeInteractionAPI{}
		i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{ID: "interaction-222", ChannelID: "chan-1"}}
		action := ComponentAction{Kind: ComponentJoin, VenueID: "chan-1", ModeKey: "block_dash"}
		if err := s.bot.handleJoin(s.ctx, api, i, action, "222"); err == nil {
			done <- api
		}
		close(done)
	}()

	var api *fakeInteractionAPI
	select {
	case api = <-done:
	case <-time.After(2 * time.Second):
		s.FailNow("join answer waited for the ticket")
	}
	s.Require().NotNil(api)

	// The notifier has started and is still held.
	select {
	case <-s.notifier.started:
	case <-time.After(2 * time.Second):
		s.FailNow("completion was never delivered")
	}

	calls := api.Calls()
	s.Require().Len(calls, 3)
	s.Equal("respond", calls[0].kind)
	s.Equal("edit", calls[1].kind)
	s.Equal("followup", calls[2].kind)
	s.Contains(calls[2].content, "Fila completa")
	s.Equal(discordgo.MessageFlagsEphemeral, calls[2].flags)
}

func (s *JoinHandlerTestSuite) TestJoinErrorIsWrittenIntoDeferredAnswer() {
	s.join("111")
	calls := s.join("111").Calls()

	s.Require().Len(calls, 2)
	s.Equal("respond", calls[0].kind)
	s.Equal(interactionCall{kind: "edit", content: describeError(queue.ErrAlreadyJoined)}, calls[1])
}
