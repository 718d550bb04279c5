package discord

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// fakeChannelAPI records calls instead of talking to Discord
type fakeChannelAPI struct {
	mu sync.Mutex

	guildID       string
	createErrs    []error
	sendErr       error
	editErr       error
	pinErr        error
	nextMessageID int

	created  []discordgo.GuildChannelCreateData
	messages map[string][]string
	complex  map[string][]*discordgo.MessageSend
	edits    []*discordgo.MessageEdit
	pinned   []string
	unpinned []string
}

func newFakeChannelAPI() *fakeChannelAPI {
	return &fakeChannelAPI{
		guildID:  "guild-1",
		messages: make(map[string][]string),
		complex:  make(map[string][]*discordgo.MessageSend),
	}
}

func (f *fakeChannelAPI) Channel(channelID string, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	return &discordgo.Channel{ID: channelID, GuildID: f.guildID}, nil
}

func (f *fakeChannelAPI) GuildChannelCreateComplex(guildID string, data discordgo.GuildChannelCreateData, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, data)
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return &discordgo.Channel{ID: fmt.Sprintf("match-%d", len(f.created)), GuildID: guildID, Name: data.Name}, nil
}

func (f *fakeChannelAPI) ChannelMessageSend(channelID string, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.messages[channelID] = append(f.messages[channelID], content)
	return f.newMessage(channelID), nil
}

func (f *fakeChannelAPI) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.complex[channelID] = append(f.complex[channelID], data)
	return f.newMessage(channelID), nil
}

func (f *fakeChannelAPI) ChannelMessageEditComplex(m *discordgo.MessageEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.editErr != nil {
		return nil, f.editErr
	}
	f.edits = append(f.edits, m)
	return &discordgo.Message{ID: m.ID, ChannelID: m.Channel}, nil
}

func (f *fakeChannelAPI) ChannelMessagePin(_, messageID string, _ ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pinned = append(f.pinned, messageID)
	return f.pinErr
}

func (f *fakeChannelAPI) ChannelMessageUnpin(_, messageID string, _ ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unpinned = append(f.unpinned, messageID)
	return nil
}

func (f *fakeChannelAPI) newMessage(channelID string) *discordgo.Message {
	f.nextMessageID++
	return &discordgo.Message{ID: fmt.Sprintf("msg-%d", f.nextMessageID), ChannelID: channelID}
}

var _ ChannelAPI = (*fakeChannelAPI)(nil)
var _ ChannelAPI = (*discordgo.Session)(nil)
