package discord

import (
	"fmt"
	"testing"

	"github.com/KirkDiggler/matchqueue/internal/models"
	"github.com/KirkDiggler/matchqueue/internal/services/queue"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModes(t *testing.T) {
	modes, err := parseModes(" 1x1, 2x2 ,,5x5, 1X1 ", 5)
	require.NoError(t, err)
	assert.Equal(t, []queue.ModeInput{
		{Key: "1x1", Label: "1x1", Capacity: 5},
		{Key: "2x2", Label: "2x2", Capacity: 5},
		{Key: "5x5", Label: "5x5", Capacity: 5},
	}, modes)

	_, err = parseModes(" , ", 5)
	assert.ErrorIs(t, err, queue.ErrNoModes)

	_, err = parseModes("this label is far too long to fit on a discord button", 5)
	assert.ErrorIs(t, err, queue.ErrInvalidInput)

	many := ""
	for n := 0; n <= maxSelectors; n++ {
		many += fmt.Sprintf("m%d,", n)
	}
	_, err = parseModes(many, 5)
	assert.ErrorIs(t, err, queue.ErrInvalidInput)
}

func TestCreatePanelCommandInput(t *testing.T) {
	stumble := NewStumblePanelCommand(commandDeps{})
	input, err := stumble.buildInput("chan-1", map[string]*discordgo.ApplicationCommandInteractionDataOption{
		"valor": {Name: "valor", Type: discordgo.ApplicationCommandOptionNumber, Value: 2.5},
	})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryStumble, input.Category)
	assert.Equal(t, models.Money(250), input.UnitPrice)
	require.Len(t, input.Modes, 3)
	assert.Equal(t, "rush_hour", input.Modes[1].Key)
	assert.Equal(t, 8, input.Modes[0].Capacity)

	valorant := NewValorantPanelCommand(commandDeps{})
	input, err = valorant.buildInput("chan-2", map[string]*discordgo.ApplicationCommandInteractionDataOption{
		"max_pessoas": {Name: "max_pessoas", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(10)},
		"modos":       {Name: "modos", Type: discordgo.ApplicationCommandOptionString, Value: "5x5"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.Money(100), input.UnitPrice)
	assert.Equal(t, []queue.ModeInput{{Key: "5x5", Label: "5x5", Capacity: 10}}, input.Modes)

	input, err = valorant.buildInput("chan-2", nil)
	require.NoError(t, err)
	assert.Len(t, input.Modes, 3)
	assert.Equal(t, 5, input.Modes[0].Capacity)
}

func TestStaffList(t *testing.T) {
	staff := newStaffList([]string{"111"})
	assert.True(t, staff.allows("111"))
	assert.False(t, staff.allows("222"))
	assert.False(t, newStaffList(nil).allows(""))
}

func TestCapacityMessage(t *testing.T) {
	assert.Equal(t, "❌ max_pessoas deve ser entre 2 e 128 e não menor que o número de inscritos na fila.", capacityMessage(128))
	assert.Equal(t, describeError(queue.ErrInvalidCapacity), capacityMessage(0))
	assert.NotContains(t, capacityMessage(0), "entre")
}
