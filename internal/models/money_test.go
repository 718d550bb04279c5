package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in      string
		want    Money
		wantErr bool
	}{
		{in: "1", want: 100},
		{in: "1.5", want: 150},
		{in: "1,50", want: 150},
		{in: "0.05", want: 5},
		{in: ".5", want: 50},
		{in: "-2.25", want: -225},
		{in: "12.345", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "1.-5", wantErr: true},
		{in: "", wantErr: true},
		{in: ".", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMoney(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidMoney)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoneyJSON(t *testing.T) {
	data, err := json.Marshal(Money(1005))
	require.NoError(t, err)
	assert.Equal(t, "10.05", string(data))

	var m Money
	require.NoError(t, json.Unmarshal([]byte(`"3,10"`), &m))
	assert.Equal(t, Money(310), m)

	require.NoError(t, json.Unmarshal([]byte(`1.0`), &m))
	assert.Equal(t, Money(100), m)

	require.NoError(t, json.Unmarshal([]byte(`1e2`), &m))
	assert.Equal(t, Money(10000), m)
}

func TestMoneyArithmetic(t *testing.T) {
	assert.Equal(t, Money(1000), Money(125).Times(8))
	assert.Equal(t, "-0.50", Money(-50).String())
	assert.Equal(t, Money(150), MoneyFromFloat(1.5))
	assert.InDelta(t, 2.5, Money(250).Float(), 0.0001)
}

func TestModeKey(t *testing.T) {
	assert.Equal(t, "block_dash", ModeKey("Block Dash"))
	assert.Equal(t, "5x5", ModeKey(" 5x5 "))
	assert.Equal(t, "laser_tracer", ModeKey("LASER TRACER"))
}

func TestRankingsTop(t *testing.T) {
	r := Rankings{}
	for i := 0; i < 3; i++ {
		r.Increment(CategoryStumble, "carol")
	}
	r.Increment(CategoryStumble, "bob")
	r.Increment(CategoryStumble, "alice")
	r.Increment(CategoryValorant, "dave")

	top := r.Top(CategoryStumble, 10)
	require.Len(t, top, 3)
	assert.Equal(t, RankingEntry{ParticipantID: "carol", Count: 3, Position: 1}, top[0])
	assert.Equal(t, RankingEntry{ParticipantID: "alice", Count: 1, Position: 2}, top[1])
	assert.Equal(t, RankingEntry{ParticipantID: "bob", Count: 1, Position: 3}, top[2])

	assert.Len(t, r.Top(CategoryStumble, 1), 1)
	assert.Len(t, r.Top(CategoryStumble, 0), 3)
	assert.Empty(t, Rankings{}.Top(CategoryValorant, 5))
}

func TestQueueRemove(t *testing.T) {
	q := &Queue{Key: "1x1", Capacity: 2, Participants: []string{"a", "b"}}
	assert.True(t, q.Remove("a"))
	assert.Equal(t, []string{"b"}, q.Participants)
	assert.False(t, q.Remove("a"))
	assert.Equal(t, 1, q.Remaining())
	assert.False(t, q.IsFull())
}
