package senate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/curia/core"
	"github.com/hupe1980/curia/model"
	"github.com/hupe1980/curia/senator"
)

func TestInitializeSenators(t *testing.T) {
	t.Run("preserves roster order", func(t *testing.T) {
		env := newTestEnvironment(t, model.NewMockModel("m", "mock"))

		roster := env.Roster()
		require.Len(t, roster, 3)
		assert.Equal(t, "Cicero", roster[0].Name)
		assert.Equal(t, "Caesar", roster[1].Name)
		assert.Equal(t, "Cato", roster[2].Name)
	})

	t.Run("rejects empty roster", func(t *testing.T) {
		env := New(model.NewMockModel("m", "mock"))
		assert.ErrorIs(t, env.InitializeSenators(nil), ErrEmptyRoster)
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		env := New(model.NewMockModel("m", "mock"))
		err := env.InitializeSenators([]senator.Profile{
			{Name: "Cicero", Faction: "Optimates"},
			{Name: "Cicero", Faction: "Populares"},
		})
		assert.ErrorIs(t, err, ErrDuplicateSenator)
	})

	t.Run("rejects second initialization", func(t *testing.T) {
		env := newTestEnvironment(t, model.NewMockModel("m", "mock"))
		err := env.InitializeSenators([]senator.Profile{{Name: "Brutus", Faction: "Optimates"}})
		assert.ErrorIs(t, err, ErrRosterInitialized)
	})

	t.Run("rejects invalid profile", func(t *testing.T) {
		env := New(model.NewMockModel("m", "mock"))
		err := env.InitializeSenators([]senator.Profile{{Name: "", Faction: "Optimates"}})
		assert.ErrorIs(t, err, senator.ErrInvalidProfile)
	})
}

func TestSetTopics(t *testing.T) {
	env := New(model.NewMockModel("m", "mock"))

	err := env.SetTopics([]any{
		"Grain subsidies for the plebs",
		[2]string{"War with Parthia", "military"},
		core.Topic{Text: "Temple repairs", Category: "religious"},
		map[string]string{"text": "Land reform", "category": "economic"},
	})
	require.NoError(t, err)

	topics := env.Topics()
	require.Len(t, topics, 4)
	assert.Equal(t, "Grain subsidies for the plebs", topics[0].Text)
	assert.Equal(t, "military", topics[1].Category)
	assert.Equal(t, "religious", topics[2].Category)
	assert.Equal(t, "Land reform", topics[3].Text)

	// A single invalid entry rejects the whole batch.
	err = env.SetTopics([]any{"Valid topic", ""})
	assert.ErrorIs(t, err, core.ErrInvalidTopic)
	assert.Len(t, env.Topics(), 4)
}

func TestRunDebate(t *testing.T) {
	backend := model.NewMockModel("m", "mock")
	env := New(backend, func(o *Options) {
		o.Seed = 7
		o.AbstainChance = 0
	})
	require.NoError(t, env.InitializeSenators(testProfiles))

	result, err := env.RunDebate(context.Background(), "Grain subsidies for the plebs")
	require.NoError(t, err)

	assert.Equal(t, "Grain subsidies for the plebs", result.Topic.Text)

	// One speech per senator, delivered in roster order.
	require.Len(t, result.Speeches, 3)
	assert.Equal(t, "Cicero", result.Speeches[0].Senator)
	assert.Equal(t, "Caesar", result.Speeches[1].Senator)
	assert.Equal(t, "Cato", result.Speeches[2].Senator)
	for _, speech := range result.Speeches {
		assert.NotEmpty(t, speech.Content)
		assert.NotEmpty(t, speech.Faction)
	}

	// Interjections never target their own author.
	for _, in := range result.Interjections {
		assert.NotEqual(t, in.Senator, in.Target)
	}

	// The round closes with a full roll call.
	require.NotNil(t, result.Vote)
	assert.Equal(t, 3, result.Vote.Total)
	assert.Equal(t, result.Vote.Total, result.Vote.Votes.Sum())

	// Each senator decided its stance exactly once; the vote phase reuses
	// the cached stance context instead of re-deciding.
	stanceCalls := 0
	for _, req := range backend.Requests() {
		if strings.Contains(req.Prompt, "Begin with the word SUPPORT or OPPOSE") {
			stanceCalls++
		}
	}
	assert.Equal(t, 3, stanceCalls)

	history := env.History()
	require.Len(t, history, 1)
	assert.Equal(t, result.Topic, history[0].Topic)
}

func TestRunDebate_InvalidTopic(t *testing.T) {
	env := newTestEnvironment(t, model.NewMockModel("m", "mock"))
	_, err := env.RunDebate(context.Background(), "")
	assert.ErrorIs(t, err, core.ErrInvalidTopic)
}

func TestRunDebate_EmptyRoster(t *testing.T) {
	env := New(model.NewMockModel("m", "mock"))
	_, err := env.RunDebate(context.Background(), "Grain subsidies")
	assert.ErrorIs(t, err, ErrEmptyRoster)
}

func TestRunDebate_BackendFailureCompletesRound(t *testing.T) {
	backend := model.NewMockModel("m", "mock")
	backend.FailWith(errors.New("backend down"))
	env := newTestEnvironment(t, backend)

	result, err := env.RunDebate(context.Background(), "Grain subsidies")
	require.NoError(t, err)

	// No speeches or interjections were produced, but the session still
	// reached a roll call where everyone abstains.
	assert.Empty(t, result.Speeches)
	assert.Empty(t, result.Interjections)
	require.NotNil(t, result.Vote)
	assert.Equal(t, Tally{Abstain: 3}, result.Vote.Votes)
	assert.Equal(t, OutcomeRejected, result.Vote.Outcome)
}
