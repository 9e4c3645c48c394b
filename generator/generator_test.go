package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/curia/core"
	"github.com/hupe1980/curia/model"
	"github.com/hupe1980/curia/narrative"
)

var testClock = core.FixedClock{CurrentYear: -50, CurrentMonth: 2, CurrentDay: 15}

func TestSplitTitleBody(t *testing.T) {
	title, body := splitTitleBody("Clash at the Rubicon\nThe legion crossed at dawn.\nLosses were heavy.")
	assert.Equal(t, "Clash at the Rubicon", title)
	assert.Equal(t, "The legion crossed at dawn. Losses were heavy.", body)

	// Single-line output uses the title as the body.
	title, body = splitTitleBody("Clash at the Rubicon")
	assert.Equal(t, "Clash at the Rubicon", title)
	assert.Equal(t, "Clash at the Rubicon", body)

	// Blank lines between title and body are skipped.
	title, body = splitTitleBody("Omen over the forum\n\nA two-headed calf was born.")
	assert.Equal(t, "Omen over the forum", title)
	assert.Equal(t, "A two-headed calf was born.", body)
}

func TestExtractEntities_ExactSubset(t *testing.T) {
	known := []string{"Caesar", "Cicero", "Gaul", "Pompey"}
	text := "Caesar marched through Gaul while Cicero spoke in the forum."

	// Exactly the known entities literally present, in known order.
	assert.Equal(t, []string{"Caesar", "Cicero", "Gaul"}, extractEntities(text, known))

	// Case-sensitive as given.
	assert.Empty(t, extractEntities("caesar and gaul", known))
	assert.Empty(t, extractEntities("", known))
}

func TestExtractPlace(t *testing.T) {
	assert.Equal(t, "Gaul", extractPlace("The legion wintered in Gaul, awaiting orders.", "Various locations"))
	assert.Equal(t, "Brundisium", extractPlace("Ships gathered at Brundisium.", "Various locations"))
	// Lowercase words after prepositions are not places.
	assert.Equal(t, "Various locations", extractPlace("The men marched in silence.", "Various locations"))
	assert.Equal(t, "Various locations", extractPlace("No movement reported.", "Various locations"))
}

func TestExtractTemple(t *testing.T) {
	assert.Equal(t, "Temple of Jupiter", extractTemple("Rites were held at the Temple of Jupiter, as custom demands."))
	assert.Equal(t, "Temple mentioned", extractTemple("The augurs read the entrails near the old temple."))
	assert.Equal(t, "Temple mentioned", extractTemple("Nothing sacred occurred."))
}

func TestMilitary_EventInvariants(t *testing.T) {
	backend := model.NewMockModel("m", "mock")
	backend.QueueResponse("Battle at Pharsalus\nCaesar routed the enemy near Pharsalus. The Tenth held the line.")
	g := NewMilitary(backend, []string{"Caesar", "Cicero"})

	nc := narrative.NewContext()
	ev, ok := g.generateOne(context.Background(), testClock, nc, "battle")
	require.True(t, ok)

	assert.Equal(t, "battle", ev.Type)
	assert.True(t, ev.HasTag(TagMilitary))
	assert.True(t, ev.HasTag("battle"))
	assert.Equal(t, 3, ev.Significance)
	assert.Equal(t, "Battle at Pharsalus", ev.Metadata["title"])
	require.Contains(t, ev.Metadata, "location")
	assert.Equal(t, "Pharsalus", ev.Metadata["location"])
	assert.Equal(t, []string{"Caesar"}, ev.Entities)
	assert.Equal(t, narrative.Date{Year: -50, Month: 3, Day: 15}, ev.Date)

	// Non-battle categories carry the baseline significance.
	backend.QueueResponse("Levy in the north\nFresh cohorts were raised.")
	ev, ok = g.generateOne(context.Background(), testClock, nc, "troop_movement")
	require.True(t, ok)
	assert.Equal(t, 2, ev.Significance)
	assert.Equal(t, "Various locations", ev.Metadata["location"])
}

func TestReligious_EventInvariants(t *testing.T) {
	backend := model.NewMockModel("m", "mock")
	backend.QueueResponse("Omen in the sky\nLightning struck the Temple of Saturn during the rites.")
	g := NewReligious(backend, nil)

	ev, ok := g.generateOne(context.Background(), testClock, narrative.NewContext(), "omen")
	require.True(t, ok)

	assert.True(t, ev.HasTag(TagReligious))
	assert.True(t, ev.HasTag("omen"))
	assert.GreaterOrEqual(t, ev.Significance, 2)
	require.Contains(t, ev.Metadata, "temple")
	assert.Equal(t, "Temple of Saturn", ev.Metadata["temple"])

	backend.QueueResponse("Quiet rites\nThe ceremony concluded without portent.")
	ev, ok = g.generateOne(context.Background(), testClock, narrative.NewContext(), "ceremony")
	require.True(t, ok)
	assert.Equal(t, "Temple mentioned", ev.Metadata["temple"])
}

func TestPolitical_EventInvariants(t *testing.T) {
	backend := model.NewMockModel("m", "mock")
	backend.QueueResponse("Pact in the forum\nThe Populares closed ranks behind the new tribune.")
	g := NewPolitical(backend, nil, []string{"Optimates", "Populares"})

	ev, ok := g.generateOne(context.Background(), testClock, narrative.NewContext(), "alliance")
	require.True(t, ok)

	assert.True(t, ev.HasTag(TagPolitical))
	assert.True(t, ev.HasTag("alliance"))
	assert.GreaterOrEqual(t, ev.Significance, 2)
	assert.Equal(t, "Populares", ev.Metadata["faction"])

	backend.QueueResponse("Whispers\nNo faction claimed the rumor.")
	ev, ok = g.generateOne(context.Background(), testClock, narrative.NewContext(), "scandal")
	require.True(t, ok)
	assert.Equal(t, "the Senate", ev.Metadata["faction"])
}

func TestGenerateEvents_FailureIsolation(t *testing.T) {
	backend := model.NewMockModel("m", "mock")
	backend.FailWith(errors.New("backend down"))
	nc := narrative.NewContext()

	generators := []Generator{
		NewMilitary(backend, nil),
		NewReligious(backend, nil),
		NewPolitical(backend, nil, nil),
	}
	for _, g := range generators {
		// A dead backend yields an empty batch, never an error or panic.
		events := g.GenerateEvents(context.Background(), testClock, nc)
		assert.Empty(t, events, "generator %s", g.Name())
	}
}

func TestGenerateEvents_ProducesCategoryEvents(t *testing.T) {
	backend := model.NewMockModel("m", "mock")
	g := NewMilitary(backend, nil, func(o *Options) {
		o.EventsPerTick = 3
	})

	events := g.GenerateEvents(context.Background(), testClock, narrative.NewContext())
	require.Len(t, events, 3)
	for _, ev := range events {
		assert.True(t, ev.HasTag(TagMilitary))
		assert.Contains(t, g.Categories(), ev.Type)
		assert.GreaterOrEqual(t, ev.Significance, 2)
	}
}

func TestCategories_AreCopies(t *testing.T) {
	g := NewMilitary(model.NewMockModel("m", "mock"), nil)
	cats := g.Categories()
	cats[0] = "mutated"
	assert.Equal(t, "battle", g.Categories()[0])
}
