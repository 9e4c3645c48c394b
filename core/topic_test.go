package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTopic_Shapes(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  Topic
	}{
		{"canonical struct", Topic{Text: "Land reform", Category: "agrarian"}, Topic{Text: "Land reform", Category: "agrarian"}},
		{"pointer", &Topic{Text: "Land reform", Category: "agrarian"}, Topic{Text: "Land reform", Category: "agrarian"}},
		{"bare string", "Land reform", Topic{Text: "Land reform"}},
		{"array pair", [2]string{"Land reform", "agrarian"}, Topic{Text: "Land reform", Category: "agrarian"}},
		{"slice pair", []string{"Land reform", "agrarian"}, Topic{Text: "Land reform", Category: "agrarian"}},
		{"map", map[string]string{"text": "Land reform", "category": "agrarian"}, Topic{Text: "Land reform", Category: "agrarian"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeTopic(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeTopic_Invalid(t *testing.T) {
	invalid := []any{
		nil,
		42,
		"",
		[]string{"only text"},
		[]string{"a", "b", "c"},
		map[string]string{"category": "agrarian"},
		(*Topic)(nil),
		Topic{Category: "agrarian"},
	}
	for _, input := range invalid {
		_, err := NormalizeTopic(input)
		assert.ErrorIs(t, err, ErrInvalidTopic, "input %#v", input)
	}
}

func TestTopic_String(t *testing.T) {
	assert.Equal(t, "Land reform (agrarian)", Topic{Text: "Land reform", Category: "agrarian"}.String())
	assert.Equal(t, "Land reform", Topic{Text: "Land reform"}.String())
}
