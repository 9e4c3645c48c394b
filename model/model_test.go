package model

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockModel_DefaultResponse(t *testing.T) {
	m := NewMockModel("test-model", "mock")

	resp, err := m.Generate(context.Background(), Request{Prompt: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, "Mock response to: Hello", resp.Text)
	assert.Equal(t, 1, m.CallCount())

	info := m.Info()
	assert.Equal(t, "test-model", info.Name)
	assert.Equal(t, "mock", info.Provider)
}

func TestMockModel_PromptKeyedResponse(t *testing.T) {
	m := NewMockModel("test-model", "mock")
	m.AddResponse("Hello", "Salve")

	resp, err := m.Generate(context.Background(), Request{Prompt: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, "Salve", resp.Text)
}

func TestMockModel_QueueTakesPrecedence(t *testing.T) {
	m := NewMockModel("test-model", "mock")
	m.AddResponse("Hello", "Salve")
	m.QueueResponse("first")
	m.QueueResponse("second")

	resp, err := m.Generate(context.Background(), Request{Prompt: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, "first", resp.Text)

	resp, err = m.Generate(context.Background(), Request{Prompt: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, "second", resp.Text)

	// Queue drained; falls back to the keyed response.
	resp, err = m.Generate(context.Background(), Request{Prompt: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, "Salve", resp.Text)
}

func TestMockModel_FailWith(t *testing.T) {
	m := NewMockModel("test-model", "mock")
	sentinel := errors.New("backend down")
	m.FailWith(sentinel)

	_, err := m.Generate(context.Background(), Request{Prompt: "Hello"})
	assert.ErrorIs(t, err, sentinel)
}

func TestMockModel_RecordsRequests(t *testing.T) {
	m := NewMockModel("test-model", "mock")

	_, err := m.Generate(context.Background(), Request{System: "sys", Prompt: "one"})
	require.NoError(t, err)
	_, err = m.Generate(context.Background(), Request{Prompt: "two"})
	require.NoError(t, err)

	reqs := m.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "sys", reqs[0].System)
	assert.Equal(t, "two", reqs[1].Prompt)
}
