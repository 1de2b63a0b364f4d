package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON_PlainPayload(t *testing.T) {
	var project GeneratedProject
	err := decodeJSON(`{"title":"Chat App","tasks":[{"title":"Setup"}]}`, &project)

	require.NoError(t, err)
	assert.Equal(t, "Chat App", project.Title)
	require.Len(t, project.Tasks, 1)
}

func TestDecodeJSON_StripsMarkdownFence(t *testing.T) {
	raw := "```json\n{\"summary\":\"Built a chat app.\",\"skillsLearned\":[\"Go\"]}\n```"

	var data PortfolioData
	require.NoError(t, decodeJSON(raw, &data))
	assert.Equal(t, "Built a chat app.", data.Summary)
	assert.Equal(t, []string{"Go"}, data.SkillsLearned)
}

func TestDecodeJSON_BareFence(t *testing.T) {
	raw := "```\n{\"score\":75}\n```"

	var data SkillScoreData
	require.NoError(t, decodeJSON(raw, &data))
	assert.Equal(t, 75, data.Score)
}

func TestDecodeJSON_MalformedFails(t *testing.T) {
	var project GeneratedProject
	err := decodeJSON("Sure! Here is your project: {title: ...", &project)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed JSON")
}

func TestBuildMentorSystemPrompt_IncludesProjectContext(t *testing.T) {
	prompt := buildMentorSystemPrompt(ProjectContext{
		Title:       "URL Shortener",
		Description: "A link shortening service",
		TechStack:   []string{"Go", "Redis"},
	})

	assert.Contains(t, prompt, "URL Shortener")
	assert.Contains(t, prompt, "Go")
}
