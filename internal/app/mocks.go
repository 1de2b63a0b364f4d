package app

import (
	"context"
	"fmt"

	"skillpilot_backend/internal/ai"
)

// MockAIProvider returns canned structured data. It backs local development
// without an API key and the integration tests.
type MockAIProvider struct{}

func (m *MockAIProvider) GenerateProject(ctx context.Context, interests, preferredStack string) (*ai.GeneratedProject, error) {
	stack := []string{"Go", "PostgreSQL", "React"}
	if preferredStack != "" {
		stack = []string{preferredStack}
	}

	return &ai.GeneratedProject{
		Title:       "URL Shortener Service",
		Description: "Build a URL shortener with analytics: short link creation, redirects and a click counter.",
		Difficulty:  "intermediate",
		TechStack:   stack,
		Tasks: []ai.GeneratedTask{
			{Title: "Set up the project skeleton", Description: "Initialize the repository, pick the web framework and wire a health endpoint."},
			{Title: "Design the data model", Description: "Model links and click events, write migrations."},
			{Title: "Implement link creation", Description: "POST endpoint that validates a URL and returns a short code."},
			{Title: "Implement redirects", Description: "Resolve a short code and redirect, recording the click."},
			{Title: "Add an analytics endpoint", Description: "Return click counts per link over time."},
			{Title: "Write integration tests", Description: "Cover creation, redirect and analytics flows end to end."},
		},
		SuggestedDeadline: "14",
	}, nil
}

func (m *MockAIProvider) ChatWithMentor(ctx context.Context, messages []ai.ChatMessage, project ai.ProjectContext) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("mock mentor: empty conversation")
	}
	last := messages[len(messages)-1]
	return fmt.Sprintf("Good question about %q. Break the problem into smaller steps and start with the simplest one. (You asked: %s)", project.Title, last.Content), nil
}

func (m *MockAIProvider) GeneratePortfolio(ctx context.Context, project ai.ProjectContext, tasksCompleted, totalTasks int) (*ai.PortfolioData, error) {
	return &ai.PortfolioData{
		Summary:       fmt.Sprintf("Built %s, completing %d of %d planned tasks.", project.Title, tasksCompleted, totalTasks),
		SkillsLearned: project.TechStack,
		ResumeBullets: []string{
			fmt.Sprintf("Designed and implemented %s end to end", project.Title),
			"Broke a project into tasks and delivered them on a Kanban board",
			"Practiced debugging and iterative development with an AI mentor",
		},
	}, nil
}

func (m *MockAIProvider) GenerateSkillScore(ctx context.Context, studentName string, projects []ai.ProjectSummary) (*ai.SkillScoreData, error) {
	score := 40
	if len(projects) > 0 {
		score = 60 + 5*len(projects)
		if score > 95 {
			score = 95
		}
	}

	return &ai.SkillScoreData{
		Score: score,
		Breakdown: []ai.ScoreBreakdown{
			{Category: "Project Completion", Score: score, Feedback: "Consistent delivery across projects."},
			{Category: "Technical Breadth", Score: score - 5, Feedback: "Worked with several parts of the stack."},
			{Category: "Consistency", Score: score - 10, Feedback: "Regular progress on the board."},
		},
		Summary: fmt.Sprintf("%s shows solid fundamentals across %d project(s).", studentName, len(projects)),
	}, nil
}
