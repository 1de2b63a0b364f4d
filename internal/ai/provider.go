package ai

import "context"

// Provider is the gateway to the generative model. Implementations turn a
// prompt into structured output; callers persist nothing when a call fails.
type Provider interface {
	// GenerateProject produces a new practice project with 5-8 tasks.
	GenerateProject(ctx context.Context, interests, preferredStack string) (*GeneratedProject, error)

	// ChatWithMentor answers the latest user message given the recent
	// conversation window and the project context.
	ChatWithMentor(ctx context.Context, messages []ChatMessage, project ProjectContext) (string, error)

	// GeneratePortfolio produces portfolio content for a project.
	GeneratePortfolio(ctx context.Context, project ProjectContext, tasksCompleted, totalTasks int) (*PortfolioData, error)

	// GenerateSkillScore rates a student based on their project history.
	GenerateSkillScore(ctx context.Context, studentName string, projects []ProjectSummary) (*SkillScoreData, error)
}
