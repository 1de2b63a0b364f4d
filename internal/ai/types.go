package ai

// GeneratedProject is the structured output of a project-generation call.
type GeneratedProject struct {
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Difficulty        string          `json:"difficulty"`
	TechStack         []string        `json:"techStack"`
	Tasks             []GeneratedTask `json:"tasks"`
	SuggestedDeadline string          `json:"suggestedDeadline"`
}

type GeneratedTask struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PortfolioData is the structured output of a portfolio-generation call.
type PortfolioData struct {
	Summary       string   `json:"summary"`
	SkillsLearned []string `json:"skillsLearned"`
	ResumeBullets []string `json:"resumeBullets"`
}

// SkillScoreData is the structured output of a skill-score evaluation.
type SkillScoreData struct {
	Score     int              `json:"score"`
	Breakdown []ScoreBreakdown `json:"breakdown"`
	Summary   string           `json:"summary"`
}

type ScoreBreakdown struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// ChatMessage is one turn of the mentor conversation context.
type ChatMessage struct {
	Role    string // "user" or "assistant"
	Content string
}

// ProjectContext scopes the mentor to one project.
type ProjectContext struct {
	Title       string
	Description string
	TechStack   []string
}

// ProjectSummary is the per-project input of a skill-score evaluation.
type ProjectSummary struct {
	Title      string
	TechStack  []string
	Progress   int
	Difficulty string
}
