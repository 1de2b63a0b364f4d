package ai

import (
	"fmt"
	"strings"
)

func buildProjectPrompt(interests, preferredStack string) string {
	var b strings.Builder
	b.WriteString("Generate a realistic software engineering project for a student to build.\n")
	if interests != "" {
		fmt.Fprintf(&b, "Student interests: %s\n", interests)
	}
	if preferredStack != "" {
		fmt.Fprintf(&b, "Preferred tech stack: %s\n", preferredStack)
	}
	b.WriteString(`
Return ONLY valid JSON with this exact structure:
{
  "title": "Project Title",
  "description": "2-3 sentence description of the project",
  "difficulty": "beginner" | "intermediate" | "advanced",
  "techStack": ["tech1", "tech2", "tech3"],
  "tasks": [
    { "title": "Task title", "description": "Task description with clear deliverable" }
  ],
  "suggestedDeadline": "number of days (e.g., '14')"
}

Generate 5-8 tasks that are progressive and realistic.
Make the project practical, interesting, and portfolio-worthy.
Focus on real-world skills that recruiters value.`)
	return b.String()
}

func buildMentorSystemPrompt(project ProjectContext) string {
	return fmt.Sprintf(`You are SkillPilot AI Mentor — a friendly, knowledgeable coding mentor.
You are helping a student work on their project: "%s".
Project description: %s
Tech stack: %s

Be concise, helpful, and encouraging. Provide code examples when relevant.
Guide the student rather than giving complete solutions.
Focus on teaching patterns, best practices, and problem-solving skills.`,
		project.Title, project.Description, strings.Join(project.TechStack, ", "))
}

func buildPortfolioPrompt(project ProjectContext, tasksCompleted, totalTasks int) string {
	return fmt.Sprintf(`Generate portfolio content for a completed student project.

Project: %s
Description: %s
Tech Stack: %s
Tasks Completed: %d/%d

Return ONLY valid JSON:
{
  "summary": "A compelling 3-4 sentence project summary suitable for a portfolio",
  "skillsLearned": ["skill1", "skill2", "skill3", "skill4", "skill5"],
  "resumeBullets": [
    "Action-oriented bullet point 1",
    "Action-oriented bullet point 2",
    "Action-oriented bullet point 3"
  ]
}

Make resume bullets quantifiable and action-oriented (start with strong verbs).
Skills should be specific and technical.`,
		project.Title, project.Description, strings.Join(project.TechStack, ", "),
		tasksCompleted, totalTasks)
}

func buildSkillScorePrompt(studentName string, projects []ProjectSummary) string {
	var lines []string
	for _, p := range projects {
		lines = append(lines, fmt.Sprintf("- %s (%s, %d%% complete, Stack: %s)",
			p.Title, p.Difficulty, p.Progress, strings.Join(p.TechStack, ", ")))
	}

	return fmt.Sprintf(`Analyze this student's project portfolio and generate a skill score.

Student: %s
Projects:
%s

Return ONLY valid JSON:
{
  "score": 0-100,
  "breakdown": [
    { "category": "Technical Depth", "score": 0-100, "feedback": "brief feedback" },
    { "category": "Project Complexity", "score": 0-100, "feedback": "brief feedback" },
    { "category": "Completion Rate", "score": 0-100, "feedback": "brief feedback" },
    { "category": "Tech Diversity", "score": 0-100, "feedback": "brief feedback" }
  ],
  "summary": "2-3 sentence overall assessment"
}`, studentName, strings.Join(lines, "\n"))
}
