package interview

import "fmt"

// Sentinel values steering template selection.
const (
	HRInterview = "HR_Interview"
	UserStudent = "student"

	DefaultLevel     = "beginner"
	DefaultUser      = UserStudent
	DefaultInterview = "technical_interview"
)

// buildQuestionPrompt selects one of three templates. The HR template wins
// over everything else; the persona decides between the remaining two.
func buildQuestionPrompt(skill, level, user, interview string) string {
	if interview == HRInterview {
		return fmt.Sprintf(`You are an experienced HR interviewer.
The user is preparing a behavioral/HR interview.

Generate ONE question based ONLY on this skill: %s.

Focus on:
- evaluating soft skills, communication, and teamwork
- situational and behavioral scenarios
- problem-solving approach and attitude
- keeping it professional and concise

Return ONLY the question text.
Do NOT include explanations, examples, numbering, or extra content.`, skill)
	}

	if user == UserStudent {
		return fmt.Sprintf(`You are an expert technical interviewer.
The user is a STUDENT preparing for %s.

Generate ONE %s difficulty interview question
based ONLY on this skill: %s.

Guidelines:
- For beginner: simple and conceptual.
- For intermediate: practical or scenario-based.
- For advanced: deep, analytical, or industry-grade.
- Make it clear, concise, and easy to understand for a student.

Return ONLY the question text.
Do NOT include explanations, prefixes, numbering, or extra content.`, interview, level, skill)
	}

	return fmt.Sprintf(`You are an expert interview coach.
The user is an INTERVIEWER taking a %s interview.

Generate ONE high-quality %s interview question
based ONLY on this skill: %s.

Focus on:
- assessing the candidate's depth of knowledge
- testing problem-solving and critical thinking
- real-world application or scenario-based challenges
- tailoring the question to the interview type (e.g., technical, coding, system design)

Return ONLY the question text.
Do NOT include explanations, examples, numbering, or extra content.`, interview, level, skill)
}

func buildEvaluationPrompt(question, answer string) string {
	return fmt.Sprintf(`You are an expert interviewer.
Question: %s
Candidate Answer: %s
Evaluate the accuracy on a scale 0-100%% and give short feedback.
Return JSON like: { "accuracy": <number>, "feedback": "<text>" }`, question, answer)
}
