package profiler

import "fmt"

// BuildPrompt asks the model for the analysis as a single JSON object.
func BuildPrompt(transcript string) string {
	return fmt.Sprintf(`Please analyze the following user interview content and return structured insights in valid JSON format:

Interview Content:
%s

Please return JSON in the following exact format:
{
    "userProblems": [
        {
            "problem": "Problem description based on the interview",
            "severity": "High/Medium/Low",
            "context": "Related background from the interview"
        }
    ],
    "emotionalInsights": [
        {
            "emotion": "Emotion type identified from the interview",
            "intensity": "Intensity level 1-5",
            "context": "Triggering context from the interview",
            "quote": "Direct quote from the interview text"
        }
    ],
    "keyQuotes": [
        {
            "quote": "Important quote from the interview",
            "significance": "Why this quote is significant",
            "category": "Category (Pain point/Need/Suggestion/etc.)"
        }
    ],
    "persona": {
        "name": "Descriptive persona name based on the interview",
        "personalInfo": {
            "name": "User name from interview or inferred name",
            "age": "Age range based on interview context",
            "location": "Geographic location mentioned or inferred",
            "role": "Job title or professional role"
        },
        "quote": "Representative quote from the interview (max 20 words)",
        "background": "Brief introduction in 2-3 sentences (max 35 words)",
        "goals": ["Primary goal (max 10 words)", "Secondary goal (max 10 words)", "Third goal (max 10 words)"],
        "painPoints": ["Main pain point (max 10 words)", "Secondary pain point (max 10 words)", "Third pain point (max 10 words)"],
        "highLevelMotivations": ["Core motivation (max 10 words)", "Secondary motivation (max 10 words)", "Third motivation (max 10 words)"]
    }
}

IMPORTANT: Return ONLY valid JSON without any markdown formatting or code blocks. Base all content on the actual interview text provided.`, transcript)
}
