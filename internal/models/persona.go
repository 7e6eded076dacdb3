package models

// Emotion is a detected emotional signal with an intensity between 1 and 5.
type Emotion struct {
	Type      string `json:"type"`
	Intensity int    `json:"intensity"`
}

// Problem is a detected problem area.
type Problem struct {
	Area        string `json:"area"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

// Features holds everything the lexical extractor pulls out of a transcript.
type Features struct {
	Names    []string  `json:"names"`
	Emotions []Emotion `json:"emotions"`
	Problems []Problem `json:"problems"`
	Context  string    `json:"context"`
	Quotes   []string  `json:"quotes"`
	Age      string    `json:"age,omitempty"`
}

type PersonalInfo struct {
	Name     string `json:"name"`
	Age      string `json:"age"`
	Location string `json:"location"`
	Role     string `json:"role"`
}

type Persona struct {
	Name                 string        `json:"name"`
	PersonalInfo         *PersonalInfo `json:"personalInfo,omitempty"`
	Quote                string        `json:"quote"`
	Background           string        `json:"background"`
	Goals                []string      `json:"goals"`
	PainPoints           []string      `json:"painPoints"`
	HighLevelMotivations []string      `json:"highLevelMotivations"`
	OriginalContext      string        `json:"originalContext,omitempty"`
}

type UserProblem struct {
	Problem  string `json:"problem"`
	Severity string `json:"severity"`
	Context  string `json:"context"`
}

type EmotionalInsight struct {
	Emotion   string `json:"emotion"`
	Intensity string `json:"intensity"`
	Context   string `json:"context"`
	Quote     string `json:"quote"`
}

type KeyQuote struct {
	Quote        string `json:"quote"`
	Significance string `json:"significance"`
	Category     string `json:"category"`
}

// AnalysisResult is the body the front end renders.
type AnalysisResult struct {
	UserProblems      []UserProblem      `json:"userProblems"`
	EmotionalInsights []EmotionalInsight `json:"emotionalInsights"`
	KeyQuotes         []KeyQuote         `json:"keyQuotes"`
	Persona           Persona            `json:"persona"`
}
