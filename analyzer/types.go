package analyzer

// IssueList groups diagnostic messages by severity. Order within each
// bucket follows the order the checks were evaluated in.
type IssueList struct {
	Critical []string `json:"critical"`
	Warning  []string `json:"warning"`
	Good     []string `json:"good"`
}

// SeoAnalysis is the result of scoring one HTML document against a
// target keyword list.
type SeoAnalysis struct {
	Score                 int       `json:"score"`
	WordCount             int       `json:"wordCount"`
	ReadingTimeMinutes    int       `json:"readingTimeMinutes"`
	KeywordDensityPercent float64   `json:"keywordDensityPercent"`
	KeywordCount          int       `json:"keywordCount"`
	Issues                IssueList `json:"issues"`
}
