package ai

import (
	_ "embed"
	"text/template"
)

//go:embed prompts/job_extract.md
var jobExtractPromptRaw string

//go:embed prompts/summarize.md
var summarizePromptRaw string

//go:embed prompts/cold_email.md
var coldEmailPromptRaw string

//go:embed prompts/questions.md
var questionsPromptRaw string

// Prompt templates, parsed once at package init and reused on every call.
var (
	JobExtractTemplate = template.Must(template.New("job_extract").Parse(jobExtractPromptRaw))
	SummarizeTemplate  = template.Must(template.New("summarize").Parse(summarizePromptRaw))
	ColdEmailTemplate  = template.Must(template.New("cold_email").Parse(coldEmailPromptRaw))
	QuestionsTemplate  = template.Must(template.New("questions").Parse(questionsPromptRaw))
)
