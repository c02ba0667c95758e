package constant

const (
	// Token budgets per call site.
	GenerateBRDMaxTokens = 4000
	EditBRDMaxTokens     = 2000
	ConflictMaxTokens    = 2000
	ScrapeMaxTokens      = 2000
	GeneralChatMaxTokens = 150

	// Args: formatted data sources, template JSON.
	GenerateBRDPrompt = `You are an expert Business Analyst. Generate a comprehensive Business Requirements Document (BRD) from the following data sources.

DATA SOURCES:
%s

REQUIRED BRD STRUCTURE:
%s

INSTRUCTIONS:
1. Extract all business requirements, objectives, stakeholder mentions, timelines, and decisions
2. Filter out noise (casual conversations, off-topic discussions)
3. Organize information into the provided BRD structure
4. Identify any conflicting requirements
5. For each section, provide clear, professional content

Generate the BRD content as a JSON object with keys matching the section ids of the template structure.`

	// Args: BRD content JSON.
	ConflictDetectionPrompt = `Analyze this BRD content for conflicting requirements:

%s

Identify any contradictions, inconsistencies, or conflicting statements.
For each conflict, provide:
1. id
2. type (timeline, scope, budget, technical, stakeholder)
3. description
4. sources (the sections or statements involved)
5. resolution_options (a list of objects with "option" and "impact")

Return as JSON array of conflicts.`

	// Args: url, title, content preview.
	ScrapeAnalysisPrompt = `Analyze this competitor website data and provide actionable insights for a BRD:

URL: %s
Title: %s
Content Preview: %s

Provide 3-5 specific suggestions in JSON format:
{
  "insights": {
    "competitive_advantages": [...],
    "feature_gaps": [...],
    "pricing_insights": [...]
  },
  "suggestions": [
    {"text": "...", "type": "requirement", "section": "..."}
  ]
}`

	// Args: user message, BRD context JSON.
	EditBRDPrompt = `User wants to modify their BRD with this request: %s

Current BRD context: %s

Generate the updated content for the relevant section(s). Return as JSON.`

	// Args: user message.
	GeneralChatPrompt = `You are an AI Business Analyst assistant helping create BRDs.

User message: %s

Provide helpful guidance or information. Be concise and actionable, under 100 words.`
)

// Canned chat replies.
const (
	ChatGenerateMessage       = "I'll generate your BRD now. Please use the Generate BRD button or upload your documents first."
	ChatGenerateSuggestion    = "Upload documents to get started"
	ChatScrapeMessageFormat   = "I'll scrape %s for competitive intelligence. This may take a moment..."
	ChatScrapeSuggestion      = "Scraping competitor website"
	ChatScrapeMissingURL      = "Please provide a URL to scrape. Example: /scrape https://competitor.com"
	ChatConflictMessage       = "Checking for conflicts in your requirements..."
	ChatNoConflictsSuggestion = "No conflicts detected"
	ChatConflictsFoundFormat  = "I found %d potential conflict(s) in your requirements."
	ChatEditMessage           = "I've updated the BRD based on your request."

	GenerateBRDSuccessMessage = "BRD generated successfully"
)
