package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/caveat-dev/caveat/internal/models"
	"github.com/caveat-dev/caveat/pkg/logger"
)

const (
	defaultModel       = "llama-3.3-70b-versatile"
	defaultMaxTokens   = 2000
	summaryMaxTokens   = 2500
	compareMaxTokens   = 1000
	defaultTemperature = 0.3
)

func init() {
	DefaultRegistry.Register("openai", NewOpenAIDriver)
}

// OpenAIDriver talks to any OpenAI-compatible chat completion endpoint in
// JSON mode. Groq and compatible providers work through BaseURL.
type OpenAIDriver struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
	logger      logger.Logger
}

// NewOpenAIDriver builds the driver from config. APIKey is required.
func NewOpenAIDriver(cfg DriverConfig) (Analyzer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai driver: API key is required")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	temperature := cfg.Temperature
	if temperature <= 0 {
		temperature = defaultTemperature
	}

	return &OpenAIDriver{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		logger:      logger.GetGlobalLogger().With("driver", "openai"),
	}, nil
}

// Name implements Analyzer.
func (d *OpenAIDriver) Name() string { return "openai" }

// AnalyzeClause implements Analyzer.
func (d *OpenAIDriver) AnalyzeClause(ctx context.Context, clauseID, clauseText string, actx Context, matches []models.KeywordMatch) (*Assessment, error) {
	raw, err := d.complete(ctx, clauseSystemPrompt, buildClausePrompt(clauseText, actx, matches), d.maxTokens)
	if err != nil {
		return nil, fmt.Errorf("analyzing clause %s: %w", clauseID, err)
	}

	var assessment Assessment
	if err := json.Unmarshal([]byte(raw), &assessment); err != nil {
		return nil, fmt.Errorf("parsing assessment for clause %s: %w", clauseID, err)
	}
	assessment.ApplyDefaults()
	return &assessment, nil
}

// SummarizeDocument implements Analyzer.
func (d *OpenAIDriver) SummarizeDocument(ctx context.Context, risks []*models.ClauseRisk, actx Context) (*Summary, error) {
	raw, err := d.complete(ctx, summarySystemPrompt, buildSummaryPrompt(risks, actx), summaryMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("summarizing document: %w", err)
	}

	var summary Summary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		return nil, fmt.Errorf("parsing document summary: %w", err)
	}
	return &summary, nil
}

// CompareToMarket implements Analyzer.
func (d *OpenAIDriver) CompareToMarket(ctx context.Context, clauseText, clauseType, industry string) (*MarketComparison, error) {
	system := "You are a market analyst with deep knowledge of standard contract terms across industries."
	raw, err := d.complete(ctx, system, buildComparisonPrompt(clauseText, clauseType, industry), compareMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("comparing clause to market: %w", err)
	}

	var comparison MarketComparison
	if err := json.Unmarshal([]byte(raw), &comparison); err != nil {
		return nil, fmt.Errorf("parsing market comparison: %w", err)
	}
	return &comparison, nil
}

func (d *OpenAIDriver) complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	resp, err := d.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       d.model,
		MaxTokens:   maxTokens,
		Temperature: d.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

const clauseSystemPrompt = `You are a senior contract lawyer with 20 years of experience analyzing legal documents.
Your role is to identify risks in contract clauses and explain them clearly to non-lawyers.

IMPORTANT GUIDELINES:
1. Be accurate - don't exaggerate risks but don't miss genuine concerns
2. Be practical - focus on risks that actually matter in real-world scenarios
3. Be clear - explain complex legal concepts in simple terms
4. Be actionable - always provide specific recommendations
5. Consider industry context - some terms that seem harsh are actually standard practice

When analyzing clauses:
- Think step by step about what the clause means
- Consider who the clause favors
- Evaluate worst-case scenarios
- Compare to market standards
- Provide concrete recommendations

You must respond ONLY with valid JSON matching the requested format.`

const summarySystemPrompt = `You are a legal advisor preparing an executive briefing for a client.
Your task is to summarize risks across a contract and prioritize what needs attention.

Create clear, actionable summaries that help the client understand:
1. Overall contract safety
2. Top issues to address immediately
3. Items worth negotiating
4. Clauses that are acceptable
5. Potential deal-breakers
6. Recommended action plan

You must respond ONLY with valid JSON matching the requested format.`

func buildClausePrompt(clauseText string, actx Context, matches []models.KeywordMatch) string {
	var b strings.Builder
	b.WriteString("Analyze this contract clause for potential risks.\n\nCLAUSE:\n")
	b.WriteString(clauseText)
	b.WriteString("\n\nCONTEXT:\n")
	fmt.Fprintf(&b, "- Document type: %s\n", actx.DocumentType)
	fmt.Fprintf(&b, "- Your client's role: %s\n", actx.UserRole)
	fmt.Fprintf(&b, "- Industry: %s\n", actx.Industry)
	fmt.Fprintf(&b, "- Jurisdiction: %s\n", actx.Jurisdiction)
	if actx.ContractValue != nil {
		fmt.Fprintf(&b, "- Contract value: $%.2f\n", *actx.ContractValue)
	}
	if len(matches) > 0 {
		kws := make([]string, 0, len(matches))
		for _, km := range matches {
			kws = append(kws, km.Keyword)
		}
		fmt.Fprintf(&b, "\nDetected keywords/phrases that triggered this analysis: %s\n", strings.Join(kws, ", "))
	}

	b.WriteString(`
Respond in this EXACT JSON format:
{
  "risk_category": "financial|legal_liability|termination|intellectual_property|confidentiality|dispute_resolution|compliance|operational",
  "severity": "LOW|MEDIUM|HIGH|CRITICAL",
  "risk_score": <0-100>,
  "confidence": <0-100>,
  "clause_type": "<type of clause, e.g., 'liability limitation', 'indemnification', 'termination'>",
  "primary_risk": "<One sentence describing the main danger>",
  "detailed_explanation": "<2-3 sentences explaining WHY this is risky in plain English>",
  "specific_concerns": ["<Concern 1>", "<Concern 2>"],
  "impact_if_triggered": "<What bad thing could happen?>",
  "likelihood": "<How likely is this to cause problems? LOW/MEDIUM/HIGH>",
  "recommendation": "<What should the user do about this?>",
  "alternative_language": "<Suggest better wording, or null if clause is acceptable>",
  "red_flags": ["<flag1>", "<flag2>"],
  "mitigating_factors": ["<factor1>", "<factor2>"],
  "positive_elements": ["<element1>", "<element2>"],
  "negotiation_priority": "MUST_ADDRESS|SHOULD_NEGOTIATE|NICE_TO_HAVE|ACCEPTABLE",
  "market_comparison": "<How does this compare to typical contracts?>"
}

Think step by step:
1. What is this clause trying to accomplish?
2. Who does it favor?
3. What's the worst-case scenario?
4. Is this standard practice or unusual?
5. How would I advise my client?`)

	return b.String()
}

func buildSummaryPrompt(risks []*models.ClauseRisk, actx Context) string {
	var b strings.Builder
	b.WriteString("Review this risk analysis and create a clear executive summary.\n\nCONTEXT:\n")
	fmt.Fprintf(&b, "- Document type: %s\n", actx.DocumentType)
	fmt.Fprintf(&b, "- Client's role: %s\n", actx.UserRole)
	fmt.Fprintf(&b, "- Industry: %s\n", actx.Industry)
	b.WriteString("\nIDENTIFIED RISKS:\n")

	for i, r := range risks {
		fmt.Fprintf(&b, "\n%d. Clause %s (%s)\n", i+1, r.ClauseID, r.ClauseType)
		fmt.Fprintf(&b, "   - Category: %s\n", r.Category)
		fmt.Fprintf(&b, "   - Severity: %s\n", r.Severity)
		fmt.Fprintf(&b, "   - Score: %d/100\n", r.Score)
		fmt.Fprintf(&b, "   - Primary Risk: %s\n", r.PrimaryRisk)
		fmt.Fprintf(&b, "   - Recommendation: %s\n", r.Recommendation)
	}

	b.WriteString(`
Create a JSON response:
{
  "overall_risk_level": "LOW|MEDIUM|HIGH|CRITICAL",
  "overall_score": <0-100>,
  "executive_summary": "<2-3 sentence overview of document safety>",
  "must_address_immediately": [
    {"clause": "<Which clause>", "issue": "<What's wrong>", "urgency": "<Why it matters>"}
  ],
  "should_negotiate": ["<List of negotiable items>"],
  "acceptable_as_is": ["<List of standard/safe clauses>"],
  "deal_breakers": ["<Issues that might kill the deal>"],
  "overall_favorability": "heavily_favors_other_party|slightly_unfavorable|balanced|favorable",
  "comparison_to_market": "<How does this compare to typical contracts?>",
  "action_plan": ["1. <First thing to do>", "2. <Second priority>", "3. <Third priority>"],
  "risk_patterns": ["<Any patterns noticed>"],
  "key_strengths": ["<Positive aspects of the contract>"]
}`)

	return b.String()
}

func buildComparisonPrompt(clauseText, clauseType, industry string) string {
	return fmt.Sprintf(`Compare this %s clause to industry standards for %s.

CLAUSE:
%s

Respond with:
{
  "industry_standard": "<What do most contracts say?>",
  "this_contract_position": "<What does THIS contract say?>",
  "favorability": "much_worse|slightly_worse|typical|slightly_better|much_better",
  "negotiation_leverage": "HIGH|MEDIUM|LOW",
  "market_data": "<e.g., '85%% of SaaS contracts cap liability at 12 months fees'>",
  "precedent_examples": "<Real-world examples of better clauses>",
  "recommendation": "<What should the client push for?>"
}`, clauseType, industry, clauseText)
}
