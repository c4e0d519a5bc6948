package extract

// Prompt templates for the oracle. Each template is paired with a response
// struct in internal/model; the oracle is asked for bare JSON matching it.

const relevancePrompt = `Analyze this article and determine if it's relevant for finding startup team members to network with.

Article Title: %s

Article Text (first 2000 chars):
%s

Keywords that indicate relevance: %s
Keywords that indicate irrelevance: %s

Determine if this article:
1. Mentions startups, new companies, or entrepreneurial ventures
2. Discusses hiring, team building, or new team members
3. Covers funding rounds, product launches, or company milestones
4. Contains information that could help identify people to reach out to

Return your analysis as JSON with:
- is_relevant: boolean (true if article is useful for networking outreach)
- reason: string (brief explanation of your decision)
- confidence: float between 0.0 and 1.0`

const companyPrompt = `Extract all startup companies and their teams mentioned in this article.

Article Text:
%s

For each company mentioned, provide:
- name: The company name
- description: Brief description of what they do (if available)
- team_page_url: URL to their team/about page if mentioned in the article
- mentioned_context: Why they were mentioned (e.g., "raised Series A", "hired new CTO", "launched product")

Focus on:
- Startups and new companies
- Companies mentioned in the context of funding, hiring, or team changes
- Companies with identifiable team members

Return as JSON with a "companies" array containing the extracted companies.
If no relevant companies are found, return an empty array.`

const articlePeoplePrompt = `Extract people associated with the company mentioned in this article.

Article Title: %s

Article Text (first 5000 chars):
%s

Company: %s

Extract people who are:
- Founders, co-founders, executives, or team members of %s
- Mentioned in context of hiring, joining the team, or leadership roles
- Contact persons for the company

DO NOT extract:
- Article authors or reporters
- Journalists or press contacts
- People quoted from other companies
- Investors or board members (unless they're also executives)

For each person found, provide:
- full_name: Their full name
- title: Their job title or role at %s
- linkedin_url: LinkedIn profile URL if mentioned
- email: Email address if mentioned
- bio: Brief context about them from the article

Return as JSON with a "people" array containing all qualifying people.
If no qualifying people are found, return an empty array.`

const teamPagePrompt = `Extract team members from this company team/about page.

Company: %s

Page Content:
%s

Extract information for each team member you can identify:
- full_name: Their full name
- title: Their job title/role
- linkedin_url: LinkedIn profile URL if present
- email: Email address if visible
- bio: Brief bio or description if available

Return as JSON with a "people" array containing all team members found.
Focus on leadership and senior team members.
If no team members are found, return an empty array.`

const websitePrompt = `Extract the website URL for %s from this article text.

Article text (first 3000 chars):
%s

Company: %s

Find the main website URL for this company. Look for:
- Direct mentions of their website (e.g., "visit example.com")
- URLs in the article text
- Domain names associated with the company

Return as JSON:
- website_url: The main website URL (e.g., "https://example.com") or null if not found
- confidence: Your confidence (0.0-1.0) in this URL being correct

If you cannot find a website URL, return null for website_url.`

const vettingPrompt = `Analyze this person's profile and determine if they match the target networking criteria.

Person Information:
- Name: %s
- Title: %s
- Bio: %s
- LinkedIn: %s

Target Criteria:
- Preferred Schools: %s
- Preferred Roles: %s
- Preferred Industries: %s
- Preferred Seniority: %s
- Preferred Locations: %s

Based on the available information, infer and extract:
- school: Educational institution (if identifiable from bio/LinkedIn, otherwise null)
- role_category: Role category that best matches (Engineering, Product, Design, etc.)
- seniority_level: Seniority level (Senior, Lead, Staff, Principal, Director, VP, C-level, etc.)
- location: Geographic location (if identifiable, otherwise null)
- industry_experience: Array of relevant industry tags based on their experience
- matches_criteria: Boolean indicating if they match at least some target criteria
- reasoning: Brief explanation of your assessment and what criteria they match

Return as JSON with these fields. Be generous with matching - if someone is close to the criteria or has relevant experience, mark them as a match.`

// truncate caps s at n bytes for prompt budgets.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// orAny renders a preference list for prompts, with "Any" for empty lists.
func orAny(values []string) string {
	if len(values) == 0 {
		return "Any"
	}
	out := values[0]
	for _, v := range values[1:] {
		out += ", " + v
	}
	return out
}

// orNotSpecified substitutes a placeholder for empty prompt fields.
func orNotSpecified(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}
