package enrich

import (
	"fmt"
	"time"
)

const dateLayout = "January 2, 2006"

const companyPromptTemplate = `Research and create a detailed company tear sheet for %[1]s.

Use this structure:

**COMPANY TEAR SHEET: %[1]s**
Generated: %[2]s

**Section 1: Company Overview**
- Generate background bullets about the company with focus on industry/sector, sources of income, headquarters, founding year, employees, and relevant background
- Provide competitive landscape summary
- Extract from recent 10-K filings: revenue by business unit (%%), operating/SG&A expenses (%%), total revenue/costs/operating income, year-over-year changes

**Section 2: Leadership**
- Summary of executive leadership team (C-suite) with LinkedIn profiles
- Board of Directors summary

**Section 3: Company News and Strategic Initiatives (Last 5 Years)**
- Key strategic initiatives grouped by year
- Focus on M&A activity, funding, new products/services, leadership changes
- Include sources/links

**Section 4: SWOT Analysis**
- 5-10 bullets each for: Strengths, Weaknesses, Opportunities (external), Threats (external)

**Section 5: Locations**
- List headquarters, regional offices, manufacturing sites, and other locations

Provide comprehensive, well-researched information in plain text format with simple formatting.`

const individualPromptTemplate = `Research and create a detailed individual tear sheet for %[1]s, the new CFO at %[2]s.

Use this structure:

**INDIVIDUAL TEAR SHEET: %[1]s**
Generated: %[3]s

**Section 1: Executive Overview**
- Full name
- Current title and company
- Industry/sector focus
- Primary responsibilities
- Years in role and total leadership experience
- Location
- Education (degrees, institutions, certifications)
- Board/advisory roles
- Awards/recognition
- LinkedIn and public presence summary

**Section 2: Leadership Team & Board Connectivity**
- Role within C-suite
- Key peer relationships
- Organizational structure insights
- Board exposure and involvement

**Section 3: Professional Milestones & Strategic Initiatives (Last 5-10 Years)**
Grouped by year:
- M&A activity
- Capital structure moves
- Major operational initiatives
- Strategic pivots
- Leadership changes
- Quantified achievements

**Section 4: SWOT Analysis (Individual)**
- Strengths (5 bullets): expertise, experience, capabilities
- Weaknesses (5 bullets): gaps or limitations
- Opportunities (5 bullets - external): career growth, market trends
- Threats (5 bullets - external): market challenges, competition

**Section 5: Location & Mobility**
- Primary residence (city, state)
- Current work locations

Provide comprehensive, well-researched information in plain text format.`

func companyPrompt(company string, date time.Time) string {
	return fmt.Sprintf(companyPromptTemplate, company, date.Format(dateLayout))
}

func individualPrompt(individual, company string, date time.Time) string {
	return fmt.Sprintf(individualPromptTemplate, individual, company, date.Format(dateLayout))
}
