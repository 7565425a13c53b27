// Package report renders an assessment snapshot as a shareable markdown
// document: the same scores, gaps, and recommendations the API returns,
// serialized for funders and teams.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/nao1215/markdown"

	"pia-backend/internal/assessment"
	"pia-backend/internal/assessment/recommendations"
)

// Data is everything the report renders. It mirrors the assessment snapshot
// without depending on the HTTP layer.
type Data struct {
	Profile         assessment.Profile
	Selection       []string
	Scores          assessment.ScoreResult
	Gaps            []assessment.Gap
	Recommendations []recommendations.Recommendation
	GeneratedAt     time.Time
}

// WriteMarkdown renders the report to w.
func WriteMarkdown(w io.Writer, data Data) error {
	md := markdown.NewMarkdown(w)

	writeHeader(md, data)
	writeScores(md, data)
	writeGaps(md, data)
	writeRecommendations(md, data)
	writeRoadmap(md)

	return md.Build()
}

func writeHeader(md *markdown.Markdown, data Data) {
	md.H1("Public Interest Assessment Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Organization", orDefault(data.Profile.OrgName, "(unnamed)")},
			{"Type", string(data.Profile.OrgType)},
			{"Region", orDefault(data.Profile.Region, "(unspecified)")},
			{"Connectivity", string(data.Profile.Connectivity)},
			{"Digital literacy", string(data.Profile.Literacy)},
			{"Regulatory pressure", string(data.Profile.RegulatoryPressure)},
			{"Assessment date", data.GeneratedAt.Format("2006-01-02")},
		},
	})
	md.PlainText("")
}

func writeScores(md *markdown.Markdown, data Data) {
	md.H2("Scores")
	md.PlainText("")

	rows := make([][]string, 0, 4)
	for _, d := range assessment.Dimensions() {
		score := data.Scores.ByDimension[d]
		rows = append(rows, []string{
			d.Label(),
			fmt.Sprintf("%.1f", score),
			fmt.Sprintf("%.0f", d.Target()),
			gapStatus(d.Target() - score),
		})
	}
	rows = append(rows, []string{"**Overall**", fmt.Sprintf("**%.1f**", data.Scores.Overall), "75", ""})

	md.Table(markdown.TableSet{
		Header: []string{"Dimension", "Score", "Target", "Status"},
		Rows:   rows,
	})
	md.PlainText("")

	if len(data.Selection) > 0 {
		md.H3("Current tool stack")
		md.BulletList(data.Selection...)
	} else {
		md.PlainText("No tools selected yet; scores reflect a blank-slate assessment.")
	}
	md.PlainText("")
	writeBalanceNote(md, data)
}

// writeBalanceNote mirrors the portfolio warnings shown in the dashboard.
func writeBalanceNote(md *markdown.Markdown, data Data) {
	privacy := data.Scores.ByDimension[assessment.DimensionPrivacy]
	switch {
	case len(data.Selection) == 0:
	case privacy < 40:
		md.PlainText("> Your stack lacks privacy-preserving tools.")
		md.PlainText("")
	case privacy >= 70:
		md.PlainText("> Strong privacy posture; check that audience reach is not suffering.")
		md.PlainText("")
	}
}

func writeGaps(md *markdown.Markdown, data Data) {
	md.H2("Gap Analysis")
	md.PlainText("")

	if len(data.Gaps) == 0 {
		md.PlainText("All dimensions meet their targets. No gaps to address.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(data.Gaps))
	for _, g := range data.Gaps {
		rows = append(rows, []string{
			g.Dimension.Label(),
			fmt.Sprintf("%.1f", g.Gap),
			fmt.Sprintf("%.2f", g.Urgency),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Dimension", "Gap to target", "Urgency"},
		Rows:   rows,
	})
	md.PlainText("")
}

func writeRecommendations(md *markdown.Markdown, data Data) {
	md.H2("Recommendations")
	md.PlainText("")

	if len(data.Recommendations) == 0 {
		md.PlainText("No recommendations: every dimension already meets its target.")
		md.PlainText("")
		return
	}

	for _, rec := range data.Recommendations {
		md.H3(fmt.Sprintf("%d. %s", rec.Order, rec.Action))
		md.PlainText("Dimension: " + rec.Dimension.Label())
		if !rec.Generic {
			md.PlainText(fmt.Sprintf("Estimated score improvement: %.1f points", rec.EstimatedDelta))
		}
		md.PlainText("")
		md.PlainText(rec.Rationale)
		md.PlainText("")
	}
}

func writeRoadmap(md *markdown.Markdown) {
	md.H2("Implementation Roadmap")
	md.PlainText("")

	md.H3("Phase 1 (Month 1)")
	md.BulletList(
		"Audit current tool permissions and data policies",
		"Survey community on tool preferences",
		"Test high-priority alternatives with a small group",
	)
	md.PlainText("")

	md.H3("Phase 2 (Months 2-3)")
	md.BulletList(
		"Implement encrypted tools for sensitive content",
		"Train staff on new platforms",
		"Develop a migration plan for the community",
	)
	md.PlainText("")

	md.H3("Phase 3 (Months 4-6)")
	md.BulletList(
		"Full deployment of new tools",
		"Monitor adoption and gather feedback",
		"Iterate based on community needs",
	)
	md.PlainText("")
}

func gapStatus(gap float64) string {
	switch {
	case gap <= 0:
		return "met"
	case gap > 30:
		return "critical gap"
	case gap > 15:
		return "moderate gap"
	default:
		return "minor gap"
	}
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
