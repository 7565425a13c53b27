package recommendations

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"pia-backend/internal/assessment"
)

// maxPerDimension bounds the list length: at most this many tool
// recommendations are emitted per gapped dimension.
const maxPerDimension = 2

// Generate builds the ordered, deduplicated recommendation list for the
// given gaps. Gaps arrive ordered by urgency and that order is preserved:
// recommendations for the most urgent dimension come first. A tool is never
// recommended twice in one call; when it would also help a later dimension,
// the earlier recommendation's rationale notes the secondary benefit
// instead. A dimension whose candidates are all filtered out still yields
// one generic, context-appropriate recommendation.
func Generate(in Input) []Recommendation {
	out := make([]Recommendation, 0, len(in.Gaps)*maxPerDimension)
	recommended := make(map[string]int, len(in.Gaps)*maxPerDimension)
	selected := make(map[string]bool, len(in.Selection))
	for _, t := range in.Selection {
		selected[t.Name] = true
	}

	for _, gap := range in.Gaps {
		avg := assessment.DimensionAverage(in.Selection, gap.Dimension)
		candidates := rankCandidates(in.Catalog, selected, in.Profile, gap.Dimension, avg)

		emitted := 0
		for _, tool := range candidates {
			if emitted == maxPerDimension {
				break
			}
			if idx, seen := recommended[tool.Name]; seen {
				noteSecondaryBenefit(&out[idx], gap.Dimension)
				continue
			}
			rec := buildToolRecommendation(tool, gap.Dimension, avg, len(in.Selection))
			recommended[tool.Name] = len(out)
			out = append(out, rec)
			emitted++
		}

		if emitted == 0 {
			out = append(out, fallbackRecommendation(gap.Dimension, in.Profile))
		}
	}

	for i := range out {
		out[i].Order = i + 1
	}
	return out
}

// rankCandidates returns catalog tools not in the current selection that beat
// the current dimension average and survive the profile's context filter,
// best score first. The sort is stable over catalog order, so tied scores
// resolve deterministically.
func rankCandidates(catalog []assessment.ToolRecord, selected map[string]bool, profile assessment.Profile, d assessment.Dimension, avg float64) []assessment.ToolRecord {
	candidates := make([]assessment.ToolRecord, 0, len(catalog))
	for _, tool := range catalog {
		if selected[tool.Name] {
			continue
		}
		if tool.Score(d) <= avg {
			continue
		}
		if !contextCompatible(tool, profile) {
			continue
		}
		candidates = append(candidates, tool)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score(d) > candidates[j].Score(d)
	})
	return candidates
}

// contextCompatible is a hard filter, not a soft penalty: a tool demanding
// more connectivity or literacy than the profile has is excluded outright.
func contextCompatible(tool assessment.ToolRecord, profile assessment.Profile) bool {
	if !profile.Connectivity.AtLeast(tool.RequiresConnectivity) {
		return false
	}
	if !profile.Literacy.AtLeast(tool.RequiresLiteracy) {
		return false
	}
	return true
}

func buildToolRecommendation(tool assessment.ToolRecord, d assessment.Dimension, avg float64, selectionSize int) Recommendation {
	// Adopting the tool extends the averaged selection by one member, so the
	// dimension score moves by (score - avg) / (n + 1).
	delta := (tool.Score(d) - avg) / float64(selectionSize+1)

	return Recommendation{
		ID:             slugify("adopt-" + tool.Name),
		Tool:           tool.Name,
		Dimension:      d,
		Action:         fmt.Sprintf("Adopt %s", tool.Name),
		Rationale:      toolRationale(tool, d, avg, delta),
		EstimatedDelta: delta,
	}
}

func toolRationale(tool assessment.ToolRecord, d assessment.Dimension, avg, delta float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s scores %.0f on %s", tool.Name, tool.Score(d), d.Label())
	if drivers := describeSubCriteria(tool.SubCriteriaFor(d)); drivers != "" {
		fmt.Fprintf(&b, " (%s)", drivers)
	}
	fmt.Fprintf(&b, ", against a current stack average of %.0f.", avg)
	fmt.Fprintf(&b, " Adopting it would raise the dimension score by about %.1f points.", delta)
	return b.String()
}

func describeSubCriteria(criteria []assessment.SubCriterion) string {
	parts := make([]string, 0, len(criteria))
	for _, sc := range criteria {
		parts = append(parts, fmt.Sprintf("%s %.0f", sc.Name, sc.Score))
	}
	return strings.Join(parts, ", ")
}

func noteSecondaryBenefit(rec *Recommendation, d assessment.Dimension) {
	note := fmt.Sprintf(" Also improves %s.", d.Label())
	if strings.Contains(rec.Rationale, note) {
		return
	}
	rec.Rationale += note
}

func slugify(input string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(input)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "item"
	}
	return out
}
