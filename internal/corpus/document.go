package corpus

import (
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/boshu2/agentaudit/internal/types"
)

// defaultDuration is assumed when no duration pattern matches, in minutes.
const defaultDuration = 15

// Task status glyphs used in workflow logs: done, active, deferred.
const (
	glyphDone     = "✓"
	glyphActive   = "◆"
	glyphDeferred = "⊘"
)

// durationPatterns is tried in order of specificity; the first match wins.
// Each pattern captures the minute count in group 1.
var durationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?mi)^duration:\s*(\d+)\s*m(?:in(?:utes)?)?\b`),
	regexp.MustCompile(`(?i)\b(\d+)\s*minutes\b`),
	regexp.MustCompile(`(?i)\b(\d+)\s*min\b`),
	regexp.MustCompile(`(?i)\btook\s+(\d+)m\b`),
}

var (
	complexityPattern = regexp.MustCompile(`(?mi)^complexity:\s*(simple|medium|complex)\b`)
	fileLinePattern   = regexp.MustCompile(`(?m)^\s*[-*]\s+\S*[\\/.]\S+$`)
	skillsLinePattern = regexp.MustCompile(`(?mi)^skills:\s*\[?([^\n\]]+)`)
)

// problemMarkers flag a session that ran into trouble.
var problemMarkers = []string{"error", "failed", "blocker", "gotcha"}

// frontmatter is the structured preamble some workflow logs carry.
type frontmatter struct {
	Session    string   `yaml:"session"`
	Duration   string   `yaml:"duration"`
	Complexity string   `yaml:"complexity"`
	Skills     []string `yaml:"skills"`
	Files      []string `yaml:"files"`
}

// ParseDocument extracts one observation from a session log. It tries the
// structured frontmatter preamble first and falls back to keyword and
// section pattern matching for free-form documents. The second return is
// false when the document carries nothing usable.
func (p *Parser) ParseDocument(content string) (Observation, bool) {
	if strings.TrimSpace(content) == "" {
		return Observation{}, false
	}

	var obs Observation
	fm, body := splitFrontmatter(content)

	obs.Duration = extractDuration(content, fm)
	obs.TasksDone, obs.TasksTotal = countTasks(body)
	obs.Files = countFiles(content, fm)
	obs.Skills = countSkills(content, fm)
	obs.Complexity = extractComplexity(content, fm, obs.TasksTotal)

	lower := strings.ToLower(content)
	obs.HasWorkflowLog = strings.Contains(lower, "session:")
	obs.HasSkillUsage = strings.Contains(lower, "skills:")
	obs.HasKnowledgeRef = strings.Contains(lower, "project_knowledge") ||
		strings.Contains(lower, "knowledge graph")
	obs.HasGates = strings.Contains(content, "START") && strings.Contains(content, "END")
	for _, marker := range problemMarkers {
		if strings.Contains(lower, marker) {
			obs.HasProblem = true
			break
		}
	}

	return obs, true
}

// splitFrontmatter parses a leading ----fenced YAML preamble. A document
// without one (or with a malformed one) returns a nil frontmatter and the
// full content as body; malformed preambles are never fatal.
func splitFrontmatter(content string) (*frontmatter, string) {
	if !strings.HasPrefix(content, "---") {
		return nil, content
	}
	rest := content[3:]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return nil, content
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(rest[:end]), &fm); err != nil {
		return nil, content
	}
	return &fm, rest[end+4:]
}

// extractDuration tries the ordered pattern list; first match wins and
// absence defaults to 15 minutes.
func extractDuration(content string, fm *frontmatter) float64 {
	if fm != nil && fm.Duration != "" {
		if v := firstDurationMatch(fm.Duration); v > 0 {
			return v
		}
		if n, err := strconv.Atoi(strings.TrimSpace(fm.Duration)); err == nil && n > 0 {
			return float64(n)
		}
	}
	if v := firstDurationMatch(content); v > 0 {
		return v
	}
	return defaultDuration
}

func firstDurationMatch(s string) float64 {
	for _, re := range durationPatterns {
		if m := re.FindStringSubmatch(s); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return float64(n)
			}
		}
	}
	return 0
}

// countTasks derives task counts from status glyphs: done is ✓, total is
// done plus active (◆) plus deferred (⊘).
func countTasks(body string) (done, total int) {
	done = strings.Count(body, glyphDone)
	total = done + strings.Count(body, glyphActive) + strings.Count(body, glyphDeferred)
	return done, total
}

// extractComplexity prefers an explicit label; otherwise it buckets from
// the task total: >=6 Complex, >=3 Medium, else Simple.
func extractComplexity(content string, fm *frontmatter, tasksTotal int) types.Complexity {
	label := ""
	if fm != nil && fm.Complexity != "" {
		label = fm.Complexity
	} else if m := complexityPattern.FindStringSubmatch(content); m != nil {
		label = m[1]
	}
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "simple":
		return types.ComplexitySimple
	case "medium":
		return types.ComplexityMedium
	case "complex":
		return types.ComplexityComplex
	}

	switch {
	case tasksTotal >= 6:
		return types.ComplexityComplex
	case tasksTotal >= 3:
		return types.ComplexityMedium
	default:
		return types.ComplexitySimple
	}
}

// countFiles prefers the frontmatter file list, falling back to bullet
// lines that look like paths.
func countFiles(content string, fm *frontmatter) int {
	if fm != nil && len(fm.Files) > 0 {
		return len(fm.Files)
	}
	return len(fileLinePattern.FindAllString(content, -1))
}

// countSkills prefers the frontmatter skill list, falling back to a
// comma-separated skills: line.
func countSkills(content string, fm *frontmatter) int {
	if fm != nil && len(fm.Skills) > 0 {
		return len(fm.Skills)
	}
	m := skillsLinePattern.FindStringSubmatch(content)
	if m == nil {
		return 0
	}
	count := 0
	for _, part := range strings.Split(m[1], ",") {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}
	return count
}
