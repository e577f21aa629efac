// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable summary of a parsed resume.
func (p *Printer) PrintResume(resume *types.StructuredResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", resume.PersonalInfo.Name))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", resume.PersonalInfo.Email))
	sb.WriteString(fmt.Sprintf("Phone:  %s\n", resume.PersonalInfo.Phone))
	sb.WriteString("\n")

	if len(resume.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(resume.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := resume.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s", exp.Position))
			if exp.Company != "" {
				sb.WriteString(fmt.Sprintf(" @ %s", exp.Company))
			}
			sb.WriteString("\n")
		}
		if len(resume.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(resume.Education) > 0 {
		sb.WriteString("Education:\n")
		count := min(len(resume.Education), 3)
		for i := 0; i < count; i++ {
			edu := resume.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s", edu.Degree))
			if edu.Institution != "" {
				sb.WriteString(fmt.Sprintf(", %s", edu.Institution))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(resume.Skills) > 0 {
		names := make([]string, 0, len(resume.Skills))
		for _, skill := range resume.Skills {
			names = append(names, skill.Name)
		}
		skills := strings.Join(names, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills: %s\n", skills))
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJob outputs a human-readable summary of a parsed job posting.
func (p *Printer) PrintJob(job *types.StructuredJob) {
	if job == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:      %s\n", job.JobTitle))
	sb.WriteString(fmt.Sprintf("Company:    %s\n", job.Company))
	sb.WriteString(fmt.Sprintf("Experience: %s\n", job.RequiredExperience))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", job.RequiredEducation))
	sb.WriteString("\n")

	if len(job.RequiredSkills) > 0 {
		sb.WriteString("Required Skills:\n")
		count := min(len(job.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.RequiredSkills[i]))
		}
		if len(job.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.RequiredSkills)-maxItemsToShow))
		}
	}

	p.printBox("PARSED JOB POSTING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAudit outputs missing-information advisories.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintAudit(messages []string) {
	if len(messages) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO MISSING INFORMATION")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d advisories:\n\n", len(messages)))
	for i, message := range messages {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", message))
		if i < len(messages)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("MISSING INFORMATION", sb.String())
}

// PrintMatch outputs a match result breakdown.
func (p *Printer) PrintMatch(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:    %d / 100\n\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Semantic:   %d\n", result.SemanticSimilarity))
	sb.WriteString(fmt.Sprintf("Skills:     %d\n", result.SkillMatch.Score))
	sb.WriteString(fmt.Sprintf("Experience: %d\n", result.ExperienceMatch.Score))
	sb.WriteString(fmt.Sprintf("Education:  %d\n", result.EducationMatch.Score))

	if len(result.SkillMatch.MatchedSkills) > 0 {
		matched := strings.Join(result.SkillMatch.MatchedSkills, ", ")
		if len(matched) > 40 {
			matched = matched[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nMatched:    %s\n", matched))
	}
	if len(result.SkillMatch.MissingSkills) > 0 {
		missing := strings.Join(result.SkillMatch.MissingSkills, ", ")
		if len(missing) > 40 {
			missing = missing[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Missing:    %s\n", missing))
	}
	if result.ExperienceMatch.Note != "" {
		sb.WriteString(fmt.Sprintf("Note:       %s\n", result.ExperienceMatch.Note))
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}
