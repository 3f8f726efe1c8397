package domain

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// draftMeta is the YAML frontmatter of a single draft block. All
// values arrive as raw text and go through the normal field parsers.
type draftMeta struct {
	Date     string `yaml:"date"`
	Time     string `yaml:"time"`
	Priority string `yaml:"priority"`
}

// draftBlock pairs one block's frontmatter with its body lines.
type draftBlock struct {
	meta []string
	body []string
}

// ParseDrafts parses a draft file containing one or more tasks. Each
// task is a YAML frontmatter block followed by description lines:
//
//	---
//	date: 2026-09-01
//	time: 14:30
//	priority: h
//	---
//	Ship the quarterly report.
//	Attach the revenue summary.
//
// Tasks are returned in file order. A file with no content at all and
// a file with content but no blocks fail with distinct errors.
func ParseDrafts(content string) ([]*Task, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyDraftFile
	}

	blocks := splitDraftBlocks(content)
	if len(blocks) == 0 {
		return nil, ErrNoDrafts
	}

	tasks := make([]*Task, 0, len(blocks))
	for i, block := range blocks {
		task, err := block.toTask()
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// toTask decodes the block's frontmatter and validates the fields the
// same way interactive creation does.
func (b draftBlock) toTask() (*Task, error) {
	var meta draftMeta
	if err := yaml.Unmarshal([]byte(strings.Join(b.meta, "\n")), &meta); err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return NewTask(meta.Date, meta.Time, meta.Priority, b.body)
}

// splitDraftBlocks separates the file into frontmatter/body pairs. A
// block opens at a "---" line and the next "---" closes its
// frontmatter. A "---" inside a body only opens a new block when the
// following line looks like a frontmatter key, so rule lines inside
// descriptions survive.
func splitDraftBlocks(content string) []draftBlock {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	var blocks []draftBlock
	var cur draftBlock
	started := false
	inMeta := false

	flush := func() {
		if started {
			blocks = append(blocks, cur)
		}
		cur = draftBlock{}
	}

	for i, line := range lines {
		isRule := line == "---"
		switch {
		case isRule && !started:
			started = true
			inMeta = true
		case isRule && inMeta:
			inMeta = false
		case isRule && isDraftKey(peekLine(lines, i+1)):
			flush()
			inMeta = true
		case !started:
			// Content before the first block is ignored.
		case inMeta:
			cur.meta = append(cur.meta, line)
		default:
			cur.body = append(cur.body, line)
		}
	}
	flush()

	return blocks
}

func peekLine(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}

// isDraftKey checks if a line looks like a frontmatter key.
func isDraftKey(line string) bool {
	for _, key := range []string{"date:", "time:", "priority:"} {
		if strings.HasPrefix(line, key) {
			return true
		}
	}
	return false
}
