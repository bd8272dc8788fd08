// Package render formats parsed stream-json messages as short,
// icon-prefixed display lines.
package render

import (
	"fmt"
	"strings"

	"github.com/jemmyw/claude-stream-format/protocol"
)

// maxCommandLen is the display limit for Bash commands.
const maxCommandLen = 80

// ellipsis marks a truncated command.
const ellipsis = "…"

// Message renders one parsed message as zero or more display lines.
// Messages that carry nothing displayable produce no lines.
func Message(msg protocol.Message) []string {
	switch m := msg.(type) {
	case protocol.AssistantMessage:
		return assistantLines(m)
	case protocol.UserMessage:
		return userLines(m)
	case protocol.ResultMessage:
		if m.Result == nil {
			return []string{"✅ Done"}
		}
		return []string{fmt.Sprintf("✅ Done: `%s`", *m.Result)}
	default:
		return nil
	}
}

func assistantLines(msg protocol.AssistantMessage) []string {
	blocks, ok := msg.Message.Content.AsBlocks()
	if !ok {
		return nil
	}

	var lines []string
	for _, block := range blocks {
		switch b := block.(type) {
		case protocol.TextBlock:
			if strings.TrimSpace(b.Text) != "" {
				lines = append(lines, b.Text)
			}
		case protocol.ToolUseBlock:
			lines = append(lines, ToolUse(b.Name, b.Input))
		}
	}
	return lines
}

func userLines(msg protocol.UserMessage) []string {
	blocks, ok := msg.Message.Content.AsBlocks()
	if !ok {
		return nil
	}

	var lines []string
	for _, block := range blocks {
		if rb, ok := block.(protocol.ToolResultBlock); ok {
			lines = append(lines, toolResultLine(rb))
		}
	}
	return lines
}

// ToolUse renders a tool invocation line. Each known tool has a fixed
// icon and pulls one field from the tool input; a missing field drops
// the payload segment rather than failing. Unknown tools render as
// "🔧 `name`".
func ToolUse(name string, input map[string]interface{}) string {
	switch name {
	case "Read":
		path, ok := stringField(input, "file_path")
		return line("📖", "Read", path, ok)
	case "Edit":
		path, ok := stringField(input, "file_path")
		return line("✏️", "Edit", path, ok)
	case "Write":
		path, ok := stringField(input, "file_path")
		return line("📝", "Write", path, ok)
	case "Bash":
		cmd, ok := stringField(input, "command")
		if ok {
			cmd = truncate(cmd, maxCommandLen)
		}
		return line("💻", "Bash", cmd, ok)
	case "Glob":
		pattern, ok := stringField(input, "pattern")
		return line("🔍", "Glob", pattern, ok)
	case "Grep":
		pattern, ok := stringField(input, "pattern")
		return line("🔍", "Grep", pattern, ok)
	case "TodoWrite":
		return "📋 TodoWrite"
	case "Task":
		desc, ok := stringField(input, "description")
		return line("🤖", "Task", desc, ok)
	default:
		return fmt.Sprintf("🔧 `%s`", name)
	}
}

// toolResultLine renders a tool_result block, flattening structured
// content to its nested text segments.
func toolResultLine(b protocol.ToolResultBlock) string {
	text, ok := resultText(b.Content)
	if !ok {
		return "✅ Done"
	}
	return fmt.Sprintf("✅ Done: `%s`", text)
}

// resultText extracts a textual representation of tool result content.
// String content is returned verbatim; block content is flattened by
// joining the text blocks with newlines. Content with no text yields
// ("", false).
func resultText(content protocol.FlexibleContent) (string, bool) {
	if s, ok := content.AsString(); ok {
		return s, true
	}

	blocks, ok := content.AsBlocks()
	if !ok {
		return "", false
	}
	var parts []string
	for _, block := range blocks {
		if tb, ok := block.(protocol.TextBlock); ok {
			parts = append(parts, tb.Text)
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, "\n"), true
}

// line assembles "<icon> <label>: `<payload>`", dropping the payload
// segment when the field was absent.
func line(icon, label, payload string, ok bool) string {
	if !ok {
		return icon + " " + label
	}
	return fmt.Sprintf("%s %s: `%s`", icon, label, payload)
}

// stringField looks a string up by key in a tool input object.
func stringField(input map[string]interface{}, key string) (string, bool) {
	if input == nil {
		return "", false
	}
	s, ok := input[key].(string)
	return s, ok
}

// truncate shortens s to max characters, appending the ellipsis marker
// when anything was cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + ellipsis
}
