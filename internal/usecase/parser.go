package usecase

import (
	"strings"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

var (
	subjectMarkers = []string{"subject", "1.", "subject line"}
	bodyMarkers    = []string{"message", "body"}

	fallbackSubjectLabels = []string{"1.", "Subject:", "subject line:"}
	fallbackBodyLabels    = []string{"Message:", "message body:"}
)

// ParseCompletion extrai assunto e corpo de um texto livre do modelo.
// Nunca falha: na pior das hipóteses devolve o assunto padrão e o texto inteiro como corpo.
func ParseCompletion(content string) (subject, body string) {
	subject, body = parseStructured(content)

	if subject == "" || body == "" {
		subject, body = parseSplit(content)
	}

	if subject == "" || body == "" {
		return entity.FallbackSubject, content
	}

	return subject, body
}

// parseStructured: first subject-like line wins, everything after it is body.
func parseStructured(content string) (string, string) {
	lines := strings.Split(content, "\n")

	for i, line := range lines {
		if !containsAny(strings.ToLower(line), subjectMarkers) {
			continue
		}

		subject := line
		if idx := strings.Index(line, ":"); idx >= 0 {
			subject = line[idx+1:]
		}
		subject = unquote(strings.TrimSpace(subject))

		var bodyLines []string
		for _, next := range lines[i+1:] {
			text := strings.TrimSpace(next)
			if text == "" {
				continue
			}
			if isBodyLabel(text) {
				if rest := labelContent(text); rest != "" {
					bodyLines = append(bodyLines, rest)
				}
				continue
			}
			bodyLines = append(bodyLines, text)
		}

		return subject, strings.Join(bodyLines, " ")
	}

	return "", ""
}

// parseSplit divide uma vez em "2." quando o texto fala de subject e message.
func parseSplit(content string) (string, string) {
	lower := strings.ToLower(content)
	if !strings.Contains(lower, "subject") || !strings.Contains(lower, "message") {
		return "", ""
	}

	parts := strings.SplitN(content, "2.", 2)
	if len(parts) != 2 {
		return "", ""
	}

	subject := parts[0]
	for _, label := range fallbackSubjectLabels {
		subject = strings.ReplaceAll(subject, label, "")
	}
	subject = unquote(strings.TrimSpace(subject))

	body := parts[1]
	for _, label := range fallbackBodyLabels {
		body = strings.ReplaceAll(body, label, "")
	}

	return subject, strings.TrimSpace(body)
}

// isBodyLabel: "2. ...", "Message: ...", "Message body: ..." or a bare "Body" heading.
func isBodyLabel(text string) bool {
	lower := strings.ToLower(text)
	if strings.HasPrefix(lower, "2.") {
		return true
	}
	if idx := strings.Index(lower, ":"); idx >= 0 && containsAny(lower[:idx], bodyMarkers) {
		return true
	}
	return isBareHeading(lower)
}

func labelContent(text string) string {
	rest := text
	if strings.HasPrefix(rest, "2.") {
		rest = strings.TrimSpace(rest[2:])
	}

	lower := strings.ToLower(rest)
	if idx := strings.Index(lower, ":"); idx >= 0 && containsAny(lower[:idx], bodyMarkers) {
		rest = strings.TrimSpace(rest[idx+1:])
	} else if isBareHeading(lower) {
		return ""
	}

	return unquote(rest)
}

func isBareHeading(lower string) bool {
	switch strings.Trim(lower, "*#_ :") {
	case "message", "body", "message body":
		return true
	}
	return false
}

func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
