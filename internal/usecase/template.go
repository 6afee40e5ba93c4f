package usecase

import (
	"strings"
)

// FormatPrompt substitui {chave} pelos valores; {{ e }} viram chaves literais.
func FormatPrompt(tmpl string, values map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(tmpl))

	for i := 0; i < len(tmpl); i++ {
		ch := tmpl[i]

		switch ch {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}

			end := strings.IndexByte(tmpl[i+1:], '}')
			if end < 0 {
				return "", &TemplateError{Reason: "single '{' encountered in format string"}
			}

			key := tmpl[i+1 : i+1+end]
			val, ok := values[key]
			if !ok {
				return "", &TemplateError{Key: key}
			}
			b.WriteString(val)
			i += end + 1

		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", &TemplateError{Reason: "single '}' encountered in format string"}

		default:
			b.WriteByte(ch)
		}
	}

	return b.String(), nil
}
