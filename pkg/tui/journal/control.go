package journal

import "strings"

// prefix is the fixed visual offset rendered above every note. The control's
// raw value always starts with it and every read strips it again.
const prefix = "\n\n\n\n"

// rawValue is what the editor control displays for text.
func rawValue(text string) string {
	return prefix + text
}

// stripPrefix turns a raw control value back into note text.
func stripPrefix(raw string) string {
	if len(raw) < len(prefix) {
		return ""
	}
	return raw[len(prefix):]
}

// sanitize normalises pasted or typed input before it is appended.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
