package logging

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// tokenHandler renders one substitution token for a record, appending its
// output to b.
type tokenHandler func(b *strings.Builder, r Record)

var tokenHandlers = map[string]tokenHandler{
	"severity":            expandSeverity,
	"name":                expandName,
	"message":             expandMessage,
	"function_name":       expandFunctionName,
	"file_name":           expandFileName,
	"time":                expandTimeAsSeconds,
	"time_as_nanoseconds": expandTimeAsNanoseconds,
	"line_number":         expandLineNumber,
}

func expandSeverity(b *strings.Builder, r Record)      { b.WriteString(r.Severity.String()) }
func expandName(b *strings.Builder, r Record)          { b.WriteString(r.Name) }
func expandMessage(b *strings.Builder, r Record)       { b.WriteString(r.Message) }
func expandFunctionName(b *strings.Builder, r Record)  { b.WriteString(r.Location.FunctionName) }
func expandFileName(b *strings.Builder, r Record)      { b.WriteString(r.Location.FileName) }

func expandLineNumber(b *strings.Builder, r Record) {
	if r.Location.FunctionName == "" && r.Location.FileName == "" && r.Location.LineNumber == 0 {
		return
	}
	b.WriteString(strconv.Itoa(r.Location.LineNumber))
}

func expandTimeAsSeconds(b *strings.Builder, r Record) {
	nanos := r.Timestamp.UnixNano()
	sign := ""
	if nanos < 0 {
		sign = "-"
		nanos = -nanos
	}
	seconds := nanos / 1_000_000_000
	fraction := nanos % 1_000_000_000
	fmt.Fprintf(b, "%s%010d.%09d", sign, seconds, fraction)
}

func expandTimeAsNanoseconds(b *strings.Builder, r Record) {
	nanos := r.Timestamp.UnixNano()
	sign := ""
	if nanos < 0 {
		sign = "-"
		nanos = -nanos
	}
	fmt.Fprintf(b, "%s%019d", sign, nanos)
}

// formatPart is one compiled piece of an output-format template: either a
// literal span of the original template string, or a token handler to
// invoke at render time.
type formatPart struct {
	literal string
	handler tokenHandler
}

// compileFormat parses a template like "[{severity}] [{time}] [{name}]:
// {message}" into a sequence of formatPart, mirroring
// parse_and_create_handlers_list: unrecognized "{...}" spans and lone "{"
// characters pass through as literal text unchanged. Once maxFormatHandlers
// parts have been produced, compilation stops and the remainder of
// template is dropped, matching add_handler's "too many substitutions"
// truncation in the original.
func compileFormat(template string) []formatPart {
	var parts []formatPart
	full := false
	addLiteral := func(s string) bool {
		if s == "" {
			return true
		}
		if len(parts) >= maxFormatHandlers {
			return false
		}
		if n := len(parts); n > 0 && parts[n-1].handler == nil {
			parts[n-1].literal += s
			return true
		}
		parts = append(parts, formatPart{literal: s})
		return true
	}

	i := 0
	for i < len(template) {
		start := strings.IndexByte(template[i:], '{')
		if start < 0 {
			if !addLiteral(template[i:]) {
				full = true
			}
			break
		}
		if start > 0 {
			if !addLiteral(template[i : i+start]) {
				full = true
				break
			}
			i += start
		}

		end := strings.IndexByte(template[i:], '}')
		if end < 0 {
			if !addLiteral(template[i:]) {
				full = true
			}
			break
		}

		token := template[i+1 : i+end]
		if handler, ok := tokenHandlers[token]; ok {
			if len(parts) >= maxFormatHandlers {
				full = true
				break
			}
			parts = append(parts, formatPart{handler: handler})
			i += end + 1
			continue
		}

		// Not a recognized token: emit the opening brace literally and
		// resume scanning right after it, same as the original falling
		// through to copy_from_orig for a single character.
		if !addLiteral("{") {
			full = true
			break
		}
		i++
	}
	if full {
		fmt.Fprintln(os.Stderr, "Too many substitutions in the logging output format string; truncating")
	}
	return parts
}

// render applies parts to r, producing the final formatted log line.
func render(parts []formatPart, r Record) string {
	var b strings.Builder
	for _, p := range parts {
		if p.handler != nil {
			p.handler(&b, r)
		} else {
			b.WriteString(p.literal)
		}
	}
	return b.String()
}
