package logging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sampleRecord() Record {
	return Record{
		Location:  Location{FunctionName: "doThing", FileName: "thing.go", LineNumber: 42},
		Severity:  Warn,
		Name:      "my.logger",
		Timestamp: time.Unix(1000, 500),
		Message:   "something happened",
	}
}

func TestCompileFormat_literalOnly(t *testing.T) {
	parts := compileFormat("no tokens here")
	assert.Equal(t, "no tokens here", render(parts, sampleRecord()))
}

func TestScenarioS5_defaultTemplate(t *testing.T) {
	parts := compileFormat(defaultOutputFormat)
	got := render(parts, sampleRecord())
	assert.Equal(t, "[WARN] [0000001000.000000500] [my.logger]: something happened", got)
}

func TestCompileFormat_unrecognizedTokenPassesThrough(t *testing.T) {
	parts := compileFormat("{bogus} stays literal")
	assert.Equal(t, "{bogus} stays literal", render(parts, sampleRecord()))
}

func TestCompileFormat_unterminatedBracePassesThrough(t *testing.T) {
	parts := compileFormat("trailing {")
	assert.Equal(t, "trailing {", render(parts, sampleRecord()))
}

func TestCompileFormat_allTokens(t *testing.T) {
	tmpl := "{severity}|{name}|{message}|{function_name}|{file_name}|{line_number}"
	parts := compileFormat(tmpl)
	got := render(parts, sampleRecord())
	assert.Equal(t, "WARN|my.logger|something happened|doThing|thing.go|42", got)
}

func TestExpandLineNumber_absentLocationOmitsNumber(t *testing.T) {
	r := sampleRecord()
	r.Location = Location{}
	parts := compileFormat("line={line_number}")
	assert.Equal(t, "line=", render(parts, r))
}

func TestExpandTimeAsNanoseconds(t *testing.T) {
	r := sampleRecord()
	parts := compileFormat("{time_as_nanoseconds}")
	assert.Equal(t, "0000001000000000500", render(parts, r))
}
