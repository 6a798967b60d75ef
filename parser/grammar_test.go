package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func TestParseContent_Commands(t *testing.T) {
	tests := []struct {
		span string
		want FragmentContent
	}{
		{"{}", &StringCommand{Name: ""}},
		{"{{}", &StringCommand{Name: "{"}},
		{"{BIG_FONT}", &StringCommand{Name: "BIG_FONT"}},
		{"{NUM}", &StringCommand{Name: "NUM"}},
		{"{1:RED}", &StringCommand{Index: intp(1), Name: "RED"}},
		{"{0:RED}", &StringCommand{Index: intp(0), Name: "RED"}},
		{"{STRING.gen}", &StringCommand{Name: "STRING", Case: "gen"}},
		{"{1:STRING.gen}", &StringCommand{Index: intp(1), Name: "STRING", Case: "gen"}},
	}
	for _, test := range tests {
		content, ok := parseContent(test.span)
		require.True(t, ok, "%q should parse", test.span)
		assert.Equal(t, test.want, content, test.span)
	}
}

func TestParseContent_GenderDefinitions(t *testing.T) {
	tests := []string{"{G=n}", "{G =n}", "{G= n}", "{G = n}", "{G\t=\tn}"}
	for _, span := range tests {
		content, ok := parseContent(span)
		require.True(t, ok, "%q should parse", span)
		assert.Equal(t, &GenderDefinition{Gender: "n"}, content, span)
	}
}

func TestParseContent_ChoiceLists(t *testing.T) {
	tests := []struct {
		span string
		want *ChoiceList
	}{
		{"{P a b}", &ChoiceList{Kind: "P", Choices: []string{"a", "b"}}},
		{"{P\na\tb}", &ChoiceList{Kind: "P", Choices: []string{"a", "b"}}},
		{`{P "" b}`, &ChoiceList{Kind: "P", Choices: []string{"", "b"}}},
		{`{P "a b" "c"}`, &ChoiceList{Kind: "P", Choices: []string{"a b", "c"}}},
		{"{P a b c}", &ChoiceList{Kind: "P", Choices: []string{"a", "b", "c"}}},
		{`{P "" "" b}`, &ChoiceList{Kind: "P", Choices: []string{"", "", "b"}}},
		{`{P a ""}`, &ChoiceList{Kind: "P", Choices: []string{"a", ""}}},

		{"{P 1 a b}", &ChoiceList{Kind: "P", Index: intp(1), Choices: []string{"a", "b"}}},
		{"{P\t1\na\rb\n}", &ChoiceList{Kind: "P", Index: intp(1), Choices: []string{"a", "b"}}},
		{`{P 1 "" b}`, &ChoiceList{Kind: "P", Index: intp(1), Choices: []string{"", "b"}}},
		{`{P 1 "a b" "c"}`, &ChoiceList{Kind: "P", Index: intp(1), Choices: []string{"a b", "c"}}},
		{"{P 1 a b c}", &ChoiceList{Kind: "P", Index: intp(1), Choices: []string{"a", "b", "c"}}},
		{`{P 1 "" "" b}`, &ChoiceList{Kind: "P", Index: intp(1), Choices: []string{"", "", "b"}}},
		{`{P 1 a ""}`, &ChoiceList{Kind: "P", Index: intp(1), Choices: []string{"a", ""}}},

		{"{P 1:2 a b}", &ChoiceList{Kind: "P", Index: intp(1), SubIndex: intp(2), Choices: []string{"a", "b"}}},
		{`{P 1:2 "" b}`, &ChoiceList{Kind: "P", Index: intp(1), SubIndex: intp(2), Choices: []string{"", "b"}}},
		{`{P 1:2 "a b" "c"}`, &ChoiceList{Kind: "P", Index: intp(1), SubIndex: intp(2), Choices: []string{"a b", "c"}}},
		{"{P 1:2 a b c}", &ChoiceList{Kind: "P", Index: intp(1), SubIndex: intp(2), Choices: []string{"a", "b", "c"}}},
		{`{P 1:2 "" "" b}`, &ChoiceList{Kind: "P", Index: intp(1), SubIndex: intp(2), Choices: []string{"", "", "b"}}},
		{`{P 1:2 a ""}`, &ChoiceList{Kind: "P", Index: intp(1), SubIndex: intp(2), Choices: []string{"a", ""}}},

		{`{G m f n}`, &ChoiceList{Kind: "G", Choices: []string{"m", "f", "n"}}},
		{`{Z one two}`, &ChoiceList{Kind: "Z", Choices: []string{"one", "two"}}},
	}
	for _, test := range tests {
		content, ok := parseContent(test.span)
		require.True(t, ok, "%q should parse", test.span)
		assert.Equal(t, test.want, content, test.span)
	}
}

func TestParseContent_Invalid(t *testing.T) {
	tests := []string{
		"{1}",
		"{1:1}",
		"{1:1 NUM}",
		"{NUM=a}",
		`{P " a}`,
		"{P 1.a a b}",
		"{P 1:a a b}",
		"{P a\nb}",    // '.' does not cross a newline between tokens
		"{P 1 2}",     // choices must not start with a digit
		"{p a b}",     // kind must be uppercase
		`{P a"b c}`,   // quote inside a bare token
		`{P "a"b}`,    // no whitespace before the second token
		"{NUM COMMA}", // multi-letter kinds do not exist
		"{P 1:2}",     // an index alone is not a choice list
		"{STRING.}",   // empty case
	}
	for _, span := range tests {
		_, ok := parseContent(span)
		assert.False(t, ok, "%q should not parse", span)
	}
}

// Grammar order is observable: single uppercase letters are commands, so a
// kind letter alone or with a case suffix never reaches the choice grammar,
// and {G=n} never reaches it either.
func TestParseContent_GrammarOrder(t *testing.T) {
	content, ok := parseContent("{P}")
	require.True(t, ok)
	assert.Equal(t, &StringCommand{Name: "P"}, content)

	content, ok = parseContent("{G}")
	require.True(t, ok)
	assert.Equal(t, &StringCommand{Name: "G"}, content)

	content, ok = parseContent("{P.x}")
	require.True(t, ok)
	assert.Equal(t, &StringCommand{Name: "P", Case: "x"}, content)

	content, ok = parseContent("{G=n}")
	require.True(t, ok)
	assert.Equal(t, &GenderDefinition{Gender: "n"}, content)

	content, ok = parseContent("{G n m}")
	require.True(t, ok)
	assert.Equal(t, &ChoiceList{Kind: "G", Choices: []string{"n", "m"}}, content)
}

// A digit run too large for int drops the index instead of failing the parse.
func TestParseContent_IndexOverflow(t *testing.T) {
	content, ok := parseContent("{99999999999999999999:NUM}")
	require.True(t, ok)
	assert.Equal(t, &StringCommand{Name: "NUM"}, content)

	content, ok = parseContent("{P 99999999999999999999 a b}")
	require.True(t, ok)
	assert.Equal(t, &ChoiceList{Kind: "P", Choices: []string{"a", "b"}}, content)

	content, ok = parseContent("{P 1:99999999999999999999 a b}")
	require.True(t, ok)
	assert.Equal(t, &ChoiceList{Kind: "P", Index: intp(1), Choices: []string{"a", "b"}}, content)
}
