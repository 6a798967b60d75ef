// Package parser turns OpenTTD translation strings into structured fragments
// and renders them back.
//
// A translation string is literal text interleaved with brace-delimited
// string commands:
//
//	{ORANGE}OpenTTD {REV}
//	{NUM} {P item items}
//	{G=f}{1:STRING.nom}
//
// Parse splits a string into fragments, each covering a half-open range of
// codepoint offsets and holding one of four content kinds:
//
//   - Text: a run of literal characters.
//   - StringCommand: {NAME}, optionally with an argument index ({2:NAME})
//     and a case suffix ({NAME.gen}). The empty name {} and the brace
//     escape {{} are commands too.
//   - GenderDefinition: {G=tag}, declaring the gender of the whole string.
//   - ChoiceList: {P ...} and friends, selecting one of several forms
//     based on an argument ({P 1 item items}, {G "de eerste" "het eerste"}).
//
// A bracketed span is matched against the grammars in a fixed order: string
// command, then gender definition, then choice list. The first match wins,
// and a span matching none of them aborts the parse with an *Error. The
// order is part of the contract; {G=n} is a gender definition and {G n m} a
// choice list only because the earlier grammars reject them.
//
// Compile is the inverse of Parse up to canonical formatting: it renders
// fragments with single spaces between choice tokens, normalised gender
// definitions and minimal quoting, so compiling a freshly parsed canonical
// string returns it unchanged.
//
// Parse and Compile are pure functions over their input. They share no
// state and may be called concurrently from any number of goroutines.
package parser
