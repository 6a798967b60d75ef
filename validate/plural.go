package validate

// pluralFormCounts maps an OpenTTD plural rule id to the number of forms a
// {P ...} choice list must supply under that rule.
var pluralFormCounts = map[int]int{
	0:  2, // two forms, n != 1 is plural
	1:  1, // one form only
	2:  2, // two forms, n > 1 is plural
	3:  3, // Latvian
	4:  5, // Gaelige
	5:  3, // Lithuanian
	6:  3, // Croatian, Russian, Ukrainian
	7:  3, // Polish
	8:  4, // Slovenian
	9:  2, // Icelandic
	10: 3, // Czech, Slovak
	11: 2, // Macedonian
	12: 4, // Maltese
	13: 4, // Scottish Gaelic
}

// pluralFormCount reports how many forms plural rule id requires. Unknown
// ids, including the -1 placeholder for "not declared", report false and
// disable the count check.
func pluralFormCount(id int) (int, bool) {
	count, ok := pluralFormCounts[id]
	return count, ok
}
