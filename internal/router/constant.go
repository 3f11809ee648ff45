package router

// keywordSets holds the intent keyword tables in priority order. The sets are
// not mutually exclusive, so the order Classroom → Library → Faculty is part
// of the contract: the first matching intent wins. Loaded once, never mutated.
var keywordSets = []KeywordSet{
	{
		Intent: IntentClassroom,
		Keywords: []string{
			"free class", "empty room", "classroom free", "empty class",
			"free room", "available room", "available class", "where can i sit",
			"where to study", "free space", "any room", "vacant room",
			"show me rooms", "find room", "which room", "study room",
			"class available", "rooms free", "empty classroom",
		},
	},
	{
		Intent: IntentLibrary,
		Keywords: []string{
			"library", "lib", "seats", "seat available", "library full",
			"library empty", "study in library", "library occupancy",
			"library status", "how many seats", "library busy", "library free",
			"can i study", "library open", "seats left",
		},
	},
	{
		Intent: IntentFaculty,
		Keywords: []string{
			"teacher", "professor", "faculty", "sir", "mam", "madam",
			"dr.", "dr ", "cabin", "where is", "find teacher", "contact",
			"prof", "sharma", "patel", "kumar", "singh", "desai",
			"verma", "mehta", "nair", "reddy", "gupta",
			"find prof", "locate", "office", "faculty location",
		},
	},
}

// queryPhraseStopwords are stripped from a faculty message before the name is
// read. Stripping is plain substring removal on the lowercased text.
var queryPhraseStopwords = []string{
	"where is", "find", "locate", "search", "show me", "tell me about",
	"contact", "who is",
}

// roleStopwords are role/title words stripped after the query phrases.
// Dotted forms come before their bare forms so the dot is consumed too.
var roleStopwords = []string{
	"teacher", "professor", "faculty", "sir", "mam", "madam",
	"mr", "mrs", "ms", "prof.", "prof", "dr.", "dr",
}

// fallbackStopwords disqualify a word from the last-resort "first long word"
// name guess. Deliberately a small ad-hoc list, kept as observed behavior.
var fallbackStopwords = map[string]bool{
	"where": true, "find": true, "show": true, "tell": true,
	"about": true, "teacher": true, "professor": true, "faculty": true,
}
