package usecase

// User-facing reply templates. The chatbot never surfaces raw errors; every
// failure path maps to one of these.
const (
	MsgClassroomHeader      = "**Free Classrooms Right Now (%s):**\n\n"
	MsgClassroomLine        = "• **%s** (%s) - free till %s\n"
	MsgClassroomAllOccupied = "All classrooms are currently occupied."
	MsgClassroomUnavailable = "Can't reach the classroom data service right now. Try again in a bit."

	MsgLibraryStatus      = "**Library Status:**\n\nTotal Seats: %d\nAvailable: %d\nOccupancy: %d%%\n\n%s"
	MsgLibraryPacked      = "Library is packed. Good luck finding a spot."
	MsgLibraryPrettyFull  = "Library is pretty full, but you might get lucky."
	MsgLibraryDecent      = "Decent space available. Go grab a seat."
	MsgLibraryChill       = "Library is chill. Plenty of seats available."
	MsgLibraryUnavailable = "Library data unavailable right now. Try again in a bit."

	MsgFacultyNameNeeded = "Give me a faculty name to search. Try: 'Where is Dr. Sharma?' or 'Find Professor Patel' or just 'Sharma'"
	MsgFacultyNoMatch    = "No faculty found matching \"%s\". Try a different name or check your spelling."
	MsgFacultyMultiple   = "**Found %d faculty members:**\n\n"
	MsgFacultyListItem   = "• **%s**\n  Cabin: %s | %s\n\n"
	MsgFacultyAvailable  = "✨ Faculty is available right now!"
	MsgFacultyBusy       = "⏰ Faculty might be in class or a meeting. Try later!"
	MsgFacultyUnavail    = "Can't reach the faculty directory right now. Try again in a bit."

	MsgAIPrefix = "🤖 **AI Assistant:**\n\n%s"
	MsgFallback = "I help with campus stuff: free classrooms, library status, and faculty locations. Ask me something specific!"
)

// Library occupancy bands: inclusive lower bounds, checked in descending order.
const (
	LibraryPackedThreshold     = 90
	LibraryPrettyFullThreshold = 70
	LibraryDecentThreshold     = 50
)

// Gemini persona for the fallback path.
const (
	aiSystemPrompt = "You are a friendly campus assistant for a university. " +
		"Answer the student's question briefly and casually. If the question is " +
		"about free classrooms, library seats, or finding faculty, remind them " +
		"you can look those up directly."

	aiTemperature = 0.7
	aiMaxTokens   = 512
)
