package automation

// nicheTopics holds the topic pool per known niche
var nicheTopics = map[string][]string{
	"Technology": {"AI Agents", "Quantum Computing", "SpaceX", "Future of Coding", "Tech Trends 2026"},
	"Motivation": {"Morning Routine", "Overcoming Fear", "Discipline vs Motivation", "Success Habits", "Mindset Shift"},
	"Finance":    {"Crypto Trends", "Passive Income", "Stock Market", "Budgeting Tips", "Investing 101"},
	"Gaming":     {"Esports", "Game Reviews", "Hidden Gems", "Speedrunning", "Retro Gaming"},
	"Education":  {"Study Hacks", "Language Learning", "History Facts", "Science Explained", "productivity"},
}

var genericTopics = []string{"Interesting Trends", "Viral Topics", "Breaking News"}

// TopicsFor returns the topic pool for a niche
func TopicsFor(niche string) []string {
	if topics, ok := nicheTopics[niche]; ok {
		return topics
	}
	return genericTopics
}
