package generator

// Name pools for enemy generation. A name is one prefix plus one suffix, so
// the pools multiply into a large space of unique names. The "generic" pool
// applies to any repository; the others are keyed by theme group and mixed in
// proportionally to keyword hits.

const genericPool = "generic"

var enemyPrefixes = map[string][]string{
	genericPool: {
		"Ancient", "Corrupted", "Dark", "Eternal", "Forgotten", "Hidden",
		"Lost", "Mystic", "Shadow", "Twisted", "Void", "Wandering",
		"Ancient", "Cursed", "Fallen", "Grim", "Hollow", "Silent",
		"Vengeful", "Withering", "Broken", "Chaotic", "Dread", "Frozen",
		"Glimmering", "Haunted", "Infernal", "Jagged", "Keen", "Luminous",
		"Muted", "Noxious",
	},
	"ai": {
		"Neural", "Quantum", "Digital", "Synthetic", "Binary",
		"Algorithmic", "Computational", "Cybernetic", "Data", "Logic",
		"Matrix", "Protocol", "Virtual", "Analytical", "Cognitive",
	},
	"web": {
		"Frontend", "Browser", "DOM", "CSS", "JavaScript", "React", "Vue",
		"Angular", "Web", "HTML", "Client", "UI", "UX", "Interface",
		"Markup", "Stylish",
	},
	"backend": {
		"Server", "API", "Database", "Daemon", "Service", "Backend",
		"REST", "GraphQL", "Microservice", "Container", "Docker",
		"Kubernetes", "Node", "Express", "Django", "Flask",
	},
	"cli": {
		"Terminal", "Console", "Command", "Shell", "CLI", "Bash", "Prompt",
		"Script", "Command-Line", "Interactive", "Text", "ASCII", "TTY",
		"Shell", "Executable",
	},
	"scraping": {
		"Web", "Crawler", "Spider", "Scraper", "Parser", "Extractor",
		"Harvester", "Collector", "Bot", "Agent", "Hunter", "Gatherer",
		"Indexer", "Searcher", "Tracker",
	},
}

var enemySuffixes = map[string][]string{
	genericPool: {
		"Spirit", "Entity", "Wraith", "Specter", "Phantom", "Guardian",
		"Warden", "Keeper", "Sentinel", "Defender", "Protector", "Watcher",
		"Beast", "Creature", "Fiend", "Demon", "Monster", "Horror",
		"Abomination", "Terror", "Archon", "Lord", "Master", "Ruler",
		"King", "Queen", "Prince", "Princess", "Champion", "Warrior",
		"Knight", "Paladin",
	},
	"ai": {
		"Archon", "Network", "Core", "Matrix", "Node", "Processor",
		"Engine", "System", "Intelligence", "Mind", "Brain", "Neural Net",
		"AI", "Machine", "Bot", "Agent",
	},
	"web": {
		"Elemental", "Renderer", "Component", "Widget", "View", "Template",
		"Page", "Site", "App", "Interface", "Display", "Canvas", "Frame",
		"Window", "Panel", "Screen",
	},
	"backend": {
		"Warden", "Server", "Daemon", "Service", "API", "Endpoint",
		"Handler", "Controller", "Router", "Gateway", "Proxy", "Cache",
		"Database", "Store", "Repository", "Engine",
	},
	"cli": {
		"Shade", "Shell", "Terminal", "Console", "Prompt", "CLI",
		"Command", "Script", "Executor", "Runner", "Interpreter", "Parser",
		"Processor", "Handler", "Tool",
	},
	"scraping": {
		"Crawler", "Spider", "Bot", "Scraper", "Parser", "Extractor",
		"Harvester", "Collector", "Hunter", "Seeker", "Tracker",
		"Gatherer", "Agent", "Drone", "Scout", "Probe",
	},
}
