package games

// knownGames is the built-in metadata table for well-known titles. The
// ScummVM configuration only carries a description and an engine per target,
// so year, developer, platform and the blurb shown in the detail panel come
// from here.
var knownGames = []Game{
	{ID: "monkey", Title: "The Secret of Monkey Island", Engine: "scumm", Developer: "LucasArts", Year: 1990, Platform: "DOS/Amiga/FM-Towns",
		Description: "A young man named Guybrush Threepwood arrives on Mêlée Island with the dream of becoming a pirate."},
	{ID: "monkey2", Title: "Monkey Island 2: LeChuck's Revenge", Engine: "scumm", Developer: "LucasArts", Year: 1991, Platform: "DOS/Amiga/FM-Towns",
		Description: "Guybrush Threepwood tells the tale of his search for the legendary treasure of Big Whoop."},
	{ID: "atlantis", Title: "Indiana Jones and the Fate of Atlantis", Engine: "scumm", Developer: "LucasArts", Year: 1992, Platform: "DOS/Amiga/FM-Towns",
		Description: "Indiana Jones must stop the Nazis from harnessing the power of Atlantis."},
	{ID: "tentacle", Title: "Day of the Tentacle", Engine: "scumm", Developer: "LucasArts", Year: 1993, Platform: "DOS",
		Description: "Purple Tentacle drinks toxic sludge and becomes evil. Bernard, Hoagie and Laverne must stop him across time."},
	{ID: "samnmax", Title: "Sam & Max Hit the Road", Engine: "scumm", Developer: "LucasArts", Year: 1993, Platform: "DOS",
		Description: "Sam & Max investigate a missing bigfoot from a carnival freak show."},
	{ID: "dig", Title: "The Dig", Engine: "scumm", Developer: "LucasArts", Year: 1995, Platform: "DOS",
		Description: "An asteroid threatens Earth. A team sent to divert it discovers an alien world."},
	{ID: "ft", Title: "Full Throttle", Engine: "scumm", Developer: "LucasArts", Year: 1995, Platform: "DOS",
		Description: "Ben, leader of the Polecats biker gang, is framed for murder."},
	{ID: "comi", Title: "The Curse of Monkey Island", Engine: "scumm", Developer: "LucasArts", Year: 1997, Platform: "Windows",
		Description: "Guybrush accidentally places a cursed ring on Elaine's finger and must find the cure."},
	{ID: "grim", Title: "Grim Fandango", Engine: "grim", Developer: "LucasArts", Year: 1998, Platform: "Windows",
		Description: "Manny Calavera, a travel agent in the Land of the Dead, uncovers a conspiracy."},
	{ID: "maniac", Title: "Maniac Mansion", Engine: "scumm", Developer: "LucasArts", Year: 1987, Platform: "C64/DOS/NES",
		Description: "Dave and friends infiltrate a mad scientist's mansion to rescue Sandy."},
	{ID: "loom", Title: "Loom", Engine: "scumm", Developer: "LucasArts", Year: 1990, Platform: "DOS/FM-Towns",
		Description: "Bobbin Threadbare, a young Weaver, must unravel the mystery of the Great Loom."},
	{ID: "zak", Title: "Zak McKracken and the Alien Mindbenders", Engine: "scumm", Developer: "LucasArts", Year: 1988, Platform: "C64/DOS/FM-Towns",
		Description: "Tabloid journalist Zak McKracken stumbles upon an alien conspiracy."},
	{ID: "sky", Title: "Beneath a Steel Sky", Engine: "sky", Developer: "Revolution", Year: 1994, Platform: "DOS/Amiga",
		Description: "Robert Foster escapes Union City's oppressive regime with his robot companion Joey."},
	{ID: "sword1", Title: "Broken Sword: Shadow of the Templars", Engine: "sword1", Developer: "Revolution", Year: 1996, Platform: "DOS/Windows/PS1",
		Description: "George Stobbart investigates a bombing in Paris linked to the Knights Templar."},
	{ID: "sword2", Title: "Broken Sword II: The Smoking Mirror", Engine: "sword2", Developer: "Revolution", Year: 1997, Platform: "Windows/PS1",
		Description: "George and Nico investigate a drug lord's connection to a Mayan prophecy."},
	{ID: "queen", Title: "Flight of the Amazon Queen", Engine: "queen", Developer: "Interactive Binary Illusions", Year: 1995, Platform: "DOS/Amiga",
		Description: "Pilot Joe King crash-lands in the Amazon and must stop a mad scientist."},
	{ID: "simon1", Title: "Simon the Sorcerer", Engine: "agos", Developer: "Adventure Soft", Year: 1993, Platform: "DOS/Amiga",
		Description: "Simon is transported to a fantasy world and must rescue a wizard from an evil sorcerer."},
	{ID: "simon2", Title: "Simon the Sorcerer II", Engine: "agos", Developer: "Adventure Soft", Year: 1995, Platform: "DOS/Windows",
		Description: "Simon returns to the fantasy world and must stop the evil sorcerer Sordid again."},
	{ID: "kyra1", Title: "The Legend of Kyrandia", Engine: "kyra", Developer: "Westwood Studios", Year: 1992, Platform: "DOS",
		Description: "Brandon must stop the evil jester Malcolm who has turned the land to stone."},
	{ID: "kyra2", Title: "The Legend of Kyrandia: Hand of Fate", Engine: "kyra", Developer: "Westwood Studios", Year: 1993, Platform: "DOS",
		Description: "Zanthia must find an anchor stone to stop the land from disappearing."},
	{ID: "kyra3", Title: "The Legend of Kyrandia: Malcolm's Revenge", Engine: "kyra", Developer: "Westwood Studios", Year: 1994, Platform: "DOS",
		Description: "Malcolm escapes prison and must clear his name."},
	{ID: "lure", Title: "Lure of the Temptress", Engine: "lure", Developer: "Revolution", Year: 1992, Platform: "DOS/Amiga",
		Description: "Diermot must free the town of Turnvale from the enchantress Selena."},
	{ID: "touche", Title: "Touché: The Adventures of the Fifth Musketeer", Engine: "touche", Developer: "Clipper Software", Year: 1995, Platform: "DOS",
		Description: "Geoffroi Le Bansen seeks to become the Fifth Musketeer."},
	{ID: "drascula", Title: "Drascula: The Vampire Strikes Back", Engine: "drascula", Developer: "Alcachofa Soft", Year: 1996, Platform: "DOS",
		Description: "John Hacker must rescue his girlfriend from the vampire Drascula."},
	{ID: "myst", Title: "Myst", Engine: "mohawk", Developer: "Cyan", Year: 1993, Platform: "Mac/Windows",
		Description: "Explore the mysterious island of Myst and unravel its secrets."},
	{ID: "riven", Title: "Riven: The Sequel to Myst", Engine: "mohawk", Developer: "Cyan", Year: 1997, Platform: "Mac/Windows",
		Description: "Continue the story on the Age of Riven."},
	{ID: "bass", Title: "Beneath a Steel Sky (Remastered)", Engine: "sky", Developer: "Revolution", Year: 2009, Platform: "iOS/Android",
		Description: "Remastered version with enhanced audio and graphics."},
	{ID: "dreamweb", Title: "DreamWeb", Engine: "dreamweb", Developer: "Creative Reality", Year: 1994, Platform: "DOS",
		Description: "Ryan must prevent the Apocalypse in this cyberpunk adventure."},
}

var knownByID = func() map[string]Game {
	m := make(map[string]Game, len(knownGames))
	for _, g := range knownGames {
		m[g.ID] = g
	}
	return m
}()

// KnownGames returns a copy of the built-in metadata table.
func KnownGames() []Game {
	out := make([]Game, len(knownGames))
	copy(out, knownGames)
	return out
}

// Enrich fills empty metadata fields of a scanned entry from the built-in
// table. A target named "monkey1" still matches the "monkey" metadata via
// its gameid, carried in IconName by the config reader. Fields present in
// the configuration always win.
func Enrich(g Game) Game {
	known, ok := knownByID[g.IconName]
	if !ok {
		known, ok = knownByID[g.ID]
	}
	if !ok {
		return g
	}
	if g.Title == "" {
		g.Title = known.Title
	}
	if g.Engine == "" {
		g.Engine = known.Engine
	}
	if g.Developer == "" {
		g.Developer = known.Developer
	}
	if g.Year == 0 {
		g.Year = known.Year
	}
	if g.Platform == "" {
		g.Platform = known.Platform
	}
	if g.Description == "" {
		g.Description = known.Description
	}
	return g
}

// MergeKnown builds the display catalog: every scanned entry enriched with
// built-in metadata, in scan order, followed by the known titles that are
// not configured locally (shown for browsing, not installed).
func MergeKnown(scanned *Catalog) *Catalog {
	merged := NewCatalog()
	seen := make(map[string]bool)
	for _, g := range scanned.All() {
		g = Enrich(g)
		merged.Add(g) // scanned identifiers already unique
		seen[g.Icon()] = true
		seen[g.ID] = true
	}
	for _, known := range knownGames {
		if seen[known.ID] {
			continue
		}
		merged.Add(known)
	}
	return merged
}
