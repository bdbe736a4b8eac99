package catalog

// defaultEpisodes is the CS-11 series shipped with the player.
var defaultEpisodes = []Episode{
	{
		ID:          "cs11-ch1",
		Chapter:     "Chapter 1",
		Title:       "Computer Systems",
		Description: "An introduction to the basic components of a computer system, including hardware, software, data, and users.",
		AudioSrc:    "/audio/cs11-chapter-1.mp3",
		CoverArt:    "/images/cs-cover.png",
		Duration:    952,
	},
	{
		ID:          "cs11-ch2",
		Chapter:     "Chapter 2",
		Title:       "Encoding Schemes and Number Systems",
		Description: "How data is represented in a computer using ASCII, ISCII, Unicode, and number systems like binary and hexadecimal.",
		AudioSrc:    "/audio/cs11-chapter-2.mp3",
		CoverArt:    "/images/cs-cover.png",
		Duration:    1245,
	},
	{
		ID:          "cs11-ch3",
		Chapter:     "Chapter 3",
		Title:       "Emerging Trends",
		Description: "Artificial Intelligence, Machine Learning, Cloud Computing, and the Internet of Things.",
		AudioSrc:    "/audio/cs11-chapter-3.mp3",
		CoverArt:    "/images/cs-cover.png",
		Duration:    1180,
	},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultEpisodes...)
	if err != nil {
		panic(err) // built-in data is known to be valid
	}
	return c
}
