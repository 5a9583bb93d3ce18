package book

import (
	"cmp"
	"fmt"
	"strings"
)

// PromptPreamble prefixes every page's image prompt.
const PromptPreamble = "Children's activity book page."

// PageCount is the length of the canonical template.
const PageCount = 42

// Placeholder records substituted when a destination collection is shorter
// than the template expects. The upstream schema enforces field shapes but
// not list cardinality, so the assembler is the last line of defense
// against sparse data: referencing a missing element must never fail.
var (
	fallbackLandmark  = Landmark{Name: "Famous Landmark", Description: "A beautiful site"}
	fallbackTradition = Tradition{Name: "Local Tradition", Description: "A special festival"}
	fallbackHistory   = HistoryItem{EventOrSymbol: "Historical Event", Summary: "A long time ago...", ActivityIdea: "Draw a castle"}
	fallbackWildlife  = Wildlife{Name: "Local Animal", Description: "A cute creature"}
	fallbackTransport = Transport{Name: "Local Transport", Type: "a fun ride"}
)

// nth returns s[i], or fallback when the collection is too short.
func nth[T any](s []T, i int, fallback T) T {
	if i >= 0 && i < len(s) {
		return s[i]
	}
	return fallback
}

type builder struct {
	pages []BookPage
}

// add appends one page, numbering it by emission order. When no explicit
// prompt is given, a generic one is synthesized from the layout and title.
func (b *builder) add(section, title string, layout LayoutType, instructions string, content PageContent, prompt string) {
	if prompt == "" {
		prompt = fmt.Sprintf("A %s activity for %s.", layout, title)
	}
	b.pages = append(b.pages, BookPage{
		PageNumber:   len(b.pages) + 1,
		Section:      section,
		Title:        title,
		LayoutType:   layout,
		Instructions: instructions,
		Content:      content,
		ImagePrompt:  PromptPreamble + " " + prompt,
		IsVisual:     true,
	})
}

// Assemble deterministically expands destination content into the canonical
// 42-page, 11-section book. It is a pure function: same input, same pages,
// and it never fails on sparse collections. ActivityMix is advisory only;
// the full template is always emitted.
func Assemble(input ActivityInput, data DestinationContent) []BookPage {
	dest := input.Destination()
	mascot := data.Mascot()
	b := &builder{pages: make([]BookPage, 0, PageCount)}

	// Front Matter
	b.add("Front Matter", data.CatchyTitle, LayoutTitlePage, "Color your adventure cover!", PageContent{},
		fmt.Sprintf("A fun coloring book cover with large bubble letters: %q. Surrounded by travel icons and %s. Line art.", data.CatchyTitle, mascot))
	b.add("Front Matter", "Welcome to "+dest, LayoutIntroText, "Your guide is here!", PageContent{Text: data.Introduction},
		fmt.Sprintf("Mascot %s greeting the reader with a big \"Welcome!\" sign. Line art.", mascot))
	b.add("Front Matter", "Meet "+data.MascotName, LayoutColoring, "Color your buddy "+data.MascotName, PageContent{},
		fmt.Sprintf("A cute %s wearing a backpack and explorer hat in a landmark setting. Line art.", data.MascotType))
	b.add("Front Matter", "Travel Passport", LayoutPassport, "Draw yourself and your details", PageContent{},
		"A kid's passport template with space for a photo drawing and name/age/date lines. Line art.")

	// Getting Ready
	b.add("Getting Ready", "Where in the World?", LayoutMap, fmt.Sprintf("Find %s in %s", dest, data.Continent), PageContent{Label: data.Continent},
		fmt.Sprintf("A map of %s with %s highlighted. Simple lines. Line art.", data.Continent, dest))
	b.add("Getting Ready", "Packing Fun", LayoutChecklist, "Check off these travel items!", PageContent{Items: []string{"Ticket", "Map", "Snacks", "Camera"}},
		"A messy suitcase filled with fun items for the child to find and color. Line art.")
	b.add("Getting Ready", "Destination Facts", LayoutIntroText, "Wow! Did you know?", PageContent{Text: joinFacts(data.FunFacts, 3)},
		"Bubbles with fun fact illustrations inside them. Line art.")
	animal := cmp.Or(data.Symbols.Animal, "national animal")
	flower := cmp.Or(data.Symbols.Flower, "national flower")
	b.add("Getting Ready", "Symbol Study", LayoutColoring, "Color the "+animal, PageContent{},
		fmt.Sprintf("A detailed coloring page of the %s and %s. Line art.", animal, flower))

	// Discovering
	landmark := nth(data.Landmarks, 0, fallbackLandmark)
	b.add("Discovering", landmark.Name, LayoutColoring, landmark.Description, PageContent{},
		fmt.Sprintf("A grand view of %s. Kid-friendly coloring style. Line art.", landmark.Name))
	b.add("Discovering", "Connect the Dots", LayoutDrawingPrompt, "Discover "+nth(data.Landmarks, 1, Landmark{Name: "a secret place"}).Name, PageContent{},
		fmt.Sprintf("A connect-the-dots puzzle forming the shape of %s. Line art.", nth(data.Landmarks, 1, Landmark{Name: "a landmark"}).Name))
	b.add("Discovering", "Landscape Drawing", LayoutDrawingPrompt, "Draw the natural wonders", PageContent{},
		"A half-finished drawing of a mountain or beach scene for the child to finish. Line art.")
	b.add("Discovering", "I-Spy Nature", LayoutChecklist, "Find these symbols", PageContent{},
		"A busy nature scene filled with local plants and hidden icons. Line art.")

	// Culture
	tradition := nth(data.Traditions, 0, fallbackTradition)
	b.add("Culture", tradition.Name, LayoutColoring, tradition.Description, PageContent{},
		fmt.Sprintf("Illustration of %s festivities with %s joining in. Line art.", tradition.Name, mascot))
	second := nth(data.Traditions, 1, Tradition{Name: "local culture", ActivityIdea: "Draw a mask"})
	b.add("Culture", "Design Challenge", LayoutDrawingPrompt, cmp.Or(second.ActivityIdea, "Draw a mask"), PageContent{},
		fmt.Sprintf("A template for a cultural mask or outfit based on %s. Line art.", cmp.Or(second.Name, "local culture")))
	b.add("Culture", "Tradition Match", LayoutMatching, "Match the custom to the meaning", PageContent{},
		"Fun icons of different cultural customs to match with words. Line art.")
	b.add("Culture", "Life in "+dest, LayoutColoring, "A day in the life", PageContent{},
		"A street scene showing traditional homes and friendly people. Line art.")

	// Food & Fun
	b.add("Food & Fun", "Yummy Dishes", LayoutMatching, "Match the food to the plate", PageContent{Foods: data.Foods},
		fmt.Sprintf("Drawings of %s on one side. Line art.", foodNames(data.Foods)))
	b.add("Food & Fun", "My Local Feast", LayoutDrawingPrompt, "Draw your favorite lunch", PageContent{},
		fmt.Sprintf("An empty plate and utensils with %s looking hungry. Line art.", mascot))
	b.add("Food & Fun", "Sweet Treats", LayoutColoring, "Color these local desserts", PageContent{},
		fmt.Sprintf("A bakery window filled with delicious treats from %s. Line art.", dest))
	b.add("Food & Fun", "Food Words", LayoutMatching, "Match the names", PageContent{},
		"Words and food icons to connect. Line art.")

	// History
	hist := nth(data.History, 0, fallbackHistory)
	b.add("History", "Ancient Secrets", LayoutColoring, hist.Summary, PageContent{},
		fmt.Sprintf("A scene showing the %s from history. Friendly characters. Line art.", hist.EventOrSymbol))
	b.add("History", "Design a Crest", LayoutDrawingPrompt, cmp.Or(hist.ActivityIdea, fallbackHistory.ActivityIdea), PageContent{},
		"A large blank heraldic shield or banner for the child to decorate. Line art.")
	b.add("History", "Time Travel Maze", LayoutMaze, "Help the explorer find the artifact", PageContent{},
		"A maze shaped like an ancient castle or temple. Line art.")
	b.add("History", "Historian's Sketchbook", LayoutDrawingPrompt, "Draw a historical figure", PageContent{},
		fmt.Sprintf("An ornate picture frame for the child to draw %s. Line art.", nth(data.History, 1, HistoryItem{EventOrSymbol: "a figure from the past"}).EventOrSymbol))

	// Language
	b.add("Language", "Let's Speak!", LayoutIntroText, "Learn new words", PageContent{Text: joinPhrases(data.Language.Phrases)},
		fmt.Sprintf("Speech bubbles with words coming out of %s's mouth. Line art.", mascot))
	b.add("Language", "Alphabet Fun", LayoutDrawingPrompt, "Trace the local greeting", PageContent{},
		"Large block letters for the local word for 'Hello'. Line art.")
	b.add("Language", "Phrase Match", LayoutMatching, cmp.Or(data.Language.GameIdea, "Match the words!"), PageContent{Phrases: data.Language.Phrases},
		"Match English words to the local language equivalents. Line art.")
	b.add("Language", "Secret Code", LayoutMaze, "Decode the travel message", PageContent{},
		"A coding puzzle where symbols represent letters. Line art.")

	// Wildlife
	wild := nth(data.Wildlife, 0, fallbackWildlife)
	b.add("Wildlife", wild.Name, LayoutColoring, wild.Description, PageContent{},
		fmt.Sprintf("A majestic drawing of the %s in its habitat. Line art.", wild.Name))
	b.add("Wildlife", "Guess the Animal", LayoutMatching, cmp.Or(nth(data.Wildlife, 1, Wildlife{}).ActivityIdea, "Match the tracks"), PageContent{},
		"Drawings of paws/tracks to match to the animals. Line art.")
	b.add("Wildlife", "Under the Stars", LayoutColoring, "Color the night sky wildlife", PageContent{},
		fmt.Sprintf("Animals seen at night in %s. Line art.", dest))
	b.add("Wildlife", "Nature Guardian", LayoutChecklist, "Find the hidden creatures", PageContent{},
		"A complex jungle or forest scene with hidden animals to circle. Line art.")

	// Getting Around
	ride := nth(data.Transport, 0, fallbackTransport)
	b.add("Getting Around", ride.Name, LayoutColoring, fmt.Sprintf("All aboard the %s!", cmp.Or(ride.Type, fallbackTransport.Type)), PageContent{},
		fmt.Sprintf("%s riding a %s through %s. Line art.", mascot, ride.Name, dest))
	b.add("Getting Around", "Journey Planner", LayoutMaze, fmt.Sprintf("Help %s reach the %s", data.MascotName, nth(data.Transport, 1, Transport{Name: "station"}).Name), PageContent{},
		fmt.Sprintf("A maze through the streets of %s leading to a %s. Line art.", dest, nth(data.Transport, 1, Transport{Name: "busy station"}).Name))

	// Fun Time
	b.add("Fun Time", "Adventure Maze", LayoutMaze, "Get to the landmark!", PageContent{},
		"A maze shaped like the country outline. Line art.")
	b.add("Fun Time", "Travel Word Search", LayoutMatching, "Find the hidden words", PageContent{},
		fmt.Sprintf("A grid with words like \"EXPLORE\", \"MAP\", and %q. Line art.", strings.ToUpper(dest)))
	b.add("Fun Time", "I-Spy Icons", LayoutChecklist, "Find 5 hidden items", PageContent{},
		"A page covered in small icons (planes, taxis, maps) to count. Line art.")
	b.add("Fun Time", "Relaxing Mandala", LayoutColoring, "A pattern from the culture", PageContent{},
		fmt.Sprintf("A circular mandala pattern based on the %s. Line art.", flower))

	// Memories
	b.add("Memories", "My Favorite Moment", LayoutDrawingPrompt, "Draw your favorite thing you saw", PageContent{},
		"A large polaroid frame with a caption line. Line art.")
	b.add("Memories", "Travel Log", LayoutJournal, "Write about your trip", PageContent{Steps: []string{"Where did you go?", "What did you eat?", "Who did you meet?"}},
		"A lined page with a decorative border. Line art.")
	b.add("Memories", "Passport Stamp", LayoutColoring, "Collect your official stamp!", PageContent{},
		fmt.Sprintf("A giant, ornate circular stamp saying \"%s EXPLORER\". Line art.", strings.ToUpper(dest)))
	b.add("Memories", "For Grown-Ups", LayoutIntroText, "A message from Young Explorers Guide", PageContent{Text: "Thank you for exploring with us! We hope this sparked curiosity and joy."},
		fmt.Sprintf("Mascot %s waving goodbye with a \"The End\" sign. Line art.", mascot))

	return b.pages
}

func joinFacts(facts []string, n int) string {
	if len(facts) > n {
		facts = facts[:n]
	}
	return strings.Join(facts, "\n")
}

func joinPhrases(phrases []Phrase) string {
	lines := make([]string, 0, len(phrases))
	for _, p := range phrases {
		lines = append(lines, fmt.Sprintf("%s: %s (%s)", p.English, p.Local, p.Phonetic))
	}
	return strings.Join(lines, "\n")
}

func foodNames(foods []Food) string {
	if len(foods) == 0 {
		return "local dishes"
	}
	names := make([]string, 0, len(foods))
	for _, f := range foods {
		names = append(names, f.Name)
	}
	return strings.Join(names, ", ")
}
