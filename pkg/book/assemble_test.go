package book

import (
	"encoding/json"
	"strings"
	"testing"
)

func kyotoInput() ActivityInput {
	return ActivityInput{
		Age:                7,
		DestinationCountry: "Japan",
		DestinationCity:    "Kyoto",
		LanguageLevel:      EarlyReader,
	}
}

func kyotoContent() DestinationContent {
	return DestinationContent{
		Continent:    "Asia",
		CatchyTitle:  "Kyoto Adventures!",
		Introduction: "Welcome to the city of a thousand temples.",
		FunFacts:     []string{"Kyoto was Japan's capital for over 1000 years.", "There are more than 1600 temples.", "Geiko artists train for years.", "A fourth fact that should be cut."},
		Landmarks: []Landmark{
			{Name: "Kinkaku-ji", Description: "Golden Pavilion"},
			{Name: "Fushimi Inari", Description: "A shrine with a thousand gates"},
		},
		Traditions: []Tradition{
			{Name: "Gion Matsuri", Description: "A big summer festival"},
			{Name: "Tea Ceremony", Description: "A calm way to share tea", ActivityIdea: "Draw your own tea bowl"},
		},
		Foods: []Food{{Name: "Matcha"}, {Name: "Yatsuhashi"}},
		Language: Language{
			Phrases: []Phrase{
				{Local: "Konnichiwa", English: "Hello", Phonetic: "kon-nee-chee-wah"},
				{Local: "Arigatou", English: "Thank you", Phonetic: "ah-ree-gah-toh"},
			},
			GameIdea: "Match the greeting to the time of day",
		},
		History: []HistoryItem{
			{EventOrSymbol: "Samurai", Summary: "Brave warriors of old Japan", ActivityIdea: "Design your own banner"},
			{EventOrSymbol: "Emperor Kanmu", Summary: "He founded the city"},
		},
		Wildlife: []Wildlife{
			{Name: "Snow Monkey", Description: "A clever mountain monkey"},
			{Name: "Tanuki", Description: "A round raccoon dog", ActivityIdea: "Match the paw prints"},
		},
		MascotName: "Bento",
		MascotType: "Beagle",
		Symbols:    Symbols{FlagDescription: "A red circle on white", Animal: "Green Pheasant", Flower: "Cherry Blossom"},
		Transport:  []Transport{{Name: "Shinkansen", Type: "bullet train"}, {Name: "Randen Tram", Type: "streetcar"}},
	}
}

func TestAssemblePageNumbersDenseAndContiguous(t *testing.T) {
	pages := Assemble(kyotoInput(), kyotoContent())

	if len(pages) != PageCount {
		t.Fatalf("expected %d pages, got %d", PageCount, len(pages))
	}
	for i, p := range pages {
		if p.PageNumber != i+1 {
			t.Fatalf("page at index %d has number %d", i, p.PageNumber)
		}
	}
}

func TestAssembleSectionOrder(t *testing.T) {
	want := []string{
		"Front Matter", "Getting Ready", "Discovering", "Culture",
		"Food & Fun", "History", "Language", "Wildlife",
		"Getting Around", "Fun Time", "Memories",
	}

	pages := Assemble(kyotoInput(), kyotoContent())
	var got []string
	for _, p := range pages {
		if len(got) == 0 || got[len(got)-1] != p.Section {
			got = append(got, p.Section)
		}
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d sections, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("section %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestAssemblePromptsNonEmptyWithPreamble(t *testing.T) {
	for _, p := range Assemble(kyotoInput(), kyotoContent()) {
		if p.ImagePrompt == "" {
			t.Fatalf("page %d has empty image prompt", p.PageNumber)
		}
		if !strings.HasPrefix(p.ImagePrompt, PromptPreamble) {
			t.Fatalf("page %d prompt missing preamble: %q", p.PageNumber, p.ImagePrompt)
		}
		if !p.IsVisual {
			t.Fatalf("page %d is not visual", p.PageNumber)
		}
	}
}

func TestAssembleEmptyCollectionsDegradeGracefully(t *testing.T) {
	content := DestinationContent{
		Continent:   "Asia",
		CatchyTitle: "Adventures!",
		MascotName:  "Bento",
		MascotType:  "Beagle",
	}

	pages := Assemble(kyotoInput(), content)
	if len(pages) != PageCount {
		t.Fatalf("expected %d pages with empty content, got %d", PageCount, len(pages))
	}

	byTitle := make(map[string]BookPage, len(pages))
	for _, p := range pages {
		byTitle[p.Title] = p
	}
	if _, ok := byTitle["Famous Landmark"]; !ok {
		t.Errorf("missing fallback landmark page")
	}
	if _, ok := byTitle["Local Tradition"]; !ok {
		t.Errorf("missing fallback tradition page")
	}
	if _, ok := byTitle["Local Animal"]; !ok {
		t.Errorf("missing fallback wildlife page")
	}
	if _, ok := byTitle["Local Transport"]; !ok {
		t.Errorf("missing fallback transport page")
	}
	if got := byTitle["Connect the Dots"].Instructions; got != "Discover a secret place" {
		t.Errorf("secondary landmark fallback: got %q", got)
	}
	if got := byTitle["Design a Crest"].Instructions; got != "Draw a castle" {
		t.Errorf("history activity fallback: got %q", got)
	}
}

func TestAssembleDestinationNameConsistency(t *testing.T) {
	pages := Assemble(kyotoInput(), kyotoContent())

	var named int
	for _, p := range pages {
		if strings.Contains(p.Title, "Japan") || strings.Contains(p.ImagePrompt, "Japan") ||
			strings.Contains(p.Instructions, "Japan") {
			// The only acceptable mention is inside model-authored copy, and
			// our fixture keeps "Japan" out of template-bound fields except
			// collection records, which the template passes through.
			if p.Section != "History" && p.Section != "Getting Ready" {
				t.Fatalf("page %d uses country despite city being set: %+v", p.PageNumber, p)
			}
		}
		if strings.Contains(p.Title, "Kyoto") || strings.Contains(p.ImagePrompt, "Kyoto") {
			named++
		}
	}
	if named == 0 {
		t.Fatal("no page references the destination city")
	}
}

func TestAssembleCityOmittedFallsBackToCountry(t *testing.T) {
	input := kyotoInput()
	input.DestinationCity = ""

	pages := Assemble(input, kyotoContent())
	if pages[1].Title != "Welcome to Japan" {
		t.Fatalf("expected country fallback in welcome title, got %q", pages[1].Title)
	}
	for _, p := range pages {
		if strings.Contains(p.Title, "Kyoto") || strings.Contains(p.ImagePrompt, "Kyoto") {
			t.Fatalf("page %d references the absent city: %+v", p.PageNumber, p)
		}
	}
}

func TestAssembleMascotConsistency(t *testing.T) {
	pages := Assemble(kyotoInput(), kyotoContent())

	var mentions int
	for _, p := range pages {
		if strings.Contains(p.ImagePrompt, "Bento") && !strings.Contains(p.ImagePrompt, "Bento the Beagle") {
			// "Meet Bento" coloring page names only the mascot type in its
			// prompt; every full-mascot reference must use the exact string.
			if p.Title != "Meet Bento" && p.Title != "Journey Planner" {
				t.Fatalf("page %d uses a partial mascot string: %q", p.PageNumber, p.ImagePrompt)
			}
		}
		if strings.Contains(p.ImagePrompt, "Bento the Beagle") {
			mentions++
		}
	}
	if mentions < 5 {
		t.Fatalf("expected the mascot on several pages, found %d", mentions)
	}
}

func TestAssembleDeterministic(t *testing.T) {
	input, content := kyotoInput(), kyotoContent()

	a, err := json.Marshal(Assemble(input, content))
	if err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(Assemble(input, content))
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Fatal("two assemblies of the same input differ")
	}
}

func TestAssembleScenarioKyoto(t *testing.T) {
	pages := Assemble(kyotoInput(), kyotoContent())

	first := pages[0]
	if first.Section != "Front Matter" {
		t.Fatalf("page 1 section: got %q", first.Section)
	}
	if first.Title != "Kyoto Adventures!" {
		t.Fatalf("page 1 title: got %q", first.Title)
	}
	if first.LayoutType != LayoutTitlePage {
		t.Fatalf("page 1 layout: got %q", first.LayoutType)
	}

	var landmark *BookPage
	for i := range pages {
		if pages[i].Section == "Discovering" && pages[i].Title == "Kinkaku-ji" {
			landmark = &pages[i]
			break
		}
	}
	if landmark == nil {
		t.Fatal("no Discovering page titled Kinkaku-ji")
	}
	if !strings.Contains(landmark.ImagePrompt, "Kinkaku-ji") {
		t.Fatalf("landmark prompt does not embed the landmark: %q", landmark.ImagePrompt)
	}
	if landmark.Instructions != "Golden Pavilion" {
		t.Fatalf("landmark instructions: got %q", landmark.Instructions)
	}
}

func TestAssembleContentPayloads(t *testing.T) {
	pages := Assemble(kyotoInput(), kyotoContent())
	byTitle := make(map[string]BookPage, len(pages))
	for _, p := range pages {
		byTitle[p.Title] = p
	}

	facts := byTitle["Destination Facts"].Content.Text
	if strings.Count(facts, "\n") != 2 {
		t.Errorf("fun facts should be capped at three lines, got %q", facts)
	}
	if got := byTitle["Packing Fun"].Content.Items; len(got) != 4 {
		t.Errorf("packing checklist items: got %v", got)
	}
	if got := byTitle["Phrase Match"].Content.Phrases; len(got) != 2 {
		t.Errorf("phrase match should carry the phrase list, got %v", got)
	}
	if got := byTitle["Yummy Dishes"].Content.Foods; len(got) != 2 {
		t.Errorf("yummy dishes should carry the food list, got %v", got)
	}
	speak := byTitle["Let's Speak!"].Content.Text
	if !strings.Contains(speak, "Hello: Konnichiwa (kon-nee-chee-wah)") {
		t.Errorf("phrase formatting: got %q", speak)
	}
	if got := byTitle["Where in the World?"].Content.Label; got != "Asia" {
		t.Errorf("map label: got %q", got)
	}
}

func TestAddSynthesizesGenericPrompt(t *testing.T) {
	b := &builder{}
	b.add("Test", "Counting Stars", LayoutMaze, "Count them!", PageContent{}, "")

	got := b.pages[0].ImagePrompt
	want := PromptPreamble + " A maze activity for Counting Stars."
	if got != want {
		t.Fatalf("generic prompt: got %q, want %q", got, want)
	}
}
