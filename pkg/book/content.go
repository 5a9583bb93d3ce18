package book

// DestinationContent is the structured payload promised by the
// text-generation step. Field names follow the wire contract the model is
// asked to fill; the jsonschema tags drive the structured-output schema
// handed to providers that support it.
//
// Collection fields are order-significant and may arrive shorter than the
// number of template slots that reference them. The assembler substitutes
// placeholders instead of failing, so nothing here is load-bearing beyond
// the shape.
type DestinationContent struct {
	Continent    string        `json:"continent" jsonschema_description:"Continent the destination belongs to"`
	CatchyTitle  string        `json:"catchy_title" jsonschema_description:"Short, exciting book title for the destination"`
	Introduction string        `json:"introduction" jsonschema_description:"Kid-friendly welcome paragraph about the destination"`
	FunFacts     []string      `json:"fun_facts" jsonschema_description:"Surprising, child-appropriate facts about the destination"`
	Landmarks    []Landmark    `json:"landmarks" jsonschema_description:"Famous places a child would recognize or enjoy"`
	Traditions   []Tradition   `json:"traditions" jsonschema_description:"Festivals, customs, and cultural traditions"`
	Foods        []Food        `json:"foods" jsonschema_description:"Popular local dishes and treats"`
	Language     Language      `json:"language" jsonschema_description:"A handful of local phrases plus a word-game idea"`
	History      []HistoryItem `json:"history" jsonschema_description:"Historical events or symbols, summarized for children"`
	Wildlife     []Wildlife    `json:"wildlife" jsonschema_description:"Animals found in or associated with the destination"`
	MascotName   string        `json:"mascot_name" jsonschema_description:"First name of the book's animal mascot"`
	MascotType   string        `json:"mascot_type" jsonschema_description:"Kind of animal the mascot is, e.g. Beagle"`
	Symbols      Symbols       `json:"symbols" jsonschema_description:"National symbols of the destination"`
	Transport    []Transport   `json:"transport" jsonschema_description:"Distinctive local ways of getting around"`
}

type Landmark struct {
	Name         string `json:"name" jsonschema_description:"Landmark name"`
	Description  string `json:"description" jsonschema_description:"One-sentence kid-friendly description"`
	ActivityType string `json:"activity_type,omitempty" jsonschema_description:"Suggested activity kind for this landmark"`
	VisualPrompt string `json:"visual_prompt,omitempty" jsonschema_description:"Optional drawing hint for illustrators"`
}

type Tradition struct {
	Name         string `json:"name" jsonschema_description:"Tradition or festival name"`
	Description  string `json:"description" jsonschema_description:"One-sentence kid-friendly description"`
	ActivityIdea string `json:"activity_idea,omitempty" jsonschema_description:"A hands-on activity inspired by the tradition"`
	VisualPrompt string `json:"visual_prompt,omitempty" jsonschema_description:"Optional drawing hint for illustrators"`
}

type Food struct {
	Name         string `json:"name" jsonschema_description:"Dish name"`
	Description  string `json:"description,omitempty" jsonschema_description:"What the dish is, for kids"`
	VisualPrompt string `json:"visual_prompt,omitempty" jsonschema_description:"Optional drawing hint for illustrators"`
}

type Language struct {
	Phrases  []Phrase `json:"phrases" jsonschema_description:"Local phrases with English meaning and phonetics"`
	GameIdea string   `json:"game_idea" jsonschema_description:"A simple word game using the local language"`
}

type Phrase struct {
	Local    string `json:"local" jsonschema_description:"Phrase in the local language"`
	English  string `json:"english" jsonschema_description:"English meaning"`
	Phonetic string `json:"phonetic" jsonschema_description:"How to pronounce it"`
}

type HistoryItem struct {
	EventOrSymbol string `json:"event_or_symbol" jsonschema_description:"Historical event, figure, or symbol"`
	Summary       string `json:"summary" jsonschema_description:"Child-appropriate summary"`
	ActivityIdea  string `json:"activity_idea,omitempty" jsonschema_description:"A hands-on activity inspired by it"`
	VisualPrompt  string `json:"visual_prompt,omitempty" jsonschema_description:"Optional drawing hint for illustrators"`
}

type Wildlife struct {
	Name         string `json:"name" jsonschema_description:"Animal name"`
	Description  string `json:"description" jsonschema_description:"One-sentence kid-friendly description"`
	ActivityIdea string `json:"activity_idea,omitempty" jsonschema_description:"A hands-on activity featuring the animal"`
	VisualPrompt string `json:"visual_prompt,omitempty" jsonschema_description:"Optional drawing hint for illustrators"`
}

type Symbols struct {
	FlagDescription string `json:"flag_description" jsonschema_description:"What the national flag looks like"`
	Animal          string `json:"animal" jsonschema_description:"National animal"`
	Flower          string `json:"flower" jsonschema_description:"National flower"`
}

type Transport struct {
	Name         string `json:"name" jsonschema_description:"Transport name, e.g. Shinkansen"`
	Type         string `json:"type" jsonschema_description:"Kind of transport, e.g. bullet train"`
	VisualPrompt string `json:"visual_prompt,omitempty" jsonschema_description:"Optional drawing hint for illustrators"`
}

// Mascot renders the mascot display string used verbatim on every page
// that references the mascot.
func (d DestinationContent) Mascot() string {
	return d.MascotName + " the " + d.MascotType
}
