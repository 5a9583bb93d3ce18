package book

// LayoutType selects which chrome and controls a rendered page shows. It
// carries no execution logic of its own.
type LayoutType string

const (
	LayoutTitlePage     LayoutType = "title_page"
	LayoutIntroText     LayoutType = "intro_text"
	LayoutPassport      LayoutType = "passport"
	LayoutMap           LayoutType = "map"
	LayoutColoring      LayoutType = "coloring"
	LayoutMaze          LayoutType = "maze"
	LayoutMatching      LayoutType = "matching"
	LayoutDrawingPrompt LayoutType = "drawing_prompt"
	LayoutChecklist     LayoutType = "checklist"
	LayoutJournal       LayoutType = "journal"
)

// PageContent is the per-layout payload. Exactly the fields relevant to the
// page's LayoutType are set:
//
//	intro_text      Text
//	map             Label
//	checklist       Items
//	matching        Phrases or Foods
//	drawing_prompt  Steps (optional)
//	journal         Steps (optional)
//
// All other layouts carry an empty content.
type PageContent struct {
	Text    string   `json:"text,omitempty"`
	Label   string   `json:"label,omitempty"`
	Items   []string `json:"items,omitempty"`
	Phrases []Phrase `json:"phrases,omitempty"`
	Foods   []Food   `json:"foods,omitempty"`
	Steps   []string `json:"steps,omitempty"`
}

// BookPage is one physical page of the assembled book. Produced exactly
// once per generation run and never mutated afterwards; generated art lives
// outside the page record.
type BookPage struct {
	PageNumber   int         `json:"pageNumber"`
	Section      string      `json:"section"`
	Title        string      `json:"title"`
	LayoutType   LayoutType  `json:"layoutType"`
	Instructions string      `json:"instructions"`
	Content      PageContent `json:"content"`
	ImagePrompt  string      `json:"imagePrompt"`
	IsVisual     bool        `json:"isVisual"`
}

// ActivityBookResponse is the complete output of one generation run.
type ActivityBookResponse struct {
	Meta  ActivityInput `json:"meta"`
	Pages []BookPage    `json:"pages"`
}
