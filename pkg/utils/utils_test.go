package utils

import "testing"

func TestCleanJSON(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced no language", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n{\"a\":1}\n ", `{"a":1}`},
		{"empty fence", "```json\n```", ""},
		{"empty", "", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CleanJSON(c.in); got != c.want {
				t.Fatalf("CleanJSON(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestLimitStr(t *testing.T) {
	if got := LimitStr("hello", 10); got != "hello" {
		t.Fatalf("short string changed: %q", got)
	}
	if got := LimitStr("hello world", 5); got != "hello..." {
		t.Fatalf("truncation: %q", got)
	}
}

func TestSanitizeFilename(t *testing.T) {
	if got := SanitizeFilename(`new zealand/aotearoa: v2\x`); got != "new_zealand_aotearoa__v2_x" {
		t.Fatalf("SanitizeFilename = %q", got)
	}
}

func TestSyncMap(t *testing.T) {
	m := NewSyncMap[map[string]int]()

	if _, ok := m.Load("a"); ok {
		t.Fatal("empty map reported a value")
	}
	m.Store("a", 1)
	m.Store("b", 2)
	if v, ok := m.Load("a"); !ok || v != 1 {
		t.Fatalf("Load(a) = %d, %v", v, ok)
	}
	if m.Len() != 2 {
		t.Fatalf("Len = %d", m.Len())
	}
	m.Delete("a")
	if _, ok := m.Load("a"); ok {
		t.Fatal("deleted key still present")
	}
	if m.Len() != 1 {
		t.Fatalf("Len after delete = %d", m.Len())
	}
}
