package walker

import (
	"errors"
	"reflect"
	"testing"
	"testing/fstest"
)

func doc() *fstest.MapFile {
	return &fstest.MapFile{Data: []byte("x")}
}

// collect walks localeRoot and returns the visited directories that are
// candidates.
func collect(t *testing.T, fsys fstest.MapFS, localeRoot string, rules []Rule) []string {
	t.Helper()
	var got []string
	err := Walk(fsys, localeRoot, rules, func(dir string, files []string) error {
		if IsCandidate(files, "index.html", "index.yaml") {
			got = append(got, dir)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	return got
}

func TestWalkDenySegments(t *testing.T) {
	fsys := fstest.MapFS{
		"fr/archive/index.html":          doc(),
		"fr/archive/index.yaml":          doc(),
		"fr/archive/old/index.html":      doc(),
		"fr/archive/old/index.yaml":      doc(),
		"fr/archived/index.html":         doc(),
		"fr/archived/index.yaml":         doc(),
		"fr/web/index.html":              doc(),
		"fr/web/index.yaml":              doc(),
		"fr/web/css/index.html":          doc(),
		"fr/web/css/index.yaml":          doc(),
		"fr/web/mdn/index.html":          doc(),
		"fr/web/mdn/index.yaml":          doc(),
		"fr/mozilla/firefox/index.html":  doc(),
		"fr/mozilla/firefox/index.yaml":  doc(),
		"fr/Mozilla/index.html":          doc(),
		"fr/Mozilla/index.yaml":          doc(),
		"fr/nometa/index.html":           doc(),
		"fr/nometa/deeper/index.html":    doc(),
		"fr/nometa/deeper/index.yaml":    doc(),
		"fr/index.html":                  doc(),
		"fr/index.yaml":                  doc(),
		"de/web/index.html":              doc(),
		"de/web/index.yaml":              doc(),
		"fr/web/css/color/.keep":         doc(),
		"fr/web/css/color/readme.md":     doc(),
		"fr/web/css/color/sub/index.yml": doc(),
	}

	got := collect(t, fsys, "fr", []Rule{DenySegments("archive", "mozilla", "mdn")})
	want := []string{
		"fr/Mozilla",
		"fr/archived",
		"fr/nometa/deeper",
		"fr/web",
		"fr/web/css",
		"fr/web/mdn",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("candidates = %v, want %v", got, want)
	}
}

func TestWalkWithoutRules(t *testing.T) {
	fsys := fstest.MapFS{
		"fr/archive/index.html": doc(),
		"fr/archive/index.yaml": doc(),
	}
	got := collect(t, fsys, "fr", nil)
	if want := []string{"fr/archive"}; !reflect.DeepEqual(got, want) {
		t.Errorf("candidates = %v, want %v", got, want)
	}
}

func TestReservedPrefixes(t *testing.T) {
	rule := ReservedPrefixes("Archive/", "User:", "Talk:", "User_talk:", "Template_talk:", "Project_talk:", "Experiment:")

	tests := []struct {
		rel  string
		want bool
	}{
		{"Archive", true},
		{"Archive/Old", true},
		{"Archived", false},
		{"archive/old", false},
		{"User:Someone", true},
		{"User:Someone/Sandbox", true},
		{"User_talk:Someone", true},
		{"Talk:Web", true},
		{"Template_talk:Foo", true},
		{"Project_talk:Bar", true},
		{"Experiment:Thing", true},
		{"Web/User:Someone", false},
		{"Web/CSS", false},
	}
	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			if got := rule(tt.rel); got != tt.want {
				t.Errorf("ReservedPrefixes(%q) = %v, want %v", tt.rel, got, tt.want)
			}
		})
	}
}

func TestDenySegments(t *testing.T) {
	rule := DenySegments("archive", "mozilla", "mdn")

	tests := []struct {
		rel  string
		want bool
	}{
		{"archive", true},
		{"archive/x/y", true},
		{"archived", false},
		{"Archive", false},
		{"web/archive", false},
		{"mdn", true},
		{"mdn/contribute", true},
		{"mozilla", true},
		{"mozillaish", false},
	}
	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			if got := rule(tt.rel); got != tt.want {
				t.Errorf("DenySegments(%q) = %v, want %v", tt.rel, got, tt.want)
			}
		})
	}
}

func TestShouldExcludeComposesRules(t *testing.T) {
	rules := []Rule{DenySegments("archive"), ReservedPrefixes("User:")}
	if !ShouldExclude("archive/a", rules...) {
		t.Error("expected segment rule to match")
	}
	if !ShouldExclude("User:x", rules...) {
		t.Error("expected prefix rule to match")
	}
	if ShouldExclude("web", rules...) {
		t.Error("expected no rule to match")
	}
	if ShouldExclude("archive") {
		t.Error("expected no exclusion without rules")
	}
}

func TestLocaleRoots(t *testing.T) {
	fsys := fstest.MapFS{
		"de/a/index.html":    doc(),
		"en-US/a/index.html": doc(),
		"fr/a/index.html":    doc(),
		"pt-BR/a/index.html": doc(),
		"README.md":          doc(),
	}

	tests := []struct {
		name  string
		allow []string
		skip  []string
		want  []string
	}{
		{"all", nil, nil, []string{"de", "en-US", "fr", "pt-BR"}},
		{"allow is case-insensitive", []string{"pt-br", "FR"}, nil, []string{"fr", "pt-BR"}},
		{"skip", nil, []string{"en-us"}, []string{"de", "fr", "pt-BR"}},
		{"unknown filter", []string{"ja"}, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LocaleRoots(fsys, tt.allow, tt.skip)
			if err != nil {
				t.Fatalf("LocaleRoots() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LocaleRoots() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWalkStopsOnVisitError(t *testing.T) {
	fsys := fstest.MapFS{
		"fr/a/index.html": doc(),
		"fr/b/index.html": doc(),
	}
	boom := errors.New("boom")
	var visited []string
	err := Walk(fsys, "fr", nil, func(dir string, files []string) error {
		visited = append(visited, dir)
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Walk() error = %v, want %v", err, boom)
	}
	if len(visited) != 1 {
		t.Errorf("visited %v, want a single directory", visited)
	}
}

func TestWalkMissingRoot(t *testing.T) {
	err := Walk(fstest.MapFS{}, "xx", nil, func(string, []string) error { return nil })
	if err == nil {
		t.Fatal("Walk() on a missing root should fail")
	}
}
