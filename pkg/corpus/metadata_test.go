package corpus

import (
	"encoding/json"
	"testing"
	"testing/fstest"
)

func TestLoadMetadata(t *testing.T) {
	fsys := fstest.MapFS{
		"fr/web/index.yaml": &fstest.MapFile{Data: []byte(`title: Test
slug: Web/Test
tags:
  - css
  - guide
translation_of: Web/Test
other:
  1: one
  nested:
    deeper: true
`)},
	}

	meta, err := LoadMetadata(fsys, "fr/web", "index.yaml")
	if err != nil {
		t.Fatalf("LoadMetadata() error = %v", err)
	}
	if meta["title"] != "Test" || meta["slug"] != "Web/Test" {
		t.Errorf("title/slug = %v/%v, want Test/Web/Test", meta["title"], meta["slug"])
	}

	// The whole structure must round-trip through JSON untouched.
	data, err := json.Marshal(meta)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	want := `{"other":{"1":"one","nested":{"deeper":true}},"slug":"Web/Test","tags":["css","guide"],"title":"Test","translation_of":"Web/Test"}`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}

func TestLoadMetadataErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"fr/bad/index.yaml": &fstest.MapFile{Data: []byte("title: [unclosed\n")},
	}
	tests := []struct {
		name   string
		folder string
	}{
		{"malformed", "fr/bad"},
		{"missing", "fr/missing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadMetadata(fsys, tt.folder, "index.yaml"); err == nil {
				t.Error("LoadMetadata() should fail")
			}
		})
	}
}

func TestLoadMetadataEmptyFile(t *testing.T) {
	fsys := fstest.MapFS{"fr/empty/index.yaml": &fstest.MapFile{Data: nil}}
	meta, err := LoadMetadata(fsys, "fr/empty", "index.yaml")
	if err != nil {
		t.Fatalf("LoadMetadata() error = %v", err)
	}
	if meta == nil || len(meta) != 0 {
		t.Errorf("LoadMetadata() = %v, want empty metadata", meta)
	}
}

func TestReadContent(t *testing.T) {
	fsys := fstest.MapFS{"fr/web/index.html": &fstest.MapFile{Data: []byte("<p>Bonjour</p>")}}
	got, err := ReadContent(fsys, "fr/web", "index.html")
	if err != nil {
		t.Fatalf("ReadContent() error = %v", err)
	}
	if got != "<p>Bonjour</p>" {
		t.Errorf("ReadContent() = %q", got)
	}
	if _, err := ReadContent(fsys, "fr/nope", "index.html"); err == nil {
		t.Error("ReadContent() of a missing file should fail")
	}
}
