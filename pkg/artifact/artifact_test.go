package artifact

import (
	"testing"

	"github.com/funtime/mvnfetch/pkg/errors"
)

func TestParseGAV(t *testing.T) {
	tests := []struct {
		gav          string
		wantGroup    string
		wantArtifact string
		wantVersion  string
	}{
		{"org.example:lib:1.0", "org.example", "lib", "1.0"},
		{"g:a:v", "g", "a", "v"},
		{" org.example : lib : 1.0 ", "org.example", "lib", "1.0"},
		{"g:a:b:v", "g", "a:b", "v"},
		{"g:a:b:c:v", "g", "a:b:c", "v"},
		{"com.google.guava:guava:32.1.3-jre", "com.google.guava", "guava", "32.1.3-jre"},
	}

	for _, tt := range tests {
		t.Run(tt.gav, func(t *testing.T) {
			g, a, v, err := ParseGAV(tt.gav)
			if err != nil {
				t.Fatalf("ParseGAV() error: %v", err)
			}
			if g != tt.wantGroup {
				t.Errorf("group = %q, want %q", g, tt.wantGroup)
			}
			if a != tt.wantArtifact {
				t.Errorf("artifactID = %q, want %q", a, tt.wantArtifact)
			}
			if v != tt.wantVersion {
				t.Errorf("version = %q, want %q", v, tt.wantVersion)
			}
		})
	}
}

func TestParseGAVInvalid(t *testing.T) {
	for _, gav := range []string{"", "g", "g:a", ":", "::", "g::v", ":a:v", "g:a:", " : : ", "g:a: "} {
		t.Run(gav, func(t *testing.T) {
			_, _, _, err := ParseGAV(gav)
			if !errors.Is(err, errors.ErrCodeInvalidCoordinate) {
				t.Errorf("ParseGAV(%q) error = %v, want INVALID_COORDINATE", gav, err)
			}
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		classifier string
		want       string
	}{
		{"no classifier", "", ""},
		{"blank classifier", "   ", ""},
		{"classifier", "sources", "sources"},
		{"padded classifier", " tests ", "tests"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New("org.example:lib:1.0", tt.classifier, "jar")
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}
			if c.Classifier != tt.want {
				t.Errorf("Classifier = %q, want %q", c.Classifier, tt.want)
			}
			if c.Extension != "jar" {
				t.Errorf("Extension = %q, want jar", c.Extension)
			}
		})
	}
}

func TestNewInvalid(t *testing.T) {
	tests := []struct {
		name       string
		gav        string
		classifier string
		extension  string
	}{
		{"bad gav", "g:a", "", "jar"},
		{"blank extension", "g:a:1", "", "  "},
		{"traversal group", "..:a:1", "", "jar"},
		{"slash in version", "g:a:1/../../x", "", "jar"},
		{"slash in classifier", "g:a:1", "x/y", "jar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.gav, tt.classifier, tt.extension)
			if !errors.Is(err, errors.ErrCodeInvalidCoordinate) {
				t.Errorf("New() error = %v, want INVALID_COORDINATE", err)
			}
		})
	}
}

func TestCoordinateLayout(t *testing.T) {
	c := Coordinate{GroupID: "org.example.sub", ArtifactID: "lib", Version: "1.0", Extension: "jar"}

	if got, want := c.Path(c.Version), "org/example/sub/lib/1.0/lib-1.0.jar"; got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
	if got, want := c.String(), "org.example.sub:lib:jar:1.0"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	c.Classifier = "sources"
	if got, want := c.Filename("1.0"), "lib-1.0-sources.jar"; got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
	if got, want := c.String(), "org.example.sub:lib:jar:sources:1.0"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSnapshot(t *testing.T) {
	c := Coordinate{GroupID: "g", ArtifactID: "a", Version: "2.0-SNAPSHOT", Extension: "pom"}
	if !c.IsSnapshot() {
		t.Error("IsSnapshot() = false, want true")
	}
	if got, want := c.Path("2.0-20240101.120000-3"), "g/a/2.0-SNAPSHOT/a-2.0-20240101.120000-3.pom"; got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}

	c.Version = "2.0"
	if c.IsSnapshot() {
		t.Error("IsSnapshot() = true for release version")
	}
}
