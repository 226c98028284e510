package errors

import (
	"strings"
	"testing"
)

func TestValidateCoordinatePart(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid group", "org.apache.commons", false},
		{"valid artifact", "commons-lang3", false},
		{"valid snapshot", "1.0-SNAPSHOT", false},
		{"valid interior colon", "a:b", false},
		{"valid underscore", "my_artifact", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 300), true},
		{"path traversal ..", "..", true},
		{"embedded traversal", "org..evil", true},
		{"slash", "org/evil", true},
		{"backslash", "org\\evil", true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinatePart("group", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCoordinatePart(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidCoordinate) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidCoordinate)
			}
		})
	}
}

func TestValidateRepositoryURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://repo1.maven.org/maven2", false},
		{"http with port", "http://localhost:8081/repository/releases", false},
		{"unsupported scheme still parses", "ftp://mirror.example.com/maven", false},
		{"file", "file:///srv/maven", false},

		{"empty", "", true},
		{"no scheme", "repo1.maven.org/maven2", true},
		{"bad escape", "http://example.com/%zz", true},
		{"scheme only", "https:", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRepositoryURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRepositoryURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidArgument) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidArgument)
			}
		})
	}
}
