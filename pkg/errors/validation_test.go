package errors

import (
	"strings"
	"testing"
)

func TestValidateLanguageName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"Go", false},
		{"C++", false},
		{"F#", false},
		{"Common Lisp", false},
		{"Ren'Py", false},
		{"", true},
		{"   ", true},
		{"bad\x00name", true},
		{"tab\tname", true},
		{strings.Repeat("a", 129), true},
	}

	for _, tt := range tests {
		err := ValidateLanguageName(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateLanguageName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeInvalidLanguage) {
			t.Errorf("ValidateLanguageName(%q) code = %v", tt.name, GetCode(err))
		}
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://raw.githubusercontent.com/github/linguist/master/lib/linguist/languages.yml", false},
		{"http://localhost:8080/languages.yml", false},
		{"", true},
		{"ftp://example.com/x", true},
		{"file:///etc/passwd", true},
		{"https://", true},
		{"://bad", true},
	}

	for _, tt := range tests {
		err := ValidateURL(tt.url)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
		}
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"languages.yml", false},
		{"/tmp/languages.yml", false},
		{"", true},
		{"bad\x00path", true},
		{strings.Repeat("a", 4097), true},
	}

	for _, tt := range tests {
		err := ValidatePath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
	}
}
