package branch

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		raw          string
		wantSegments []string
		wantTicket   bool
	}{
		{"empty", "", nil, false},
		{"single word", "WIP", []string{"WIP"}, false},
		{"slash and dash", "feature/add-login", []string{"feature", "add", "login"}, false},
		{"underscores", "fix_the_thing", []string{"fix", "the", "thing"}, false},
		{"ticket reference", "feature/ABC-123-add-login", []string{"feature", "ABC", "123", "add", "login"}, true},
		{"lowercase ticket", "jira-123", []string{"jira", "123"}, true},
		{"number only is no ticket", "123-456/7", []string{"123", "456", "7"}, false},
		{"delimiters only", "//--__", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Parse(tt.raw)
			if got.Raw != tt.raw {
				t.Errorf("Raw = %q, want %q", got.Raw, tt.raw)
			}
			if !reflect.DeepEqual(got.Segments, tt.wantSegments) {
				t.Errorf("Segments = %v, want %v", got.Segments, tt.wantSegments)
			}
			if got.HasTicketReference != tt.wantTicket {
				t.Errorf("HasTicketReference = %v, want %v", got.HasTicketReference, tt.wantTicket)
			}
		})
	}
}
