package commit

import (
	"testing"
)

func TestParseNeverFails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rec  Record
	}{
		{"empty record", Record{}},
		{"subject only", Record{Subject: "Fix parser"}},
		{"whitespace subject", Record{Subject: "   "}},
		{"body without subject", Record{Body: "orphan body"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := Parse(&tt.rec)
			if c == nil {
				t.Fatal("Parse() returned nil")
			}
			if c.Record != &tt.rec {
				t.Error("Parse() did not keep a back-reference to the record")
			}
		})
	}
}

func TestParseSubject(t *testing.T) {
	t.Parallel()

	t.Run("trailing whitespace trimmed", func(t *testing.T) {
		t.Parallel()
		c := Parse(&Record{Subject: "Fix parser  "})
		if c.Subject.Text != "Fix parser" {
			t.Errorf("subject = %q, want %q", c.Subject.Text, "Fix parser")
		}
		if !c.Subject.TrailingSpace {
			t.Error("TrailingSpace should be true for a raw subject with trailing spaces")
		}
	})

	t.Run("leading whitespace kept", func(t *testing.T) {
		t.Parallel()
		c := Parse(&Record{Subject: " Fix parser"})
		if c.Subject.Text != " Fix parser" {
			t.Errorf("subject = %q, want leading space kept", c.Subject.Text)
		}
		if !c.Subject.LeadingSpace {
			t.Error("LeadingSpace should be true")
		}
	})

	t.Run("multiline subject field is split", func(t *testing.T) {
		t.Parallel()
		c := Parse(&Record{Subject: "Fix parser\n\nBody text here"})
		if c.Subject.Text != "Fix parser" {
			t.Errorf("subject = %q, want first line only", c.Subject.Text)
		}
		if len(c.BodyLines) != 2 {
			t.Fatalf("body lines = %d, want 2", len(c.BodyLines))
		}
		if c.BodyLines[1].Text != "Body text here" {
			t.Errorf("body line 2 = %q", c.BodyLines[1].Text)
		}
	})

	t.Run("subject line number and width", func(t *testing.T) {
		t.Parallel()
		c := Parse(&Record{Subject: "日本語 support"})
		if c.Subject.Number != 1 {
			t.Errorf("subject line number = %d, want 1", c.Subject.Number)
		}
		if c.Subject.Width != 14 {
			t.Errorf("subject width = %d, want 14", c.Subject.Width)
		}
	})
}

func TestParseBodyNumbering(t *testing.T) {
	t.Parallel()

	c := Parse(&Record{
		Subject: "Update readme",
		Body:    "\nAdds install instructions",
	})
	if len(c.BodyLines) != 2 {
		t.Fatalf("body lines = %d, want 2", len(c.BodyLines))
	}
	if c.BodyLines[0].Text != "" || c.BodyLines[0].Number != 2 {
		t.Errorf("first body line = %+v, want blank line 2", c.BodyLines[0])
	}
	if c.BodyLines[1].Text != "Adds install instructions" || c.BodyLines[1].Number != 3 {
		t.Errorf("second body line = %+v, want text on line 3", c.BodyLines[1])
	}
}

func TestParseTrailers(t *testing.T) {
	t.Parallel()

	t.Run("trailer block detached from body", func(t *testing.T) {
		t.Parallel()
		c := Parse(&Record{
			Subject: "Fix parser",
			Body:    "\nLonger explanation here\n\nSigned-off-by: Ann <ann@example.com>\nCo-authored-by: Bob <bob@example.com>",
		})
		if len(c.Trailers) != 2 {
			t.Fatalf("trailers = %d, want 2", len(c.Trailers))
		}
		if c.Trailers[0].Key != "Signed-off-by" || c.Trailers[0].Value != "Ann <ann@example.com>" {
			t.Errorf("first trailer = %+v", c.Trailers[0])
		}
		if got := c.BodyText(); got != "\nLonger explanation here" {
			t.Errorf("body after stripping = %q", got)
		}
	})

	t.Run("key value line mid paragraph is not a trailer", func(t *testing.T) {
		t.Parallel()
		c := Parse(&Record{
			Subject: "Fix parser",
			Body:    "\nNote: this matters\nbecause of the tokenizer",
		})
		if len(c.Trailers) != 0 {
			t.Errorf("trailers = %d, want 0 (block must reach message end)", len(c.Trailers))
		}
		if len(c.BodyLines) != 3 {
			t.Errorf("body lines = %d, want 3", len(c.BodyLines))
		}
	})

	t.Run("record trailers are kept", func(t *testing.T) {
		t.Parallel()
		c := Parse(&Record{
			Subject:  "Fix parser",
			Trailers: []Trailer{{Key: "Reviewed-by", Value: "Cara"}},
		})
		if len(c.Trailers) != 1 || c.Trailers[0].Key != "Reviewed-by" {
			t.Errorf("trailers = %+v", c.Trailers)
		}
	})
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		subject string
		want    Kind
	}{
		{"Add retry to the fetcher", KindNormal},
		{"Merge branch 'feature' into main", KindMerge},
		{"Merge branch 'a' of github.com/x/y into main", KindMerge},
		{"fixup! Add retry to the fetcher", KindFixup},
		{"squash! Add retry to the fetcher", KindSquash},
		{`Revert "Add retry to the fetcher"`, KindRevert},
		{"", KindNormal},
		{"Merged the thing", KindNormal},
	}
	for _, tt := range tests {
		t.Run(tt.subject, func(t *testing.T) {
			t.Parallel()
			c := Parse(&Record{Subject: tt.subject})
			if c.Kind != tt.want {
				t.Errorf("kind = %v, want %v", c.Kind, tt.want)
			}
		})
	}
}

func TestRuleDisabled(t *testing.T) {
	t.Parallel()

	c := Parse(&Record{
		Subject: "Fix parser",
		Body:    "\nSome context.\n\nlintry:disable SubjectLength",
	})
	if !c.RuleDisabled("SubjectLength") {
		t.Error("SubjectLength should be disabled")
	}
	if c.RuleDisabled("SubjectMood") {
		t.Error("SubjectMood should not be disabled")
	}
}

func TestShortHash(t *testing.T) {
	t.Parallel()

	rec := Record{Hash: "aaaaaaaabbbbbbbbccccccccdddddddd"}
	if got := rec.ShortHash(); got != "aaaaaaa" {
		t.Errorf("ShortHash() = %q, want %q", got, "aaaaaaa")
	}
	short := Record{Hash: "ab12"}
	if got := short.ShortHash(); got != "ab12" {
		t.Errorf("ShortHash() = %q, want %q", got, "ab12")
	}
}
