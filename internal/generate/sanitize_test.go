package generate

import "testing"

func TestSanitize_RewritesBannedPhrasing(t *testing.T) {
	seq := cleanSequence()
	seq.Analysis.ValueProposition = "Streamlining vendor reviews with a cutting-edge filter"
	seq.Messages[1].Message = "We streamline the intake so you can leverage the saved hours."

	sanitize(&seq)

	if seq.Analysis.ValueProposition != "reducing vendor reviews with a current filter" {
		t.Fatalf("unexpected value proposition: %q", seq.Analysis.ValueProposition)
	}
	if seq.Messages[1].Message != "We reduce the intake so you can use the saved hours." {
		t.Fatalf("unexpected message: %q", seq.Messages[1].Message)
	}
}

func TestSanitize_LeavesCleanTextAlone(t *testing.T) {
	seq := cleanSequence()
	before := seq.Messages[0].Message
	sanitize(&seq)
	if seq.Messages[0].Message != before {
		t.Fatalf("clean text was rewritten: %q", seq.Messages[0].Message)
	}
}
