package regexlib

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExportDOT(t *testing.T) {
	var sb strings.Builder
	if err := MustCompile("ab").ExportDOT(&sb); err != nil {
		t.Fatal(err)
	}
	want := `digraph G {
    rankdir=LR;
    s0 [shape=circle];
    s0 -> s1 [label="a"];
    s1 [shape=circle];
    s1 -> s2 [label="b"];
    s2 [shape=doublecircle];
    _start [shape=point]; _start -> s0;
}
`
	if diff := cmp.Diff(sb.String(), want); diff != "" {
		t.Errorf("ExportDOT diff (-got +want):\n%s", diff)
	}
}

func TestExportDOTStages(t *testing.T) {
	tests := []struct {
		stage string
		want  []string
		not   []string
	}{
		{"nfa", []string{`s1 -> s2 [label="ε"]`, "s3 [shape=doublecircle]"}, nil},
		{"dfa", []string{`s0 -> s1 [label="a"]`}, []string{"ε"}},
		{"min", []string{`s1 -> s2 [label="b"]`}, []string{"ε"}},
	}

	for _, test := range tests {
		stage, err := ParseStage(test.stage)
		if err != nil {
			t.Fatal(err)
		}
		if stage.String() != test.stage {
			t.Errorf("ParseStage(%q).String() = %q", test.stage, stage.String())
		}
		var sb strings.Builder
		if err := ExportDOT(&sb, "ab", stage); err != nil {
			t.Fatal(err)
		}
		for _, s := range test.want {
			if !strings.Contains(sb.String(), s) {
				t.Errorf("%s DOT lacks %q:\n%s", test.stage, s, sb.String())
			}
		}
		for _, s := range test.not {
			if strings.Contains(sb.String(), s) {
				t.Errorf("%s DOT contains %q:\n%s", test.stage, s, sb.String())
			}
		}
	}

	if _, err := ParseStage("png"); err == nil {
		t.Error("ParseStage(png) succeeded")
	}
	if err := ExportDOT(&strings.Builder{}, "(", StageNFA); !errors.Is(err, ErrParenMismatch) {
		t.Errorf("ExportDOT error = %v, want ErrParenMismatch", err)
	}
}
