package latex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRenderRow_Weekday(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c int
		want    string
	}{
		{"all months", 5, 12, 20, `5 && 12 && 20 & \tabularnewline[\entryheight]`},
		{"first and second", 5, 12, 0, `5 && 12 && \multicolumn{2}{ c|}{} \tabularnewline[\entryheight]`},
		{"first and third", 5, 0, 20, `5 && \multicolumn{2}{ c|}{} & 20 & \tabularnewline[\entryheight]`},
		{"second and third", 0, 12, 20, `\multicolumn{2}{|c|}{} & 12 && 20 & \tabularnewline[\entryheight]`},
		{"first only", 5, 0, 0, `5 && \multicolumn{2}{ c|}{} & \multicolumn{2}{ c|}{} \tabularnewline[\entryheight]`},
		{"second only", 0, 12, 0, `\multicolumn{2}{|c|}{} & 12 && \multicolumn{2}{ c|}{} \tabularnewline[\entryheight]`},
		{"third only", 0, 0, 20, `\multicolumn{2}{|c|}{} & \multicolumn{2}{ c|}{} & 20 & \tabularnewline[\entryheight]`},
		{"no months", 0, 0, 0, `\multicolumn{2}{|c|}{} & \multicolumn{2}{ c|}{} & \multicolumn{2}{ c|}{} \tabularnewline[\entryheight]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderRow(tt.a, tt.b, tt.c, false)
			if diff := cmp.Diff([]string{tt.want}, got); diff != "" {
				t.Errorf("RenderRow(%d, %d, %d, false) mismatch (-want +got):\n%s", tt.a, tt.b, tt.c, diff)
			}
		})
	}
}

func TestRenderRow_Weekend(t *testing.T) {
	const (
		cc    = `\cellcolor{calendarColour}`
		pad   = cc + `          &`
		end   = `\tabularnewline[\entryheight]`
		first = `\multicolumn{2}{|c|}{}              &`
		mid   = `\multicolumn{2}{ c|}{}              &`
		last  = `\multicolumn{2}{ c|}{}`
	)

	tests := []struct {
		name    string
		a, b, c int
		want    []string
	}{
		{
			name: "all months use row colour",
			a:    5, b: 12, c: 20,
			want: []string{`\rowcolor{calendarColour}`, `5 && 12 && 20 & \tabularnewline[\entryheight]`},
		},
		{
			name: "first and second",
			a:    5, b: 12,
			want: []string{cc + `5&`, pad, cc + `12&`, pad, last, end},
		},
		{
			name: "first and third",
			a:    5, c: 20,
			want: []string{cc + `5&`, pad, mid, cc + `20&`, cc, end},
		},
		{
			name: "second and third",
			b:    12, c: 20,
			want: []string{first, cc + `12&`, pad, cc + `20&`, cc, end},
		},
		{
			name: "first only",
			a:    5,
			want: []string{cc + `5&`, pad, mid, last, end},
		},
		{
			name: "second only",
			b:    12,
			want: []string{first, cc + `12&`, pad, last, end},
		},
		{
			name: "third only",
			c:    20,
			want: []string{first, mid, cc + `20&`, cc, end},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderRow(tt.a, tt.b, tt.c, true)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("RenderRow(%d, %d, %d, true) mismatch (-want +got):\n%s", tt.a, tt.b, tt.c, diff)
			}
		})
	}
}

func TestRenderRow_SecondMonthOnlyStructure(t *testing.T) {
	got := RenderRow(0, 7, 0, false)
	if len(got) != 1 {
		t.Fatalf("RenderRow() returned %d lines, want 1", len(got))
	}

	// blank span over columns 1-2, day in column 3, empty column 4, blank span over 5-6
	want := `\multicolumn{2}{|c|}{}` + ` & ` + `7 &` + `& ` + `\multicolumn{2}{ c|}{}` + ` \tabularnewline[\entryheight]`
	if got[0] != want {
		t.Errorf("RenderRow(0, 7, 0) = %q, want %q", got[0], want)
	}
}

func TestRenderSeparator(t *testing.T) {
	full := [3]bool{true, true, true}
	none := [3]bool{}

	tests := []struct {
		name    string
		current [3]bool
		next    [3]bool
		mode    SeparatorMode
		want    []string
	}{
		{"full rows", full, full, SeparatorShared, []string{`\hline`}},
		{"first two continue", full, [3]bool{true, true, false}, SeparatorShared, []string{`\cline{1-4}`}},
		{"outer months continue", [3]bool{true, false, true}, full, SeparatorShared, []string{`\cline{1-2}\cline{5-6}`}},
		{"last two continue", [3]bool{false, true, true}, full, SeparatorShared, []string{`\cline{3-6}`}},
		{"first only", [3]bool{true, false, false}, [3]bool{true, false, false}, SeparatorShared, []string{`\cline{1-2}`}},
		{"second only", [3]bool{false, true, true}, [3]bool{true, true, false}, SeparatorShared, []string{`\cline{3-4}`}},
		{"third only", full, [3]bool{false, false, true}, SeparatorShared, []string{`\cline{5-6}`}},
		{"blank next row needs no rule", full, none, SeparatorShared, nil},
		{"boxed closes ending month", [3]bool{true, true, true}, [3]bool{false, true, true}, SeparatorBoxed, []string{`\hline`}},
		{"boxed opens starting month", [3]bool{true, false, false}, [3]bool{true, true, false}, SeparatorBoxed, []string{`\cline{1-4}`}},
		{"boxed blank rows", none, none, SeparatorBoxed, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderSeparator(tt.current, tt.next, tt.mode)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("RenderSeparator(%v, %v, %s) mismatch (-want +got):\n%s", tt.current, tt.next, tt.mode, diff)
			}
		})
	}
}

func TestParseSeparatorMode(t *testing.T) {
	tests := []struct {
		input   string
		want    SeparatorMode
		wantErr bool
	}{
		{"", SeparatorShared, false},
		{"shared", SeparatorShared, false},
		{"Boxed", SeparatorBoxed, false},
		{"dotted", "", true},
	}

	for _, tt := range tests {
		got, err := ParseSeparatorMode(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSeparatorMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSeparatorMode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
