package graphics

import (
	"math"
	"strings"
	"testing"

	"github.com/grantdozier/LCR-Area-Calculations-Module/model"
)

func mustInterpret(t *testing.T, stream string) *PageContent {
	t.Helper()
	content, err := Interpret([]byte(stream))
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	return content
}

func pointsClose(a, b model.Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestInterpretFilledRectangle(t *testing.T) {
	content := mustInterpret(t, "1 0 0 rg 100 100 200 150 re f")

	if len(content.Objects) != 1 {
		t.Fatalf("got %d objects, want 1", len(content.Objects))
	}
	obj := content.Objects[0]
	if obj.Fill == nil {
		t.Fatal("filled rectangle has no fill color")
	}
	if *obj.Fill != (model.Color{R: 1}) {
		t.Errorf("fill = %+v, want red", *obj.Fill)
	}
	if obj.Stroke != nil {
		t.Errorf("fill-only paint carries stroke color %+v", *obj.Stroke)
	}
	if len(obj.Commands) != 1 || obj.Commands[0].Op != model.OpRect {
		t.Fatalf("commands = %+v, want a single rect", obj.Commands)
	}
	want := []model.Point{{X: 100, Y: 100}, {X: 300, Y: 100}, {X: 300, Y: 250}, {X: 100, Y: 250}}
	for i, p := range obj.Commands[0].Points {
		if !pointsClose(p, want[i]) {
			t.Errorf("corner %d = %+v, want %+v", i, p, want[i])
		}
	}
}

func TestInterpretAppliesCTM(t *testing.T) {
	// Scale by 2 and translate by (10, 20) before drawing.
	content := mustInterpret(t, "q 2 0 0 2 10 20 cm 0 0 m 50 0 l 50 50 l h S Q")

	if len(content.Objects) != 1 {
		t.Fatalf("got %d objects, want 1", len(content.Objects))
	}
	obj := content.Objects[0]
	if !obj.Closed {
		t.Error("h before S should mark the object closed")
	}
	if obj.Stroke == nil || *obj.Stroke != (model.Color{}) {
		t.Errorf("stroke = %v, want default black", obj.Stroke)
	}
	want := []model.Point{{X: 10, Y: 20}, {X: 110, Y: 20}, {X: 110, Y: 120}}
	got := []model.Point{obj.Commands[0].Points[0], obj.Commands[1].Points[0], obj.Commands[2].Points[0]}
	for i := range want {
		if !pointsClose(got[i], want[i]) {
			t.Errorf("point %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestInterpretStateSaveRestore(t *testing.T) {
	// Color and CTM set inside q/Q must not leak out.
	content := mustInterpret(t, "q 0 1 0 rg 3 0 0 3 0 0 cm Q 10 10 5 5 re f")

	if len(content.Objects) != 1 {
		t.Fatalf("got %d objects, want 1", len(content.Objects))
	}
	obj := content.Objects[0]
	if obj.Fill == nil || *obj.Fill != (model.Color{}) {
		t.Errorf("fill = %v, want default black after Q", obj.Fill)
	}
	if got := obj.Commands[0].Points[0]; !pointsClose(got, model.Point{X: 10, Y: 10}) {
		t.Errorf("first corner = %+v, want untransformed (10, 10)", got)
	}
}

func TestInterpretColorOperators(t *testing.T) {
	tests := []struct {
		name   string
		stream string
		want   model.Color
	}{
		{"gray fill", "0.5 g 0 0 10 10 re f", model.Gray(0.5)},
		{"rgb fill", "0.2 0.4 0.6 rg 0 0 10 10 re f", model.Color{R: 0.2, G: 0.4, B: 0.6}},
		{"cmyk fill", "1 0 0 0 k 0 0 10 10 re f", model.Color{R: 0, G: 1, B: 1}},
		{"scn with rgb space", "/DeviceRGB cs 0 0 1 scn 0 0 10 10 re f", model.Color{B: 1}},
		{"sc single component", "/DeviceGray cs 0.25 sc 0 0 10 10 re f", model.Gray(0.25)},
		{"scn pattern name ignored", "0.5 g /P1 scn 0 0 10 10 re f", model.Gray(0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := mustInterpret(t, tt.stream)
			if len(content.Objects) != 1 {
				t.Fatalf("got %d objects, want 1", len(content.Objects))
			}
			obj := content.Objects[0]
			if obj.Fill == nil {
				t.Fatal("no fill color")
			}
			if math.Abs(obj.Fill.R-tt.want.R) > 1e-9 ||
				math.Abs(obj.Fill.G-tt.want.G) > 1e-9 ||
				math.Abs(obj.Fill.B-tt.want.B) > 1e-9 {
				t.Errorf("fill = %+v, want %+v", *obj.Fill, tt.want)
			}
		})
	}
}

func TestInterpretCurveFlattening(t *testing.T) {
	content := mustInterpret(t, "0 0 m 10 20 30 20 40 0 c S")

	if len(content.Objects) != 1 {
		t.Fatalf("got %d objects, want 1", len(content.Objects))
	}
	cmds := content.Objects[0].Commands
	// The curve flattens through both control points to the end point.
	want := []model.Point{{X: 0, Y: 0}, {X: 10, Y: 20}, {X: 30, Y: 20}, {X: 40, Y: 0}}
	if len(cmds) != len(want) {
		t.Fatalf("got %d commands, want %d", len(cmds), len(want))
	}
	if cmds[0].Op != model.OpMove {
		t.Errorf("first command op = %v, want move", cmds[0].Op)
	}
	for i, cmd := range cmds {
		if cmd.Op == model.OpClose {
			t.Fatalf("unexpected close at %d", i)
		}
		if !pointsClose(cmd.Points[0], want[i]) {
			t.Errorf("command %d point = %+v, want %+v", i, cmd.Points[0], want[i])
		}
	}
}

func TestInterpretVYCurves(t *testing.T) {
	// v: first control point is the current point. y: second control
	// point is the end point. Coincident points collapse.
	content := mustInterpret(t, "0 0 m 20 10 40 0 v 60 10 80 0 y S")

	cmds := content.Objects[0].Commands
	want := []model.Point{{X: 0, Y: 0}, {X: 20, Y: 10}, {X: 40, Y: 0}, {X: 60, Y: 10}, {X: 80, Y: 0}}
	if len(cmds) != len(want) {
		t.Fatalf("got %d commands, want %d", len(cmds), len(want))
	}
	for i, cmd := range cmds {
		if !pointsClose(cmd.Points[0], want[i]) {
			t.Errorf("command %d point = %+v, want %+v", i, cmd.Points[0], want[i])
		}
	}
}

func TestInterpretNoOpPaint(t *testing.T) {
	// n discards the path; a path with no paint operator never emits.
	content := mustInterpret(t, "0 0 m 10 10 l n 5 5 m 15 15 l")

	if len(content.Objects) != 0 {
		t.Errorf("got %d objects, want none", len(content.Objects))
	}
}

func TestInterpretClosingPaints(t *testing.T) {
	// s and b close the path before painting.
	content := mustInterpret(t, "0 0 m 10 0 l 10 10 l s 20 0 m 30 0 l 30 10 l b")

	if len(content.Objects) != 2 {
		t.Fatalf("got %d objects, want 2", len(content.Objects))
	}
	for i, obj := range content.Objects {
		if !obj.Closed {
			t.Errorf("object %d not closed", i)
		}
	}
	if content.Objects[0].Fill != nil {
		t.Error("s should stroke only")
	}
	if content.Objects[1].Fill == nil || content.Objects[1].Stroke == nil {
		t.Error("b should fill and stroke")
	}
}

func TestInterpretTextRuns(t *testing.T) {
	content := mustInterpret(t, `BT /F1 12 Tf (SCALE: 1"=20') Tj 0 -14 Td (SHEET C-101) Tj ET`)

	if !strings.Contains(content.Text, `SCALE: 1"=20'`) {
		t.Errorf("text %q missing scale note", content.Text)
	}
	if !strings.Contains(content.Text, "SHEET C-101") {
		t.Errorf("text %q missing second run", content.Text)
	}
	// Td between the runs must keep them from fusing into one token.
	if strings.Contains(content.Text, `20'SHEET`) {
		t.Errorf("positioned runs fused: %q", content.Text)
	}
}

func TestInterpretTJSpacing(t *testing.T) {
	content := mustInterpret(t, "BT [(SCALE:) -250 (1\"=20')] TJ ET")

	if !strings.Contains(content.Text, `SCALE: 1"=20'`) {
		t.Errorf("text = %q, want large TJ adjustment turned into a space", content.Text)
	}

	content = mustInterpret(t, "BT [(AB) -20 (CD)] TJ ET")
	if !strings.Contains(content.Text, "ABCD") {
		t.Errorf("text = %q, want small kerning adjustment dropped", content.Text)
	}
}

func TestInterpretUTF16Text(t *testing.T) {
	content := mustInterpret(t, "BT <FEFF005300430041004C0045> Tj ET")
	if !strings.Contains(content.Text, "SCALE") {
		t.Errorf("text = %q, want BOM-prefixed UTF-16BE decoded", content.Text)
	}
}

func TestInterpretIgnoresUnknownOperators(t *testing.T) {
	content := mustInterpret(t, "/GS1 gs /P <</MCID 0>> BDC 0 0 10 10 re f EMC")

	if len(content.Objects) != 1 {
		t.Fatalf("got %d objects, want 1", len(content.Objects))
	}
}
