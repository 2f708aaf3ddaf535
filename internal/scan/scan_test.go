package scan

import (
	"strings"
	"testing"
)

func TestSourceVersionLine(t *testing.T) {
	res, err := Source(strings.NewReader("#version 310 es\nvoid main() {}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Version != 310 || res.Profile != "es" {
		t.Fatalf("got version %d profile %q, want 310 es", res.Version, res.Profile)
	}
	if res.VersionPos.Line != 1 {
		t.Fatalf("VersionPos.Line = %d, want 1", res.VersionPos.Line)
	}
}

func TestSourceNoVersion(t *testing.T) {
	res, err := Source(strings.NewReader("void main() {}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Version != 0 || res.Profile != "" {
		t.Fatalf("got version %d profile %q, want zero values", res.Version, res.Profile)
	}
}

func TestSourceInvalidVersion(t *testing.T) {
	if _, err := Source(strings.NewReader("#version abc\n")); err == nil {
		t.Fatal("non-numeric #version must fail")
	}
	if _, err := Source(strings.NewReader("#version\n")); err == nil {
		t.Fatal("#version without a number must fail")
	}
}

func TestSourceExtensions(t *testing.T) {
	src := `#version 310 es
# extension GL_OES_geometry_shader : enable
#extension GL_EXT_gpu_shader5:require
void main() {}
`
	res, err := Source(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Directives) != 2 {
		t.Fatalf("got %d directives, want 2", len(res.Directives))
	}

	d := res.Directives[0]
	if d.ID != "GL_OES_geometry_shader" || d.Behavior != "enable" || d.Pos.Line != 2 {
		t.Fatalf("directive 0 = %+v", d)
	}
	d = res.Directives[1]
	if d.ID != "GL_EXT_gpu_shader5" || d.Behavior != "require" || d.Pos.Line != 3 {
		t.Fatalf("directive 1 = %+v", d)
	}
}

func TestSourceMalformedDirectiveCarriedThrough(t *testing.T) {
	src := "#extension GL_OES_texture_3D\n#extension GL_EXT_frag_depth : maybe\n"
	res, err := Source(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Directives) != 2 {
		t.Fatalf("got %d directives, want 2", len(res.Directives))
	}
	if res.Directives[0].Behavior != "" {
		t.Fatalf("missing colon should yield empty behavior, got %q", res.Directives[0].Behavior)
	}
	if res.Directives[1].Behavior != "maybe" {
		t.Fatalf("unknown behavior token must be preserved, got %q", res.Directives[1].Behavior)
	}
}

func TestSourceIgnoresOtherDirectives(t *testing.T) {
	src := "#define FOO 1\n#ifdef FOO\n#endif\n#pragma optimize(on)\n"
	res, err := Source(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if res.Version != 0 || len(res.Directives) != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
}
