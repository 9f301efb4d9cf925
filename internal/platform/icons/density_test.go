package icons

import "testing"

func TestDensitiesTable(t *testing.T) {
	want := []Density{
		{Name: "mdpi", Size: 48},
		{Name: "hdpi", Size: 72},
		{Name: "xhdpi", Size: 96},
		{Name: "xxhdpi", Size: 144},
		{Name: "xxxhdpi", Size: 192},
	}
	got := Densities()
	if len(got) != len(want) {
		t.Fatalf("expected %d densities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("density %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDensitiesReturnsCopy(t *testing.T) {
	got := Densities()
	got[0].Size = 1
	if Densities()[0].Size != 48 {
		t.Fatal("expected density table to be immutable")
	}
}

func TestDensityDir(t *testing.T) {
	if got := (Density{Name: "xhdpi", Size: 96}).Dir(); got != "mipmap-xhdpi" {
		t.Fatalf("Dir() = %q, want %q", got, "mipmap-xhdpi")
	}
}

func TestVariants(t *testing.T) {
	got := Variants()
	if len(got) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(got))
	}
	if got[0].File != "ic_launcher.png" || got[1].File != "ic_launcher_round.png" {
		t.Fatalf("unexpected variant files: %+v", got)
	}
}
