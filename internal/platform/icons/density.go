package icons

// ReferenceSize is the pixel size the book glyph is designed at.
const ReferenceSize = 48

// Density describes one Android display-density bucket.
type Density struct {
	Name string
	Size int
}

// Dir returns the mipmap resource directory name for the density.
func (d Density) Dir() string {
	return "mipmap-" + d.Name
}

// Variant describes one launcher icon file written per density.
type Variant struct {
	Name string
	File string
}

// Launcher variants. The round variant is rendered with the same routine as
// the square one; no circular mask is applied.
var (
	VariantLauncher = Variant{Name: "launcher", File: "ic_launcher.png"}
	VariantRound    = Variant{Name: "round", File: "ic_launcher_round.png"}
)

var densities = []Density{
	{Name: "mdpi", Size: 48},
	{Name: "hdpi", Size: 72},
	{Name: "xhdpi", Size: 96},
	{Name: "xxhdpi", Size: 144},
	{Name: "xxxhdpi", Size: 192},
}

// Densities returns the density table in ascending size order.
func Densities() []Density {
	out := make([]Density, len(densities))
	copy(out, densities)
	return out
}

// Variants returns the launcher variants in write order.
func Variants() []Variant {
	return []Variant{VariantLauncher, VariantRound}
}
