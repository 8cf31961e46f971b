package data

// Catalog names.
const (
	NameCamera               = "camera"
	NameAstronaut            = "astronaut"
	NameText                 = "text"
	NameCheckerboard         = "checkerboard"
	NameCoins                = "coins"
	NameMoon                 = "moon"
	NamePage                 = "page"
	NameHorse                = "horse"
	NameClock                = "clock"
	NameImmunohistochemistry = "immunohistochemistry"
	NameChelsea              = "chelsea"
	NameCoffee               = "coffee"
	NameHubbleDeepField      = "hubble_deep_field"
	NameRocket               = "rocket"
	NameLena                 = "lena"
)

// Entry describes one catalog image.
type Entry struct {
	// Name is the logical image name.
	Name string `json:"name" yaml:"name"`
	// Filename is the file under the data directory. Empty for removed entries.
	Filename string `json:"filename,omitempty" yaml:"filename,omitempty"`
	// Grayscale loads the file with color channels collapsed.
	Grayscale bool `json:"grayscale,omitempty" yaml:"grayscale,omitempty"`
	// Boolean converts the loaded image to a bool mask.
	Boolean bool `json:"boolean,omitempty" yaml:"boolean,omitempty"`
	// Removed marks an image that was withdrawn and must never load.
	Removed bool `json:"removed,omitempty" yaml:"removed,omitempty"`
	// Description says what the image shows and what it is good for.
	Description string `json:"description" yaml:"description"`
	// Source is where the image was obtained.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	// License summarises the known copyright status.
	License string `json:"license,omitempty" yaml:"license,omitempty"`
}

var catalog = []Entry{
	{
		Name:        NameCamera,
		Filename:    "camera.png",
		Description: "Gray-level cameraman, a classic for segmentation and denoising.",
	},
	{
		Name:        NameAstronaut,
		Filename:    "astronaut.png",
		Description: "Color portrait of astronaut Eileen Collins.",
		Source:      "NASA Great Images database, GPN-2000-001177",
		License:     "public domain",
	},
	{
		Name:        NameText,
		Filename:    "text.png",
		Description: "Gray-level text image for corner detection.",
		Source:      "Wikimedia Commons, File:Corner.png",
		License:     "public domain",
	},
	{
		Name:        NameCheckerboard,
		Filename:    "chessboard_GRAY.png",
		Description: "Checkerboard for calibration; many parallel edges show distortion well.",
	},
	{
		Name:        NameCoins,
		Filename:    "coins.png",
		Description: "Greek coins from Pompeii against a gray background, for segmentation tests.",
		Source:      "Brooklyn Museum Collection",
		License:     "no known copyright restrictions",
	},
	{
		Name:        NameMoon,
		Filename:    "moon.png",
		Description: "Low-contrast lunar surface, for histogram equalization and contrast stretching.",
	},
	{
		Name:        NamePage,
		Filename:    "page.png",
		Description: "Scanned printed page with uneven background illumination.",
	},
	{
		Name:        NameHorse,
		Filename:    "horse.png",
		Grayscale:   true,
		Boolean:     true,
		Description: "Black and white horse silhouette.",
		Source:      "openclipart, horse by marauder",
		License:     "public domain",
	},
	{
		Name:        NameClock,
		Filename:    "clock_motion.png",
		Description: "Wall clock blurred by horizontal camera motion, for deconvolution.",
		License:     "public domain",
	},
	{
		Name:        NameImmunohistochemistry,
		Filename:    "ihc.png",
		Description: "Colonic glands with DAB stained FHL2 and hematoxylin counterstain.",
		Source:      "Center for Microscopy And Molecular Imaging (CMMI)",
		License:     "no known copyright restrictions",
	},
	{
		Name:        NameChelsea,
		Filename:    "chelsea.png",
		Description: "Chelsea the cat: texture, horizontal and diagonal edges at several scales.",
		License:     "CC0",
	},
	{
		Name:        NameCoffee,
		Filename:    "coffee.png",
		Description: "Coffee cup with elliptical shapes and mixed texture.",
		Source:      "Pikolo Espresso Bar",
		License:     "CC0",
	},
	{
		Name:        NameHubbleDeepField,
		Filename:    "hubble_deep_field.jpg",
		Description: "Hubble eXtreme Deep Field, for multi-scale detection.",
		Source:      "HubbleSite",
		License:     "public domain (NASA)",
	},
	{
		Name:        NameRocket,
		Filename:    "rocket.jpg",
		Description: "Falcon 9 launch carrying DSCOVR.",
		Source:      "SpaceX Photos",
		License:     "public domain",
	},
	{
		Name:        NameLena,
		Removed:     true,
		Description: "Withdrawn due to copyright concerns; use astronaut instead.",
	},
}

var index = func() map[string]int {
	m := make(map[string]int, len(catalog))
	for i, e := range catalog {
		m[e.Name] = i
	}
	return m
}()

// Catalog returns a copy of every entry in a fixed order.
func Catalog() []Entry {
	return append([]Entry(nil), catalog...)
}

// Names lists catalog names in catalog order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, e := range catalog {
		names[i] = e.Name
	}
	return names
}

// Lookup returns the entry for name.
func Lookup(name string) (Entry, bool) {
	i, ok := index[name]
	if !ok {
		return Entry{}, false
	}
	return catalog[i], true
}
