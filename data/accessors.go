package data

import (
	"github.com/nvr-ai/go-sampledata/images"
)

// entry panics if name is missing from the catalog, which is a programming error.
func entry(name string) Entry {
	e, ok := Lookup(name)
	if !ok {
		panic("data: missing catalog entry " + name)
	}
	return e
}

// Camera returns the gray-level cameraman, shape [512, 512].
func (l *Loader) Camera() (*images.Image, error) {
	return l.loadEntry(entry(NameCamera))
}

// Astronaut returns the color portrait of Eileen Collins, shape [512, 512, 3].
func (l *Loader) Astronaut() (*images.Image, error) {
	return l.loadEntry(entry(NameAstronaut))
}

// Text returns the gray-level text image used for corner detection.
func (l *Loader) Text() (*images.Image, error) {
	return l.loadEntry(entry(NameText))
}

// Checkerboard returns the gray-level calibration checkerboard.
func (l *Loader) Checkerboard() (*images.Image, error) {
	return l.loadEntry(entry(NameCheckerboard))
}

// Coins returns the gray-level Greek coins image.
func (l *Loader) Coins() (*images.Image, error) {
	return l.loadEntry(entry(NameCoins))
}

// Moon returns the low-contrast lunar surface.
func (l *Loader) Moon() (*images.Image, error) {
	return l.loadEntry(entry(NameMoon))
}

// Page returns the scanned page with uneven illumination.
func (l *Loader) Page() (*images.Image, error) {
	return l.loadEntry(entry(NamePage))
}

// Horse returns the horse silhouette as a bool mask.
//
// The file is loaded as grayscale and thresholded at the dtype midpoint.
// Precision loss from anti-aliased edges is expected and not reported.
func (l *Loader) Horse() (*images.Image, error) {
	return l.loadEntry(entry(NameHorse))
}

// Clock returns the motion blurred clock.
func (l *Loader) Clock() (*images.Image, error) {
	return l.loadEntry(entry(NameClock))
}

// Immunohistochemistry returns the stained colonic gland image.
func (l *Loader) Immunohistochemistry() (*images.Image, error) {
	return l.loadEntry(entry(NameImmunohistochemistry))
}

// Chelsea returns Chelsea the cat.
func (l *Loader) Chelsea() (*images.Image, error) {
	return l.loadEntry(entry(NameChelsea))
}

// Coffee returns the coffee cup.
func (l *Loader) Coffee() (*images.Image, error) {
	return l.loadEntry(entry(NameCoffee))
}

// HubbleDeepField returns the Hubble eXtreme Deep Field (JPEG source).
func (l *Loader) HubbleDeepField() (*images.Image, error) {
	return l.loadEntry(entry(NameHubbleDeepField))
}

// Rocket returns the Falcon 9 launch (JPEG source).
func (l *Loader) Rocket() (*images.Image, error) {
	return l.loadEntry(entry(NameRocket))
}

// Lena always fails with KindRemoved. The image was withdrawn due to copyright
// concerns; use Astronaut instead. The filesystem is never touched.
func (l *Loader) Lena() (*images.Image, error) {
	return l.loadEntry(entry(NameLena))
}
