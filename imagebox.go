package easel

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ImageLoader resolves an image source reference to a decoded image.
// Returning an error counts as a load failure for the fallback state machine.
type ImageLoader func(source string) (*ebiten.Image, error)

// ImageState tracks the resilient-loading state of a single image node.
//
// currentSource starts at the primary source and transitions at most once, to
// the fallback source, on the first load failure. Further failures are
// absorbed: the current source is always one of {primary, fallback}, and a
// failure received while already on the fallback is a no-op. A fallback that
// itself fails leaves the neutral placeholder on screen with no error
// propagation.
type ImageState struct {
	primary  string
	fallback string
	current  string
}

// Primary returns the primary source reference.
func (s *ImageState) Primary() string { return s.primary }

// Fallback returns the fallback source reference.
func (s *ImageState) Fallback() string { return s.fallback }

// Current returns the currently rendered source reference.
func (s *ImageState) Current() string { return s.current }

// fail applies one load-failure event. Returns true when the event switched
// the current source to the fallback; false when it was absorbed.
func (s *ImageState) fail() bool {
	if s.current != s.fallback {
		s.current = s.fallback
		return true
	}
	return false
}

// NewImage creates an image node that loads primary and substitutes fallback
// on load failure, exactly once. A nil loader uses LoadImageFile. Loading
// happens at construction; failures are absorbed silently (debug mode logs
// them to stderr), never returned to the caller.
func NewImage(name, primary, fallback string, loader ImageLoader) *Node {
	if loader == nil {
		loader = LoadImageFile
	}
	n := &Node{Name: name, Type: NodeTypeImage}
	nodeDefaults(n)
	n.imageState = &ImageState{primary: primary, fallback: fallback, current: primary}
	n.img = resolveImage(n.imageState, loader)
	return n
}

// ImageSource returns the currently rendered source reference, or "" for
// nodes without resilient-loading state (containers, canvases).
func (n *Node) ImageSource() string {
	if n.imageState == nil {
		return ""
	}
	return n.imageState.current
}

// ImageState returns the node's resilient-loading state, or nil.
func (n *Node) ImageState() *ImageState {
	return n.imageState
}

// resolveImage loads the current source, applying the one-time fallback
// substitution on failure. A second failure leaves the placeholder.
func resolveImage(st *ImageState, loader ImageLoader) *ebiten.Image {
	img, err := loader(st.current)
	if err == nil {
		return img
	}
	if globalDebug {
		log.Printf("easel: image %q failed to load, trying fallback: %v", st.current, err)
	}
	if !st.fail() {
		return ensurePlaceholderImage()
	}
	img, err = loader(st.current)
	if err == nil {
		return img
	}
	if globalDebug {
		log.Printf("easel: fallback image %q failed to load, using placeholder: %v", st.current, err)
	}
	// Absorbed: the state machine stays on the fallback source and the
	// placeholder stands in for the broken reference.
	return ensurePlaceholderImage()
}

// LoadImageFile is the default ImageLoader: it reads and decodes an image
// from the local filesystem.
func LoadImageFile(source string) (*ebiten.Image, error) {
	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("easel: open image %s: %w", source, err)
	}
	defer f.Close()

	img, _, err := ebitenutil.NewImageFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("easel: decode image %s: %w", source, err)
	}
	return img, nil
}

// placeholder singleton (no sync.Once — easel is single-threaded)
var placeholderImage *ebiten.Image

// ensurePlaceholderImage returns a 1x1 neutral gray image shown when both the
// primary and fallback sources are unloadable.
func ensurePlaceholderImage() *ebiten.Image {
	if placeholderImage == nil {
		placeholderImage = ebiten.NewImage(1, 1)
		placeholderImage.Fill(color.RGBA{R: 0x9a, G: 0x9a, B: 0x9a, A: 0xff})
	}
	return placeholderImage
}
