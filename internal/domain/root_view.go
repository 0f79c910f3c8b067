package domain

const (
	// AppVersion is the label shown on the page.
	AppVersion = "1.1.0"
	// Heading is the text of the page's top-level heading.
	Heading = "Welcome to Angular K8s Demo!"
	// Description is the caption rendered under the heading.
	Description = "This is a simple Angular application deployed on Kubernetes."
	// VersionPrefix precedes the version label on the page.
	VersionPrefix = "Version: "
)

// RootView is the page's top-level display unit.
type RootView struct {
	version string
}

// NewRootView creates the view with its fixed version label.
func NewRootView() *RootView {
	return &RootView{version: AppVersion}
}

// Version returns the version label.
func (v *RootView) Version() string {
	return v.version
}

// Heading returns the heading text.
func (v *RootView) Heading() string {
	return Heading
}

// Description returns the caption text.
func (v *RootView) Description() string {
	return Description
}

// VersionLine returns the text of the version paragraph.
func (v *RootView) VersionLine() string {
	return VersionPrefix + v.version
}
