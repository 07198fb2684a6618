package marp

// extensions maps each supported output format to the file extension the
// renderer is asked to produce.
var extensions = map[string]string{
	"html": ".html",
	"pdf":  ".pdf",
	"pptx": ".pptx",
	"png":  ".png",
	"jpeg": ".jpg",
}

// OutputExtension returns the file extension for an output format.
// Unrecognized formats fall back to ".html".
func OutputExtension(format string) string {
	if ext, ok := extensions[format]; ok {
		return ext
	}
	return ".html"
}
