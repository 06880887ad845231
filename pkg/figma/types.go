package figma

// FileResponse is the body of the Figma file endpoint (GET /v1/files/:key).
// Only the fields the token pipeline reads are declared; everything else in
// the payload is ignored by the decoder.
type FileResponse struct {
	Name          string `json:"name"`
	LastModified  string `json:"lastModified"`
	Version       string `json:"version"`
	Document      Node   `json:"document"`
	SchemaVersion int    `json:"schemaVersion"`
}

// Node is a single layer of the Figma document tree.
//
// The document root holds pages, a page holds the token groups (frames named
// "Colors", "Spacing", "Fonts", ...) and each group holds one leaf per token.
// Fills, AbsoluteBoundingBox and Style are only present on the leaves that
// carry them, which is why the latter two are pointers: a nil value means the
// field was absent from the export.
type Node struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Type                string     `json:"type"`
	Children            []Node     `json:"children,omitempty"`
	Fills               []Paint    `json:"fills,omitempty"`
	AbsoluteBoundingBox *Rectangle `json:"absoluteBoundingBox,omitempty"`
	Style               *TypeStyle `json:"style,omitempty"`
}

// Paint is a fill or stroke entry. Color is nil for non-solid paints.
type Paint struct {
	Type  string `json:"type"`
	Color *Color `json:"color,omitempty"`
}

// Color is an RGBA color with every channel expressed as a fraction in [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// TypeStyle is the text style of a TEXT layer.
// FontPostScriptName is hyphen-delimited, e.g. "Inter-SemiBold".
type TypeStyle struct {
	FontFamily          string  `json:"fontFamily"`
	FontPostScriptName  string  `json:"fontPostScriptName"`
	FontWeight          float64 `json:"fontWeight"`
	FontSize            float64 `json:"fontSize"`
	LineHeightPx        float64 `json:"lineHeightPx"`
	TextAlignHorizontal string  `json:"textAlignHorizontal"`
}

// Rectangle is the absolute bounding box of a node on the canvas.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
