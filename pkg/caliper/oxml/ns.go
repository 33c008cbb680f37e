package oxml

// Namespace URIs of the markup vocabularies this package navigates.
// Matching is always done against these URIs; prefixes in the source
// document are irrelevant.
const (
	// NSWordprocessingML is the main WordprocessingML namespace (w:).
	NSWordprocessingML = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

	// NSWordprocessingDrawing covers inline/anchored drawing containers (wp:).
	NSWordprocessingDrawing = "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"

	// NSDrawingML is the shared DrawingML namespace (a:).
	NSDrawingML = "http://schemas.openxmlformats.org/drawingml/2006/main"

	// NSPicture identifies picture graphic payloads (pic:). Doubles as the
	// graphicData uri discriminator for pictures.
	NSPicture = "http://schemas.openxmlformats.org/drawingml/2006/picture"

	// NSChart identifies chart graphic payloads (c:).
	NSChart = "http://schemas.openxmlformats.org/drawingml/2006/chart"

	// NSDiagram identifies SmartArt graphic payloads (dgm:).
	NSDiagram = "http://schemas.openxmlformats.org/drawingml/2006/diagram"

	// NSRelationships is the namespace of relationship reference
	// attributes such as r:embed and r:link.
	NSRelationships = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

	// NSVML is the legacy Vector Markup Language namespace (v:).
	NSVML = "urn:schemas-microsoft-com:vml"
)
