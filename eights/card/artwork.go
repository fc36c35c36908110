package card

// Artwork is presentation metadata. The engine never reads it.
type Artwork struct {
	Title   string `json:"title,omitempty"`
	FaceURL string `json:"faceUrl,omitempty"`
	BackURL string `json:"backUrl,omitempty"`
}

type Catalog struct {
	Titles   []string
	FaceURLs []string
	BackURLs []string
}

func (c Catalog) Empty() bool {
	return len(c.Titles) == 0 && len(c.FaceURLs) == 0 && len(c.BackURLs) == 0
}

func (c Catalog) At(index int) Artwork {
	return Artwork{
		Title:   pick(c.Titles, index),
		FaceURL: pick(c.FaceURLs, index),
		BackURL: pick(c.BackURLs, index),
	}
}

// Decorate returns a copy of cards with artwork assigned by position, wrapping
// around each list of the catalog.
func Decorate(cards []Card, catalog Catalog) []Card {
	decorated := make([]Card, len(cards))
	for index, c := range cards {
		c.Artwork = catalog.At(index)
		decorated[index] = c
	}
	return decorated
}

func pick(values []string, index int) string {
	if len(values) == 0 {
		return ""
	}
	return values[index%len(values)]
}
