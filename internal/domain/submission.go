package domain

// Payload is the transport form of a finished configuration
type Payload struct {
	Dimensions  PayloadDimensions  `json:"dimensions"`
	Accessories PayloadAccessories `json:"accessories"`
	Gaming      PayloadGaming      `json:"gaming"`
	Devices     []string           `json:"devices"`
	Style       PayloadStyle       `json:"style"`
}

type PayloadDimensions struct {
	WidthMM     int `json:"widthMm"`
	HeightMM    int `json:"heightMm"`
	ModuleWidth int `json:"moduleWidth"`
	UsableWidth int `json:"usableWidth"`
	SlotCount   int `json:"slotCount"`
}

type PayloadAccessories struct {
	TV          bool `json:"tv"`
	Fireplace   bool `json:"fireplace"`
	Soundbar    bool `json:"soundbar"`
	ShelvingQty int  `json:"shelvingQty"`
}

type PayloadGaming struct {
	Mode    GamingMode `json:"mode"`
	Options []string   `json:"options"`
}

type PayloadStyle struct {
	Category string         `json:"category"`
	Finish   *PayloadFinish `json:"finish"`
}

type PayloadFinish struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Metadata is the descriptive projection applied to the host document
type Metadata struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Keywords    []string   `json:"keywords"`
	LinkedData  LinkedData `json:"linkedData"`
}

// LinkedData is a schema.org Product summary
type LinkedData struct {
	Context            string          `json:"@context"`
	Type               string          `json:"@type"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Brand              *LinkedBrand    `json:"brand,omitempty"`
	Category           string          `json:"category,omitempty"`
	AdditionalProperty []PropertyValue `json:"additionalProperty"`
}

type LinkedBrand struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type PropertyValue struct {
	Type     string `json:"@type"`
	Name     string `json:"name"`
	Value    any    `json:"value"`
	UnitCode string `json:"unitCode,omitempty"`
}

// Envelope is what gets handed to a delivery mechanism
type Envelope struct {
	ID       string   `json:"id"`
	Payload  Payload  `json:"payload"`
	Metadata Metadata `json:"metadata"`
}
