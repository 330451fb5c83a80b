package domain

// CameraRecord is a raw catalog entry as stored by the catalog source.
type CameraRecord struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

type Camera struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Specs       string `json:"specs"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Image       string `json:"image"`
}

type Accessory struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}
