package entity

// Planet yields exactly one resource when mined.
type Planet struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Resource    string `json:"resource"`
	Description string `json:"description"`
	Theme       string `json:"theme"`
	Color       string `json:"color"`
}

type Requirement struct {
	Resource string `json:"resource"`
	Amount   int64  `json:"amount"`
}

// Recipe converts a fixed set of resources into Output points.
type Recipe struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Requirements []Requirement `json:"requirements"`
	Output       int64         `json:"output"`
}
