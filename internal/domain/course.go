package domain

// Course is a static catalog record. The catalog is compiled in and never
// mutated at runtime.
type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Price       int      `json:"price"`
	Free        bool     `json:"free"`
	Description string   `json:"description"`
	Details     string   `json:"details"`
	Modules     []string `json:"modules"`
	Cert        string   `json:"cert"`
	Icon        string   `json:"icon"`
}
